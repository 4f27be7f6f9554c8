package models

// CaseCrime links a case to a crime type. Read for reporting only.
type CaseCrime struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	CaseID  uint   `gorm:"not null;index" json:"case_id"`
	Case    *Case  `gorm:"constraint:OnDelete:CASCADE" json:"case,omitempty"`
	CrimeID uint   `gorm:"not null;index" json:"crime_id"`
	Crime   *Crime `gorm:"constraint:OnDelete:CASCADE" json:"crime,omitempty"`
}
