package models

import "time"

// CriminalCase links a criminal to a case with a role. Rows are written by
// the criminal+case creation procedure and read for reporting; there are no
// routes that mutate them. The RESTRICT constraint is what makes deleting a
// still-referenced criminal fail.
type CriminalCase struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CriminalID     uint      `gorm:"not null;index" json:"criminal_id"`
	Criminal       *Criminal `gorm:"constraint:OnDelete:RESTRICT" json:"criminal,omitempty"`
	CaseID         uint      `gorm:"not null;index" json:"case_id"`
	Case           *Case     `gorm:"constraint:OnDelete:CASCADE" json:"case,omitempty"`
	Role           string    `gorm:"type:varchar(50)" json:"role"`
	DateAssociated time.Time `json:"date_associated"`
}
