package models

// Crime is the crime-type reference table.
type Crime struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CrimeType string `gorm:"type:varchar(100);not null" json:"crime_type"`
}
