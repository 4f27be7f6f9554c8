package models

import "time"

// Well-known criminal status values. The column itself is free text.
const (
	CriminalStatusActive   = "Active"
	CriminalStatusWanted   = "Wanted"
	CriminalStatusArrested = "Arrested"
)

// Criminal represents a criminal record.
type Criminal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(50);not null" json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender"`
	NationalID  string    `gorm:"type:varchar(30);index" json:"national_id"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	Status      string    `gorm:"type:varchar(30);not null" json:"status"`
	DangerLevel string    `gorm:"type:varchar(20)" json:"danger_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName returns the criminal's display name, as used by the case list
// aggregates and the dashboard activity feed.
func (c *Criminal) FullName() string {
	return c.FirstName + " " + c.LastName
}
