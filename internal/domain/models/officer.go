package models

import "time"

// Officer represents a law-enforcement user of the system. Rows are only
// ever read by request handlers; the table is seeded and maintained out of
// band.
type Officer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // legacy rows store plaintext, see pkg/utils.CheckPassword
	FirstName string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(50)" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the legacy table name.
func (Officer) TableName() string {
	return "law_enforcement"
}

// FullName returns the officer's display name.
func (o *Officer) FullName() string {
	return o.FirstName + " " + o.LastName
}
