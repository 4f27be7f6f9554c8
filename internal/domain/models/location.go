package models

// Location is reference data for where a case took place. Read-only from
// this service's perspective.
type Location struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`
}
