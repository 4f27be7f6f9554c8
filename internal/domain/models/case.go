package models

import "time"

// Conventional case status values. The column is free text by design: the
// legacy system never enforced the Open -> Under Investigation -> Closed*
// progression anywhere but in its forms, and neither does this one.
const (
	CaseStatusOpen               = "Open"
	CaseStatusUnderInvestigation = "Under Investigation"
	CaseStatusClosedPrefix       = "Closed"
)

// CaseNumberLayout is the timestamp layout embedded in generated case
// numbers (CASE-YYYYMMDDHHMMSS). Two cases created within the same clock
// second collide; the unique index turns the second insert into a query
// error rather than a silent duplicate.
const CaseNumberLayout = "20060102150405"

// Case represents an investigation case.
type Case struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	CaseNumber           string     `gorm:"type:varchar(30);uniqueIndex;not null;<-:create" json:"case_number"`
	CaseTitle            string     `gorm:"type:varchar(150);not null" json:"case_title"`
	Description          string     `gorm:"type:text" json:"description"`
	DateReported         time.Time  `json:"date_reported"`
	DateClosed           *time.Time `json:"date_closed,omitempty"`
	Status               string     `gorm:"type:varchar(50);not null" json:"status"`
	Priority             string     `gorm:"type:varchar(20)" json:"priority"`
	LocationID           *uint      `json:"location_id,omitempty"`
	Location             *Location  `gorm:"constraint:OnDelete:SET NULL" json:"location,omitempty"`
	InvestigatingOfficer string     `gorm:"type:varchar(100)" json:"investigating_officer"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// IsOpen reports whether the case counts as open for dashboard purposes.
func (c *Case) IsOpen() bool {
	return c.Status == CaseStatusOpen || c.Status == CaseStatusUnderInvestigation
}
