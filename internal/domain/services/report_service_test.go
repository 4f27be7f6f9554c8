package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
)

func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()

	criminals := []models.Criminal{
		{FirstName: "John", LastName: "Smith", Status: models.CriminalStatusActive},
		{FirstName: "Maria", LastName: "Lopez", Status: models.CriminalStatusWanted},
		{FirstName: "Smitty", LastName: "Jones", Status: models.CriminalStatusWanted},
	}
	require.NoError(t, db.Create(&criminals).Error)

	cases := []models.Case{
		{CaseNumber: "CASE-20240115103045", CaseTitle: "Dockside arson", DateReported: time.Now(), Status: models.CaseStatusOpen},
		{CaseNumber: "CASE-20240116090000", CaseTitle: "Marina theft", DateReported: time.Now(), Status: models.CaseStatusUnderInvestigation},
		{CaseNumber: "CASE-20240117090000", CaseTitle: "Harbor fraud", DateReported: time.Now(), Status: "Closed - Solved"},
	}
	require.NoError(t, db.Create(&cases).Error)

	crimes := []models.Crime{
		{CrimeType: "Arson"},
		{CrimeType: "Theft"},
		{CrimeType: "Kidnapping"}, // no cases
	}
	require.NoError(t, db.Create(&crimes).Error)

	require.NoError(t, db.Create(&models.CaseCrime{CaseID: cases[0].ID, CrimeID: crimes[0].ID}).Error)
	require.NoError(t, db.Create(&models.CaseCrime{CaseID: cases[1].ID, CrimeID: crimes[1].ID}).Error)
	require.NoError(t, db.Create(&models.CaseCrime{CaseID: cases[2].ID, CrimeID: crimes[1].ID}).Error)

	associations := []models.CriminalCase{
		{CriminalID: criminals[0].ID, CaseID: cases[0].ID, Role: "Primary Suspect", DateAssociated: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
		{CriminalID: criminals[1].ID, CaseID: cases[1].ID, Role: "Primary Suspect", DateAssociated: time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)},
		{CriminalID: criminals[2].ID, CaseID: cases[2].ID, Role: "Accomplice", DateAssociated: time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, db.Create(&associations).Error)
}

func TestDashboard(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)
	svc := NewReportService(db)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalCriminals)
	assert.Equal(t, int64(2), stats.OpenCases)
	assert.Equal(t, int64(1), stats.ClosedCases)
	assert.Equal(t, int64(3), stats.CrimeTypes)

	require.Len(t, stats.RecentActivities, 3)
	// newest association first
	assert.Equal(t, "Smitty", stats.RecentActivities[0].FirstName)
	assert.Equal(t, "Harbor fraud", stats.RecentActivities[0].CaseTitle)
	assert.Equal(t, "Accomplice", stats.RecentActivities[0].Role)
	assert.Equal(t, "John", stats.RecentActivities[2].FirstName)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCriminals)
	assert.Zero(t, stats.OpenCases)
	assert.Zero(t, stats.ClosedCases)
	assert.Zero(t, stats.CrimeTypes)
	assert.Empty(t, stats.RecentActivities)
}

func TestCaseStatusReport(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)
	svc := NewReportService(db)

	report, err := svc.CaseStatusReport(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 3)

	// alphabetical by status
	assert.Equal(t, StatusCount{Status: "Closed - Solved", Total: 1}, report[0])
	assert.Equal(t, StatusCount{Status: models.CaseStatusOpen, Total: 1}, report[1])
	assert.Equal(t, StatusCount{Status: models.CaseStatusUnderInvestigation, Total: 1}, report[2])
}

func TestCrimeStatsKeepsZeroCountTypes(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)
	svc := NewReportService(db)

	stats, err := svc.CrimeStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 3)

	totals := make(map[string]int64, len(stats))
	for _, s := range stats {
		totals[s.CrimeType] = s.Total
	}
	assert.Equal(t, int64(2), totals["Theft"])
	assert.Equal(t, int64(1), totals["Arson"])
	assert.Equal(t, int64(0), totals["Kidnapping"])

	// busiest crime type first
	assert.Equal(t, "Theft", stats[0].CrimeType)
}

func TestCriminalStatusReport(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)
	svc := NewReportService(db)

	report, err := svc.CriminalStatusReport(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, StatusCount{Status: models.CriminalStatusActive, Total: 1}, report[0])
	assert.Equal(t, StatusCount{Status: models.CriminalStatusWanted, Total: 2}, report[1])
}
