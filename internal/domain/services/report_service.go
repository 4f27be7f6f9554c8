package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
)

// StatusCount is one grouped-count row of a status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// CrimeStat is a crime type with the number of cases it appears in. Crime
// types with no associated cases show up with a zero total.
type CrimeStat struct {
	CrimeType string `json:"crime_type"`
	Total     int64  `json:"total"`
}

// RecentActivity is one of the latest criminal-case associations shown on
// the dashboard.
type RecentActivity struct {
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	CaseTitle      string    `json:"case_title"`
	DateAssociated time.Time `json:"date_associated"`
}

// DashboardStats bundles the dashboard's scalar counts and activity feed.
type DashboardStats struct {
	TotalCriminals   int64            `json:"total_criminals"`
	OpenCases        int64            `json:"open_cases"`
	ClosedCases      int64            `json:"closed_cases"`
	CrimeTypes       int64            `json:"crime_types"`
	RecentActivities []RecentActivity `json:"recent_activities"`
}

// InterfaceReportService defines the reporting interface
type InterfaceReportService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	CaseStatusReport(ctx context.Context) ([]StatusCount, error)
	CrimeStats(ctx context.Context) ([]CrimeStat, error)
	CriminalStatusReport(ctx context.Context) ([]StatusCount, error)
}

// ReportService runs the grouped-count queries behind the dashboard and
// reports views
type ReportService struct {
	DB *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) InterfaceReportService {
	return &ReportService{DB: db}
}

// Dashboard computes the four scalar counts and the five most recent
// criminal-case associations.
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := s.DB.WithContext(ctx)

	if err := db.Model(&models.Criminal{}).Count(&stats.TotalCriminals).Error; err != nil {
		return nil, code.WrapDBError(err)
	}

	if err := db.Model(&models.Case{}).
		Where("status IN ?", []string{models.CaseStatusOpen, models.CaseStatusUnderInvestigation}).
		Count(&stats.OpenCases).Error; err != nil {
		return nil, code.WrapDBError(err)
	}

	if err := db.Model(&models.Case{}).
		Where("status LIKE ?", models.CaseStatusClosedPrefix+"%").
		Count(&stats.ClosedCases).Error; err != nil {
		return nil, code.WrapDBError(err)
	}

	if err := db.Model(&models.Crime{}).Count(&stats.CrimeTypes).Error; err != nil {
		return nil, code.WrapDBError(err)
	}

	err := db.Raw(`
		SELECT cr.first_name, cr.last_name, cc.role, c.case_title, cc.date_associated
		FROM criminal_cases cc
		JOIN criminals cr ON cc.criminal_id = cr.id
		JOIN cases c ON cc.case_id = c.id
		ORDER BY cc.date_associated DESC
		LIMIT 5`).Scan(&stats.RecentActivities).Error
	if err != nil {
		return nil, code.WrapDBError(err)
	}

	return stats, nil
}

// CaseStatusReport counts cases per status, ordered by status name.
func (s *ReportService) CaseStatusReport(ctx context.Context) ([]StatusCount, error) {
	var report []StatusCount
	err := s.DB.WithContext(ctx).Model(&models.Case{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Order("status").
		Scan(&report).Error
	if err != nil {
		return nil, code.WrapDBError(err)
	}
	return report, nil
}

// CrimeStats counts cases per crime type. The LEFT JOIN keeps crime types
// with zero cases in the result.
func (s *ReportService) CrimeStats(ctx context.Context) ([]CrimeStat, error) {
	var stats []CrimeStat
	err := s.DB.WithContext(ctx).Raw(`
		SELECT cm.crime_type, COUNT(cc.case_id) AS total
		FROM crimes cm
		LEFT JOIN case_crimes cc ON cm.id = cc.crime_id
		GROUP BY cm.crime_type
		ORDER BY total DESC`).Scan(&stats).Error
	if err != nil {
		return nil, code.WrapDBError(err)
	}
	return stats, nil
}

// CriminalStatusReport counts criminals per status, ordered by status name.
func (s *ReportService) CriminalStatusReport(ctx context.Context) ([]StatusCount, error) {
	var report []StatusCount
	err := s.DB.WithContext(ctx).Model(&models.Criminal{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Order("status").
		Scan(&report).Error
	if err != nil {
		return nil, code.WrapDBError(err)
	}
	return report, nil
}
