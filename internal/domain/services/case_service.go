package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
)

// CaseInput carries the form fields for creating or replacing a case.
// CaseNumber is never part of the input: it is generated on create and
// immutable afterwards.
type CaseInput struct {
	CaseTitle            string
	Description          string
	DateReported         time.Time
	DateClosed           *time.Time
	Status               string
	Priority             string
	LocationID           *uint
	InvestigatingOfficer string
}

// CaseListRow is one row of the aggregate case listing: the case, its
// location, and comma-joined distinct criminal names and crime types.
// Cases without associations appear with empty aggregate strings.
type CaseListRow struct {
	CaseID       uint      `json:"case_id"`
	CaseNumber   string    `json:"case_number"`
	CaseTitle    string    `json:"case_title"`
	DateReported time.Time `json:"date_reported"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Criminals    string    `json:"criminals"`
	Crimes       string    `json:"crimes"`
}

// InterfaceCaseService defines the case repository interface
type InterfaceCaseService interface {
	Create(ctx context.Context, input CaseInput) (uint, error)
	Update(ctx context.Context, id uint, input CaseInput) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*models.Case, error)
	List(ctx context.Context) ([]models.Case, error)
	ListWithAggregates(ctx context.Context) ([]CaseListRow, error)
}

// CaseService provides case CRUD and the aggregate listing
type CaseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCaseService creates a new case service
func NewCaseService(db *gorm.DB, cfg *config.Config) InterfaceCaseService {
	return &CaseService{
		DB:     db,
		Config: cfg,
	}
}

// GenerateCaseNumber derives a case number from the wall clock, second
// precision. Collisions within one second are a known boundary condition:
// the unique index rejects the later insert.
func GenerateCaseNumber(t time.Time) string {
	return "CASE-" + t.Format(models.CaseNumberLayout)
}

// Create inserts a case with a freshly generated case number.
func (s *CaseService) Create(ctx context.Context, input CaseInput) (uint, error) {
	c := models.Case{
		CaseNumber:           GenerateCaseNumber(time.Now()),
		CaseTitle:            input.CaseTitle,
		Description:          input.Description,
		DateReported:         input.DateReported,
		DateClosed:           input.DateClosed,
		Status:               input.Status,
		Priority:             input.Priority,
		LocationID:           input.LocationID,
		InvestigatingOfficer: input.InvestigatingOfficer,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&c).Error
	})
	if err != nil {
		return 0, code.WrapDBError(err)
	}
	return c.ID, nil
}

// Update replaces every editable field of a case. The case number is left
// untouched.
func (s *CaseService) Update(ctx context.Context, id uint, input CaseInput) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Case
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		return tx.Model(&c).Updates(map[string]interface{}{
			"case_title":            input.CaseTitle,
			"description":           input.Description,
			"date_reported":         input.DateReported,
			"date_closed":           input.DateClosed,
			"status":                input.Status,
			"priority":              input.Priority,
			"location_id":           input.LocationID,
			"investigating_officer": input.InvestigatingOfficer,
			"updated_at":            time.Now(),
		}).Error
	})
	return code.WrapDBError(err)
}

// Delete removes a case. Association rows cascade away with it.
func (s *CaseService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Case{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return code.WrapDBError(err)
}

// Get fetches one case by id.
func (s *CaseService) Get(ctx context.Context, id uint) (*models.Case, error) {
	var c models.Case
	if err := s.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, code.WrapDBError(err)
	}
	return &c, nil
}

// List returns all cases, newest id first.
func (s *CaseService) List(ctx context.Context) ([]models.Case, error) {
	var cases []models.Case
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&cases).Error; err != nil {
		return nil, code.WrapDBError(err)
	}
	return cases, nil
}

// ListWithAggregates joins every case to its location and aggregates the
// distinct associated criminal names and crime types into comma-joined
// strings. LEFT JOINs keep association-free cases in the result, once,
// with empty aggregates.
func (s *CaseService) ListWithAggregates(ctx context.Context) ([]CaseListRow, error) {
	nameAgg := "STRING_AGG(DISTINCT (cr.first_name || ' ' || cr.last_name), ', ')"
	crimeAgg := "STRING_AGG(DISTINCT cm.crime_type, ', ')"
	if s.DB.Dialector.Name() == "sqlite" {
		// sqlite's GROUP_CONCAT cannot combine DISTINCT with a custom
		// separator; the default comma is close enough for display.
		nameAgg = "GROUP_CONCAT(DISTINCT (cr.first_name || ' ' || cr.last_name))"
		crimeAgg = "GROUP_CONCAT(DISTINCT cm.crime_type)"
	}

	query := fmt.Sprintf(`
		SELECT
			c.id AS case_id, c.case_number, c.case_title, c.date_reported, c.status, c.priority,
			COALESCE(l.address, '') AS address,
			COALESCE(l.city, '') AS city,
			COALESCE(l.state, '') AS state,
			COALESCE(%s, '') AS criminals,
			COALESCE(%s, '') AS crimes
		FROM cases c
		LEFT JOIN locations l ON c.location_id = l.id
		LEFT JOIN criminal_cases cc ON cc.case_id = c.id
		LEFT JOIN criminals cr ON cr.id = cc.criminal_id
		LEFT JOIN case_crimes ccr ON ccr.case_id = c.id
		LEFT JOIN crimes cm ON cm.id = ccr.crime_id
		GROUP BY c.id, c.case_number, c.case_title, c.date_reported, c.status, c.priority,
			l.address, l.city, l.state
		ORDER BY c.id DESC`, nameAgg, crimeAgg)

	var rows []CaseListRow
	if err := s.DB.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, code.WrapDBError(err)
	}
	return rows, nil
}
