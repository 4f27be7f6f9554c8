package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
)

// CriminalInput carries the form fields for creating or replacing a
// criminal record. CaseTitle/CaseDescription optionally create a linked case
// in the same transaction on create.
type CriminalInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	NationalID  string
	Address     string
	Status      string
	DangerLevel string

	CaseTitle       *string
	CaseDescription *string
}

// InterfaceCriminalService defines the criminal repository interface
type InterfaceCriminalService interface {
	Create(ctx context.Context, input CriminalInput) (uint, error)
	Update(ctx context.Context, id uint, input CriminalInput) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*models.Criminal, error)
	List(ctx context.Context) ([]models.Criminal, error)
}

// CriminalService provides criminal record CRUD
type CriminalService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCriminalService creates a new criminal service
func NewCriminalService(db *gorm.DB, cfg *config.Config) InterfaceCriminalService {
	return &CriminalService{
		DB:     db,
		Config: cfg,
	}
}

// Create inserts a criminal and, when a case title is supplied, a linked
// case plus association, atomically. On PostgreSQL this delegates to the
// sp_add_criminal_with_case procedure the database ships with; other
// dialects run the same statements inside a gorm transaction.
func (s *CriminalService) Create(ctx context.Context, input CriminalInput) (uint, error) {
	if s.DB.Dialector.Name() == "postgres" {
		var id int64
		err := s.DB.WithContext(ctx).Raw(
			"SELECT sp_add_criminal_with_case(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			input.FirstName, input.LastName, input.DateOfBirth, input.Gender,
			input.NationalID, input.Address, input.Status, input.DangerLevel,
			input.CaseTitle, input.CaseDescription,
		).Scan(&id).Error
		if err != nil {
			return 0, code.WrapDBError(err)
		}
		return uint(id), nil
	}

	var criminalID uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		criminal := models.Criminal{
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			DateOfBirth: input.DateOfBirth,
			Gender:      input.Gender,
			NationalID:  input.NationalID,
			Address:     input.Address,
			Status:      input.Status,
			DangerLevel: input.DangerLevel,
		}
		if err := tx.Create(&criminal).Error; err != nil {
			return err
		}
		criminalID = criminal.ID

		if input.CaseTitle != nil && *input.CaseTitle != "" {
			now := time.Now()
			linked := models.Case{
				CaseNumber:   GenerateCaseNumber(now),
				CaseTitle:    *input.CaseTitle,
				DateReported: now,
				Status:       models.CaseStatusOpen,
			}
			if input.CaseDescription != nil {
				linked.Description = *input.CaseDescription
			}
			if err := tx.Create(&linked).Error; err != nil {
				return err
			}

			association := models.CriminalCase{
				CriminalID:     criminal.ID,
				CaseID:         linked.ID,
				Role:           "Primary Suspect",
				DateAssociated: now,
			}
			if err := tx.Create(&association).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, code.WrapDBError(err)
	}
	return criminalID, nil
}

// Update replaces every editable field of a criminal record.
func (s *CriminalService) Update(ctx context.Context, id uint, input CriminalInput) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var criminal models.Criminal
		if err := tx.First(&criminal, id).Error; err != nil {
			return err
		}
		return tx.Model(&criminal).Updates(map[string]interface{}{
			"first_name":    input.FirstName,
			"last_name":     input.LastName,
			"date_of_birth": input.DateOfBirth,
			"gender":        input.Gender,
			"national_id":   input.NationalID,
			"address":       input.Address,
			"status":        input.Status,
			"danger_level":  input.DangerLevel,
			"updated_at":    time.Now(),
		}).Error
	})
	return code.WrapDBError(err)
}

// Delete removes a criminal record. The delete fails with
// ErrForeignKeyViolation while any criminal_cases row still references it.
func (s *CriminalService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Criminal{}, id)
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

// Get fetches one criminal record by id.
func (s *CriminalService) Get(ctx context.Context, id uint) (*models.Criminal, error) {
	var criminal models.Criminal
	if err := s.DB.WithContext(ctx).First(&criminal, id).Error; err != nil {
		return nil, code.WrapDBError(err)
	}
	return &criminal, nil
}

// List returns all criminal records, newest id first.
func (s *CriminalService) List(ctx context.Context) ([]models.Criminal, error) {
	var criminals []models.Criminal
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&criminals).Error; err != nil {
		return nil, code.WrapDBError(err)
	}
	return criminals, nil
}
