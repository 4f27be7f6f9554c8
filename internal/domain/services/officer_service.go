package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
	"github.com/prithu-10/criminal-dbms-project/pkg/utils"
)

// InterfaceOfficerService defines the officer service interface
type InterfaceOfficerService interface {
	Authenticate(ctx context.Context, username, password string) (*models.Officer, error)
	EnsureDefaultOfficer(ctx context.Context) error
}

// OfficerService provides officer lookup and credential verification
type OfficerService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOfficerService creates a new officer service
func NewOfficerService(db *gorm.DB, cfg *config.Config) InterfaceOfficerService {
	return &OfficerService{
		DB:     db,
		Config: cfg,
	}
}

// Authenticate looks up an officer by username and verifies the password.
// Unknown username and wrong password both come back as the same
// ErrPasswordIncorrect kind so the login page never reveals which field was
// wrong.
func (s *OfficerService) Authenticate(ctx context.Context, username, password string) (*models.Officer, error) {
	var officer models.Officer
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&officer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrPasswordIncorrect, err)
		}
		return nil, code.WrapDBError(err)
	}

	if !utils.CheckPassword(password, officer.Password) {
		return nil, code.NewError(code.ErrPasswordIncorrect, nil)
	}

	return &officer, nil
}

// EnsureDefaultOfficer seeds the default login if no officer row exists for
// the configured username. The seed stays plaintext unless SEED_HASHED is
// set, matching the legacy sample data (admin/admin123).
func (s *OfficerService) EnsureDefaultOfficer(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Officer{}).
		Where("username = ?", s.Config.DefaultOfficerUsername).
		Count(&count).Error; err != nil {
		return code.WrapDBError(err)
	}
	if count > 0 {
		return nil
	}

	password := s.Config.DefaultOfficerPassword
	if s.Config.SeedHashedPassword {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		password = hashed
	}

	officer := models.Officer{
		Username:  s.Config.DefaultOfficerUsername,
		Password:  password,
		FirstName: "System",
		LastName:  "Administrator",
	}
	if err := s.DB.WithContext(ctx).Create(&officer).Error; err != nil {
		return code.WrapDBError(err)
	}
	return nil
}
