package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
)

// InterfaceLocationService defines the location reference-data interface
type InterfaceLocationService interface {
	List(ctx context.Context) ([]models.Location, error)
}

// LocationService reads the location reference table for the case forms
type LocationService struct {
	DB *gorm.DB
}

// NewLocationService creates a new location service
func NewLocationService(db *gorm.DB) InterfaceLocationService {
	return &LocationService{DB: db}
}

// List returns all locations ordered by city, for the case form dropdown.
func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.DB.WithContext(ctx).Order("city").Find(&locations).Error; err != nil {
		return nil, code.WrapDBError(err)
	}
	return locations, nil
}
