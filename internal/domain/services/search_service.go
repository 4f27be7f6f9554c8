package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
)

// Search type discriminators.
const (
	SearchKindCriminal = "criminal"
	SearchKindCase     = "case"
)

// CaseSearchRow is a case search hit joined to its location for display.
type CaseSearchRow struct {
	ID           uint      `json:"id"`
	CaseNumber   string    `json:"case_number"`
	CaseTitle    string    `json:"case_title"`
	Description  string    `json:"description"`
	DateReported time.Time `json:"date_reported"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
}

// SearchResult holds the hits for whichever entity kind was searched.
type SearchResult struct {
	Kind      string
	Criminals []models.Criminal
	Cases     []CaseSearchRow
}

// Count returns the number of hits.
func (r *SearchResult) Count() int {
	if r.Kind == SearchKindCriminal {
		return len(r.Criminals)
	}
	return len(r.Cases)
}

// InterfaceSearchService defines the search interface
type InterfaceSearchService interface {
	Search(ctx context.Context, kind, term string) (*SearchResult, error)
}

// SearchService runs case-insensitive substring searches over criminals and
// cases
type SearchService struct {
	DB *gorm.DB
}

// NewSearchService creates a new search service
func NewSearchService(db *gorm.DB) InterfaceSearchService {
	return &SearchService{DB: db}
}

// Search dispatches on the entity kind and applies %term% across the three
// columns relevant to it.
func (s *SearchService) Search(ctx context.Context, kind, term string) (*SearchResult, error) {
	pattern := "%" + term + "%"

	switch kind {
	case SearchKindCriminal:
		var criminals []models.Criminal
		err := s.DB.WithContext(ctx).
			Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(national_id) LIKE LOWER(?)",
				pattern, pattern, pattern).
			Find(&criminals).Error
		if err != nil {
			return nil, code.WrapDBError(err)
		}
		return &SearchResult{Kind: kind, Criminals: criminals}, nil

	case SearchKindCase:
		var cases []CaseSearchRow
		err := s.DB.WithContext(ctx).Raw(`
			SELECT
				c.id, c.case_number, c.case_title, c.description, c.date_reported, c.status, c.priority,
				COALESCE(l.address, '') AS address,
				COALESCE(l.city, '') AS city
			FROM cases c
			LEFT JOIN locations l ON c.location_id = l.id
			WHERE LOWER(c.case_title) LIKE LOWER(?)
			   OR LOWER(c.description) LIKE LOWER(?)
			   OR LOWER(c.case_number) LIKE LOWER(?)`,
			pattern, pattern, pattern).Scan(&cases).Error
		if err != nil {
			return nil, code.WrapDBError(err)
		}
		return &SearchResult{Kind: kind, Cases: cases}, nil

	default:
		return nil, code.NewError(code.ErrBind, fmt.Errorf("unknown search type %q", kind))
	}
}
