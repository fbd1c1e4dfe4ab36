package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
)

// BusinessService handles the LGU business directory.
type BusinessService struct {
	businesses ports.BusinessRepository
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(businesses ports.BusinessRepository) *BusinessService {
	return &BusinessService{businesses: businesses}
}

// List returns a page of directory entries plus the unpaged total.
func (s *BusinessService) List(ctx context.Context, filter domain.BusinessFilter, offset, limit int) ([]domain.Business, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}
	return s.businesses.List(ctx, filter, offset, limit)
}

// GetByID returns a single directory entry.
func (s *BusinessService) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("business id must not be empty")
	}
	return s.businesses.GetByID(ctx, id)
}

// Register inserts or updates a directory entry.
func (s *BusinessService) Register(ctx context.Context, b *domain.Business) error {
	if b == nil {
		return fmt.Errorf("business must not be nil")
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("business name must not be empty")
	}
	if !b.Location.Valid() {
		return fmt.Errorf("business location out of range")
	}
	return s.businesses.Upsert(ctx, b)
}
