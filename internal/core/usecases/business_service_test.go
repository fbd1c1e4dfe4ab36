package usecases_test

import (
	"context"
	"testing"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/usecases"
)

type mockBusinessRepo struct {
	upsertFn func(ctx context.Context, b *domain.Business) error
	listFn   func(ctx context.Context, filter domain.BusinessFilter, offset, limit int) ([]domain.Business, int, error)
}

func (m *mockBusinessRepo) Upsert(ctx context.Context, b *domain.Business) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, b)
	}
	return nil
}

func (m *mockBusinessRepo) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	return &domain.Business{ID: id}, nil
}

func (m *mockBusinessRepo) List(ctx context.Context, filter domain.BusinessFilter, offset, limit int) ([]domain.Business, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func TestBusinessService_List_ClampsPaging(t *testing.T) {
	repo := &mockBusinessRepo{
		listFn: func(ctx context.Context, filter domain.BusinessFilter, offset, limit int) ([]domain.Business, int, error) {
			if offset != 0 {
				t.Errorf("expected offset clamped to 0, got %d", offset)
			}
			if limit != 25 {
				t.Errorf("expected limit clamped to 25, got %d", limit)
			}
			return nil, 0, nil
		},
	}
	svc := usecases.NewBusinessService(repo)

	if _, _, err := svc.List(context.Background(), domain.BusinessFilter{}, -3, 9999); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBusinessService_GetByID_RequiresID(t *testing.T) {
	svc := usecases.NewBusinessService(&mockBusinessRepo{})
	if _, err := svc.GetByID(context.Background(), "  "); err == nil {
		t.Error("expected error for blank id")
	}
}

func TestBusinessService_Register_Validates(t *testing.T) {
	svc := usecases.NewBusinessService(&mockBusinessRepo{})

	if err := svc.Register(context.Background(), nil); err == nil {
		t.Error("expected error for nil business")
	}
	if err := svc.Register(context.Background(), &domain.Business{Name: " "}); err == nil {
		t.Error("expected error for blank name")
	}
	if err := svc.Register(context.Background(), &domain.Business{
		Name:     "Kape't Pandesal",
		Location: domain.GeoPoint{Lat: 200, Lon: 500},
	}); err == nil {
		t.Error("expected error for out-of-range location")
	}
	if err := svc.Register(context.Background(), &domain.Business{
		Name:     "Kape't Pandesal",
		Category: "cafe",
		Barangay: "Balibago",
		Location: domain.GeoPoint{Lat: 14.2882, Lon: 121.0986},
	}); err != nil {
		t.Errorf("valid business rejected: %v", err)
	}
}
