package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

// BusinessRepo implements ports.BusinessRepository with pgx.
type BusinessRepo struct {
	db *DB
}

// NewBusinessRepo creates a new BusinessRepo.
func NewBusinessRepo(db *DB) *BusinessRepo {
	return &BusinessRepo{db: db}
}

// Upsert inserts or updates a directory entry by (name, barangay).
func (r *BusinessRepo) Upsert(ctx context.Context, b *domain.Business) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO businesses (name, category, barangay, address, lat, lon, contact, permit_year, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name, barangay) DO UPDATE
		SET category = EXCLUDED.category, address = EXCLUDED.address,
		    lat = EXCLUDED.lat, lon = EXCLUDED.lon,
		    contact = EXCLUDED.contact,
		    permit_year = EXCLUDED.permit_year, active = EXCLUDED.active
		RETURNING id, created_at
	`, b.Name, b.Category, b.Barangay, b.Address,
		b.Location.Lat, b.Location.Lon, b.Contact, b.PermitYear, b.Active,
	).Scan(&b.ID, &b.CreatedAt)
}

// GetByID returns a directory entry by UUID.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	var b domain.Business
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, category, barangay, COALESCE(address, ''),
		       lat, lon, COALESCE(contact, ''), permit_year, active, created_at
		FROM businesses WHERE id = $1
	`, id).Scan(
		&b.ID, &b.Name, &b.Category, &b.Barangay, &b.Address,
		&b.Location.Lat, &b.Location.Lon, &b.Contact, &b.PermitYear, &b.Active, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns a filtered page plus the unpaged total count.
func (r *BusinessRepo) List(ctx context.Context, filter domain.BusinessFilter, offset, limit int) ([]domain.Business, int, error) {
	where, args := buildFilter(filter)

	var total int
	countSQL := "SELECT COUNT(*) FROM businesses" + where
	if err := r.db.Pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count businesses: %w", err)
	}

	listSQL := fmt.Sprintf(`
		SELECT id, name, category, barangay, COALESCE(address, ''),
		       lat, lon, COALESCE(contact, ''), permit_year, active, created_at
		FROM businesses%s
		ORDER BY name
		OFFSET $%d LIMIT $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var out []domain.Business
	for rows.Next() {
		var b domain.Business
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Category, &b.Barangay, &b.Address,
			&b.Location.Lat, &b.Location.Lon, &b.Contact, &b.PermitYear, &b.Active, &b.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// buildFilter renders the WHERE clause and its ordered arguments.
func buildFilter(filter domain.BusinessFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Barangay != "" {
		args = append(args, filter.Barangay)
		conds = append(conds, fmt.Sprintf("barangay = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
