// Package repository contains data access logic for the tour catalog.
// This file defines repository methods for tours, their included items,
// hotels and tags. The booking flow treats all of this as read-only
// reference data.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
)

// TourRepo manages read access to tours and their related catalog data.
type TourRepo struct {
	db *sql.DB
}

// NewTourRepo constructs a TourRepo with the given DB handle.
func NewTourRepo(db *sql.DB) *TourRepo {
	return &TourRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *TourRepo) DB() *sql.DB {
	return r.db
}

// GetByID retrieves a tour by its ID.  It returns ErrTourNotFound if
// there is no matching row.
func (r *TourRepo) GetByID(ctx context.Context, id uint64) (*model.Tour, error) {
	const q = `SELECT id, name, description, destination, status, base_price_cents, created_at, updated_at
               FROM tours WHERE id = ?`
	var t model.Tour
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.Destination, &t.Status,
		&t.BasePriceCents, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListIncludedItems returns the included items for a tour ordered by
// name.  A tour without items yields an empty slice, not an error.
func (r *TourRepo) ListIncludedItems(ctx context.Context, tourID uint64) ([]model.IncludedItem, error) {
	const q = `SELECT id, tour_id, name, description, icon
               FROM included_items WHERE tour_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.IncludedItem, 0)
	for rows.Next() {
		var it model.IncludedItem
		var desc, icon sql.NullString
		if err := rows.Scan(&it.ID, &it.TourID, &it.Name, &desc, &icon); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			it.Description = &d
		}
		if icon.Valid {
			i := icon.String
			it.Icon = &i
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListHotels returns the hotels attached to a tour ordered by name.
func (r *TourRepo) ListHotels(ctx context.Context, tourID uint64) ([]model.Hotel, error) {
	const q = `SELECT id, tour_id, name, stars FROM hotels WHERE tour_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	hotels := make([]model.Hotel, 0)
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.TourID, &h.Name, &h.Stars); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hotels, nil
}

// FilterByTags returns active tours whose tag set intersects the given
// tag names.  An empty tagNames slice returns all active tours.  Tag
// names are matched case-insensitively; callers should normalize input
// with model.NormalizeTags first so unknown names fall through to the
// default tag and simply match nothing.  Results are ordered by name
// for determinism.
func (r *TourRepo) FilterByTags(ctx context.Context, tagNames []string) ([]model.Tour, error) {
	base := `SELECT DISTINCT t.id, t.name, t.description, t.destination, t.status, t.base_price_cents, t.created_at, t.updated_at
             FROM tours t`
	args := make([]interface{}, 0, len(tagNames))
	if len(tagNames) > 0 {
		placeholders := make([]string, 0, len(tagNames))
		for _, n := range tagNames {
			placeholders = append(placeholders, "?")
			args = append(args, n)
		}
		base += `
             JOIN tour_tags tt ON tt.tour_id = t.id
             JOIN tags g ON g.id = tt.tag_id
             WHERE t.status = 'ACTIVE' AND LOWER(g.name) IN (` + strings.Join(placeholders, ",") + `)`
	} else {
		base += `
             WHERE t.status = 'ACTIVE'`
	}
	base += `
             ORDER BY t.name`
	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tours := make([]model.Tour, 0)
	for rows.Next() {
		var t model.Tour
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Destination, &t.Status,
			&t.BasePriceCents, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tours, nil
}
