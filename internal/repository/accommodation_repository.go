package repository

import (
	"context"
	"database/sql"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
)

// AccommodationRepo manages the accommodation lookup table.  Rows pair
// an ID with a room type and are created lazily on first use, then
// reused across bookings.
type AccommodationRepo struct {
	db *sql.DB
}

// NewAccommodationRepo returns a new AccommodationRepo bound to the given database.
func NewAccommodationRepo(db *sql.DB) *AccommodationRepo { return &AccommodationRepo{db: db} }

// GetOrCreateTx resolves the accommodation record for a room type,
// inserting it on first use.  Runs within the caller's transaction so
// the lookup participates in the booking's atomic unit.  Callers are
// expected to pass a value produced by model.ParseRoomType, so the
// type is always one of the known enum values.
func (r *AccommodationRepo) GetOrCreateTx(ctx context.Context, tx *sql.Tx, roomType model.RoomType) (*model.Accommodation, error) {
	const sel = `SELECT id, room_type FROM accommodations WHERE room_type = ?`
	var a model.Accommodation
	err := tx.QueryRowContext(ctx, sel, string(roomType)).Scan(&a.ID, &a.RoomType)
	if err == nil {
		return &a, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}
	const ins = `INSERT INTO accommodations (room_type) VALUES (?)`
	res, err := tx.ExecContext(ctx, ins, string(roomType))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Accommodation{ID: uint64(id), RoomType: roomType}, nil
}
