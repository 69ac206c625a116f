package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
)

// AvailabilityRepo provides access to per-tour capacity slots.  All
// timestamp columns are stored in UTC.  The only mutation the booking
// flow performs on a slot is the capacity decrement in ReserveTx; slot
// creation is an administrative operation.
type AvailabilityRepo struct {
	db *sql.DB
}

// NewAvailabilityRepo returns a new AvailabilityRepo bound to the given database.
func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo { return &AvailabilityRepo{db: db} }

// DB exposes the underlying sql.DB for callers that need to begin
// transactions spanning multiple repositories.
func (r *AvailabilityRepo) DB() *sql.DB { return r.db }

const availabilityColumns = `id, tour_id, available_date, available_slots, departure_time, return_time, created_at, updated_at`

func scanAvailability(row *sql.Row) (*model.Availability, error) {
	var a model.Availability
	err := row.Scan(
		&a.ID, &a.TourID, &a.AvailableDate, &a.AvailableSlots,
		&a.DepartureTime, &a.ReturnTime, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindSlot returns the availability slot for an exact (tour, date)
// match.  The date is compared on its calendar day in UTC.  When no
// slot exists, ErrSlotNotFound is returned.
func (r *AvailabilityRepo) FindSlot(ctx context.Context, tourID uint64, date time.Time) (*model.Availability, error) {
	const q = `SELECT ` + availabilityColumns + `
               FROM availabilities
               WHERE tour_id = ? AND available_date = ?`
	day := date.UTC().Format("2006-01-02")
	a, err := scanAvailability(r.db.QueryRowContext(ctx, q, tourID, day))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID returns a slot by primary key, or ErrSlotNotFound.
func (r *AvailabilityRepo) GetByID(ctx context.Context, id uint64) (*model.Availability, error) {
	const q = `SELECT ` + availabilityColumns + ` FROM availabilities WHERE id = ?`
	a, err := scanAvailability(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindByDateRange returns all slots whose available date falls inside
// the inclusive [start, end] range, ordered ascending by date so the
// output is deterministic.
func (r *AvailabilityRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Availability, error) {
	const q = `SELECT ` + availabilityColumns + `
               FROM availabilities
               WHERE available_date >= ? AND available_date <= ?
               ORDER BY available_date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, start.UTC().Format("2006-01-02"), end.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slots := make([]model.Availability, 0)
	for rows.Next() {
		var a model.Availability
		if err := rows.Scan(
			&a.ID, &a.TourID, &a.AvailableDate, &a.AvailableSlots,
			&a.DepartureTime, &a.ReturnTime, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		slots = append(slots, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}

// Create inserts a new availability slot and assigns the generated ID
// back to the struct.  Used by the administrative endpoint only; the
// booking flow never creates slots.
func (r *AvailabilityRepo) Create(ctx context.Context, a *model.Availability) error {
	const q = `INSERT INTO availabilities (tour_id, available_date, available_slots, departure_time, return_time)
               VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.TourID,
		a.AvailableDate.UTC().Format("2006-01-02"),
		a.AvailableSlots,
		a.DepartureTime.UTC().Format("2006-01-02 15:04:05"),
		a.ReturnTime.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	// Query back the full row to populate timestamps and defaults.
	const sel = `SELECT ` + availabilityColumns + ` FROM availabilities WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, a.ID).Scan(
		&a.ID, &a.TourID, &a.AvailableDate, &a.AvailableSlots,
		&a.DepartureTime, &a.ReturnTime, &a.CreatedAt, &a.UpdatedAt,
	)
}

// ReserveTx atomically checks and decrements a slot's capacity within
// the provided transaction.  The conditional UPDATE guards against
// lost updates: concurrent reservations against the same slot
// serialize on the row and the guard `available_slots >= ?` guarantees
// the counter never goes negative.  Zero affected rows means either
// the slot is missing or its remaining capacity is below partySize; the
// follow-up existence check disambiguates.  The caller must commit or
// roll back the transaction.
func (r *AvailabilityRepo) ReserveTx(ctx context.Context, tx *sql.Tx, slotID uint64, partySize uint32) error {
	const upd = `UPDATE availabilities
                 SET available_slots = available_slots - ?
                 WHERE id = ? AND available_slots >= ?`
	res, err := tx.ExecContext(ctx, upd, partySize, slotID, partySize)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM availabilities WHERE id = ?)`, slotID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrSlotNotFound
	}
	return ErrCapacityExceeded
}
