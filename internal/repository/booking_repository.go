package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
)

// BookingRepo provides persistence for bookings.  Creating a booking
// is the one concurrency-sensitive flow in the system: the capacity
// reservation and the booking insert must happen in a single
// transaction so a failed insert rolls the decrement back.  BookingRepo
// therefore holds references to the sibling repositories whose Tx
// methods participate in that unit of work.
type BookingRepo struct {
	db             *sql.DB
	slots          *AvailabilityRepo
	accommodations *AccommodationRepo
	payments       *PaymentRepo
}

// NewBookingRepo returns a BookingRepo bound to the given database and
// collaborating repositories.  All dependencies must be non-nil.
func NewBookingRepo(db *sql.DB, slots *AvailabilityRepo, accommodations *AccommodationRepo, payments *PaymentRepo) *BookingRepo {
	if db == nil || slots == nil || accommodations == nil || payments == nil {
		panic("nil dependency passed to NewBookingRepo")
	}
	return &BookingRepo{db: db, slots: slots, accommodations: accommodations, payments: payments}
}

// CreateWithReservation reserves capacity on the booking's availability
// slot and persists the booking, its accommodation record and its Pay
// record (when paymentMethodID is non-nil) inside one transaction.
//
// The booking must arrive with UserID, TourID, AvailabilityID,
// StartDate, EndDate, Adults, Children and PriceCents populated; the
// generated ID, resolved accommodation/pay references and the creation
// timestamp are filled in on success.
//
// Error contract: ErrCapacityExceeded when the slot cannot satisfy
// adults+children (nothing is mutated), ErrSlotNotFound when the slot
// vanished, ErrDuplicateBooking when the user already booked this tour
// and date.  Any other error also leaves the database untouched because
// the transaction is rolled back.
func (r *BookingRepo) CreateWithReservation(ctx context.Context, b *model.Booking, roomType model.RoomType, paymentMethodID *uint64) error {
	partySize := b.Adults + b.Children

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := r.slots.ReserveTx(ctx, tx, b.AvailabilityID, partySize); err != nil {
		return err
	}

	acc, err := r.accommodations.GetOrCreateTx(ctx, tx, roomType)
	if err != nil {
		return err
	}
	b.AccommodationID = &acc.ID

	if paymentMethodID != nil {
		pay := &model.Pay{
			AmountCents:     b.PriceCents,
			PaymentDate:     time.Now().UTC(),
			PaymentRef:      uuid.NewString(),
			PaymentMethodID: *paymentMethodID,
		}
		if err := r.payments.CreatePayTx(ctx, tx, pay); err != nil {
			return err
		}
		b.PayID = &pay.ID
	}

	const ins = `INSERT INTO bookings
                 (user_id, tour_id, availability_id, start_date, end_date, adults, children, price_cents, accommodation_id, pay_id)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, ins,
		b.UserID, b.TourID, b.AvailabilityID,
		b.StartDate.UTC().Format("2006-01-02"),
		b.EndDate.UTC().Format("2006-01-02 15:04:05"),
		b.Adults, b.Children, b.PriceCents,
		b.AccommodationID, b.PayID,
	)
	if err != nil {
		// MySQL error 1062: the unique key on (user_id, tour_id, start_date).
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateBooking
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	// Query back the creation timestamp set by the DB default.
	const sel = `SELECT created_at FROM bookings WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// BookingRow aggregates a booking with the tour and payment context
// needed to render a response.  Included items are loaded separately
// by the caller (service layer) via the tour catalog.
type BookingRow struct {
	ID              uint64    `json:"id"`
	UserID          uint64    `json:"user_id"`
	TourID          uint64    `json:"tour_id"`
	TourName        string    `json:"tour_name"`
	TourDescription string    `json:"tour_description"`
	AvailabilityID  uint64    `json:"availability_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	CreationDate    time.Time `json:"creation_date"`
	Accommodation   *string   `json:"accommodation,omitempty"`
	Adults          uint32    `json:"adults"`
	Children        uint32    `json:"children"`
	PriceCents      uint32    `json:"price_cents"`
	PaymentMethod   *string   `json:"payment_method,omitempty"`
}

const bookingRowQuery = `SELECT b.id, b.user_id, b.tour_id, t.name, t.description, b.availability_id,
                                DATE_FORMAT(b.start_date, '%Y-%m-%d'), DATE_FORMAT(b.end_date, '%Y-%m-%d'),
                                b.created_at, a.room_type, b.adults, b.children, b.price_cents, pm.name
                         FROM bookings b
                         JOIN tours t ON t.id = b.tour_id
                         LEFT JOIN accommodations a ON a.id = b.accommodation_id
                         LEFT JOIN pays p ON p.id = b.pay_id
                         LEFT JOIN payment_methods pm ON pm.id = p.payment_method_id`

func scanBookingRow(scan func(dest ...interface{}) error) (*BookingRow, error) {
	var row BookingRow
	var roomType, methodName sql.NullString
	if err := scan(
		&row.ID, &row.UserID, &row.TourID, &row.TourName, &row.TourDescription, &row.AvailabilityID,
		&row.StartDate, &row.EndDate, &row.CreationDate, &roomType,
		&row.Adults, &row.Children, &row.PriceCents, &methodName,
	); err != nil {
		return nil, err
	}
	if roomType.Valid {
		rt := roomType.String
		row.Accommodation = &rt
	}
	if methodName.Valid {
		mn := methodName.String
		row.PaymentMethod = &mn
	}
	return &row, nil
}

// GetByIDForUser returns a single booking for the given user.  When no
// booking with the specified ID exists for the user, sql.ErrNoRows is
// returned; ownership is enforced in the query itself.
func (r *BookingRepo) GetByIDForUser(ctx context.Context, bookingID, userID uint64) (*BookingRow, error) {
	q := bookingRowQuery + `
                         WHERE b.id = ? AND b.user_id = ?`
	return scanBookingRow(r.db.QueryRowContext(ctx, q, bookingID, userID).Scan)
}

// ListByUser returns all bookings for the given user ordered by
// creation time descending (newest first).  When no bookings exist, an
// empty slice is returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingRow, error) {
	q := bookingRowQuery + `
                         WHERE b.user_id = ?
                         ORDER BY b.created_at DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingRow, 0)
	for rows.Next() {
		row, err := scanBookingRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
