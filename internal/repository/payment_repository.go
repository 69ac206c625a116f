package repository

import (
	"context"
	"database/sql"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
)

// PaymentRepo provides access to payment methods (reference data) and
// creates Pay records for bookings.  Payment methods are seeded out of
// band and never mutated here.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// ListMethods returns all payment methods ordered by name.
func (r *PaymentRepo) ListMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	const q = `SELECT id, name, description FROM payment_methods ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	methods := make([]model.PaymentMethod, 0)
	for rows.Next() {
		var m model.PaymentMethod
		var desc sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			m.Description = &d
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return methods, nil
}

// GetMethod returns a payment method by ID, or ErrPaymentMethodNotFound.
func (r *PaymentRepo) GetMethod(ctx context.Context, id uint64) (*model.PaymentMethod, error) {
	const q = `SELECT id, name, description FROM payment_methods WHERE id = ?`
	var m model.PaymentMethod
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &desc)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	if desc.Valid {
		d := desc.String
		m.Description = &d
	}
	return &m, nil
}

// CreatePayTx inserts a Pay record within the caller's transaction and
// populates the generated ID.  One Pay row is created per booking at
// booking time; the amount is the booking's computed total.
func (r *PaymentRepo) CreatePayTx(ctx context.Context, tx *sql.Tx, p *model.Pay) error {
	const q = `INSERT INTO pays (amount_cents, payment_date, payment_ref, payment_method_id)
               VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		p.AmountCents,
		p.PaymentDate.UTC().Format("2006-01-02 15:04:05"),
		p.PaymentRef,
		p.PaymentMethodID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}
