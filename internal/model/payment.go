package model

import "time"

// PaymentMethod is reference data describing how a booking can be paid
// (e.g. credit card, bank transfer).  It is never mutated by the
// booking flow.
type PaymentMethod struct {
	ID          uint64  // payment_methods.id
	Name        string  // payment_methods.name
	Description *string // payment_methods.description (nullable)
}

// Pay records the payment attached to a booking.  Exactly one Pay row
// is created per booking when a payment method is supplied; the amount
// is the booking's computed total.
//
// Fields:
//  ID              – primary key identifier.
//  AmountCents     – total charged, in cents.
//  PaymentDate     – when the payment was registered.
//  PaymentRef      – opaque reference for reconciliation (UUID).
//  PaymentMethodID – method used.
type Pay struct {
	ID              uint64    // pays.id
	AmountCents     uint32    // pays.amount_cents
	PaymentDate     time.Time // pays.payment_date
	PaymentRef      string    // pays.payment_ref
	PaymentMethodID uint64    // pays.payment_method_id
}
