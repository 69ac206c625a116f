// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to HTTP status codes: ErrTourNotFound and ErrSlotNotFound become
// 404 responses, ErrCapacityExceeded and ErrDuplicateBooking become 409,
// ErrForbidden becomes 403.
package repository

import "errors"

// ErrTourNotFound is returned when a tour lookup matches no row.
var ErrTourNotFound = errors.New("tour not found")

// ErrSlotNotFound is returned when no availability slot exists for the
// requested tour and date.
var ErrSlotNotFound = errors.New("availability slot not found")

// ErrCapacityExceeded is returned when a reservation requests more
// seats than an availability slot has left. The slot is not modified.
var ErrCapacityExceeded = errors.New("availability capacity exceeded")

// ErrDuplicateBooking is returned when the user already holds a booking
// for the same tour and start date.
var ErrDuplicateBooking = errors.New("duplicate booking for tour and date")

// ErrPaymentMethodNotFound is returned when the referenced payment
// method does not exist.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")
