package model

import "time"

// Booking records a confirmed reservation of an availability slot for
// a user.  A booking is created once, inside the same transaction that
// decrements the slot's capacity, and is never mutated afterwards.
// The accommodation and pay references are sub-records the booking
// owns; user, tour and availability are owned elsewhere and referenced
// by ID only.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – user who booked.
//  TourID          – tour being booked.
//  AvailabilityID  – slot whose capacity this booking consumed.
//  StartDate       – requested departure date.
//  EndDate         – return date, taken from the slot's return time.
//  Adults          – number of adults (>= 1).
//  Children        – number of children (>= 0).
//  PriceCents      – computed total price in cents.
//  AccommodationID – resolved accommodation record, if any.
//  PayID           – payment record, nil when no method was supplied.
//  CreatedAt       – creation timestamp.
type Booking struct {
	ID              uint64    // bookings.id
	UserID          uint64    // bookings.user_id
	TourID          uint64    // bookings.tour_id
	AvailabilityID  uint64    // bookings.availability_id
	StartDate       time.Time // bookings.start_date
	EndDate         time.Time // bookings.end_date
	Adults          uint32    // bookings.adults
	Children        uint32    // bookings.children
	PriceCents      uint32    // bookings.price_cents
	AccommodationID *uint64   // bookings.accommodation_id (nullable)
	PayID           *uint64   // bookings.pay_id (nullable)
	CreatedAt       time.Time // bookings.created_at
}
