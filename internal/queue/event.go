// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully
// created.  It carries enough context for downstream consumers to log,
// aggregate, or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	TourID      uint64 `json:"tour_id"`
	TourName    string `json:"tour_name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Adults      uint32 `json:"adults"`
	Children    uint32 `json:"children"`
	PriceCents  uint32 `json:"price_cents"`
	CreatedAt   string `json:"created_at"`
}
