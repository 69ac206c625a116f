package model

import "time"

// Availability is a bookable (date, capacity) unit belonging to a tour.
// Slots are created administratively and consumed by bookings; the
// available slot count is only ever decremented through the atomic
// reserve operation and must never go negative.  A slot references its
// tour by ID only; there is no live back-pointer in either direction.
//
// Fields:
//  ID             – primary key identifier.
//  TourID         – owning tour.
//  AvailableDate  – departure date this slot covers.
//  AvailableSlots – remaining capacity (>= 0 at all times).
//  DepartureTime  – scheduled departure timestamp.
//  ReturnTime     – scheduled return timestamp; also used as the end
//                   date of bookings made against this slot.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Availability struct {
	ID             uint64    // availabilities.id
	TourID         uint64    // availabilities.tour_id
	AvailableDate  time.Time // availabilities.available_date
	AvailableSlots uint32    // availabilities.available_slots
	DepartureTime  time.Time // availabilities.departure_time
	ReturnTime     time.Time // availabilities.return_time
	CreatedAt      time.Time // availabilities.created_at
	UpdatedAt      time.Time // availabilities.updated_at
}
