package model

import "strings"

// RoomType enumerates the room configurations a booking can request.
type RoomType string

const (
	RoomSingle    RoomType = "SINGLE"
	RoomDouble    RoomType = "DOUBLE"
	RoomTriple    RoomType = "TRIPLE"
	RoomQuadruple RoomType = "QUADRUPLE"
)

// Accommodation is a lookup record pairing an ID with a room type.
// Rows are created on first use of a type and reused across bookings.
type Accommodation struct {
	ID       uint64   // accommodations.id
	RoomType RoomType // accommodations.room_type
}

// ParseRoomType maps an input string to a RoomType.  Matching is
// case-insensitive; unrecognized or empty input yields RoomSingle.
// The permissive default is intentional: booking requests without an
// accommodation preference fall back to a single room instead of
// failing.
func ParseRoomType(s string) RoomType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoomDouble):
		return RoomDouble
	case string(RoomTriple):
		return RoomTriple
	case string(RoomQuadruple):
		return RoomQuadruple
	default:
		return RoomSingle
	}
}
