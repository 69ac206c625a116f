package model

import (
	"strings"
	"time"
)

// Tour represents a bookable travel package offered on the platform.
// Tours are created and maintained by the catalog side of the system;
// the booking flow only ever reads them.  This struct corresponds to a
// row in the `tours` table.
//
// Fields:
//  ID             – primary key identifier.
//  Name           – display name of the tour.
//  Description    – longer marketing description.
//  Destination    – city/region the tour visits.
//  Status         – lifecycle state (ACTIVE, INACTIVE).
//  BasePriceCents – per-person price in cents used for booking totals.
//  CreatedAt      – timestamp when the tour was created.
//  UpdatedAt      – timestamp of last update.
type Tour struct {
	ID             uint64    // tours.id
	Name           string    // tours.name
	Description    string    // tours.description
	Destination    string    // tours.destination
	Status         string    // tours.status
	BasePriceCents uint32    // tours.base_price_cents
	CreatedAt      time.Time // tours.created_at
	UpdatedAt      time.Time // tours.updated_at
}

// IncludedItem describes a service bundled with a tour (transport,
// breakfast, insurance, ...).  Items are reference data attached to
// tours and surfaced on booking responses.
//
// Fields:
//  ID          – primary key identifier.
//  TourID      – tour this item belongs to.
//  Name        – short label shown to the client.
//  Description – optional detail text.
//  Icon        – optional icon identifier for the frontend.
type IncludedItem struct {
	ID          uint64  // included_items.id
	TourID      uint64  // included_items.tour_id
	Name        string  // included_items.name
	Description *string // included_items.description (nullable)
	Icon        *string // included_items.icon (nullable)
}

// Hotel is an accommodation partner associated with a tour.  Hotels are
// catalog reference data; the booking flow never mutates them.
type Hotel struct {
	ID     uint64 // hotels.id
	TourID uint64 // hotels.tour_id
	Name   string // hotels.name
	Stars  uint8  // hotels.stars
}

// Tag is a label used to group and filter tours (e.g. "beach",
// "adventure").  Unknown tag names supplied by clients resolve to the
// default tag rather than producing an error.
type Tag struct {
	ID   uint64 // tags.id
	Name string // tags.name
}

// DefaultTagName is the catch-all tag assigned when a client supplies
// a tag name that does not exist.  Filtering on it matches nothing, so
// unknown tags behave as a no-op instead of failing the request.
const DefaultTagName = "GENERAL"

// NormalizeTags lowercases, trims and deduplicates the supplied tag
// names, replacing empty entries with DefaultTagName.  The result is
// suitable for use in a filter query.  A nil or empty input returns an
// empty slice, which callers interpret as "no filter".
func NormalizeTags(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			n = strings.ToLower(DefaultTagName)
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
