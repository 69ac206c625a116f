// Package service implements the booking engine: validation of booking
// commands, atomic capacity reservation through the booking store, and
// assembly of enriched booking responses.  The engine talks to storage
// through narrow interfaces so the MySQL repositories plug in for
// production and in-memory fakes in tests.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
	"github.com/AllexanderGM/feeling-sub002/internal/queue"
)

// ErrValidation marks a locally rejected booking command.  The request
// mutated nothing and is safe to retry with corrected input.
var ErrValidation = errors.New("validation failed")

// TourCatalog is the read-only view of the tour catalog the engine
// needs: tour resolution and response enrichment.
type TourCatalog interface {
	GetByID(ctx context.Context, id uint64) (*model.Tour, error)
	ListIncludedItems(ctx context.Context, tourID uint64) ([]model.IncludedItem, error)
}

// SlotStore provides availability slot queries and administrative slot
// creation.  Capacity mutation is not exposed here; it happens inside
// BookingStore.CreateWithReservation so reserve and persist share one
// failure-atomic unit.
type SlotStore interface {
	FindSlot(ctx context.Context, tourID uint64, date time.Time) (*model.Availability, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Availability, error)
	Create(ctx context.Context, a *model.Availability) error
}

// PaymentCatalog resolves payment methods (reference data).
type PaymentCatalog interface {
	GetMethod(ctx context.Context, id uint64) (*model.PaymentMethod, error)
}

// BookingStore persists bookings.  CreateWithReservation must
// atomically check and decrement the slot's capacity and write the
// booking (with its accommodation and pay sub-records): on any failure
// the slot's counter is unchanged.
type BookingStore interface {
	CreateWithReservation(ctx context.Context, b *model.Booking, roomType model.RoomType, paymentMethodID *uint64) error
}

// EventPublisher emits a booking-created event after a successful
// reservation.  Publishing is best-effort; failures are logged and the
// booking still succeeds.
type EventPublisher func(ctx context.Context, ev queue.BookingCreatedEvent) error

// BookingService is the booking engine.  It owns no state beyond its
// store references; every request runs to completion on its own
// goroutine and concurrent requests only contend inside the store's
// atomic reserve.
type BookingService struct {
	tours    TourCatalog
	slots    SlotStore
	payments PaymentCatalog
	bookings BookingStore
	publish  EventPublisher
	now      func() time.Time
}

// NewBookingService constructs a BookingService.  tours, slots,
// payments and bookings must be non-nil; publish may be nil when no
// broker is configured.
func NewBookingService(tours TourCatalog, slots SlotStore, payments PaymentCatalog, bookings BookingStore, publish EventPublisher) *BookingService {
	if tours == nil || slots == nil || payments == nil || bookings == nil {
		panic("nil store passed to NewBookingService")
	}
	return &BookingService{
		tours:    tours,
		slots:    slots,
		payments: payments,
		bookings: bookings,
		publish:  publish,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateBookingRequest is the validated command for a booking.  Adults
// and Children are ints so the engine can defend against negative
// values from direct (non-HTTP) callers.
type CreateBookingRequest struct {
	UserID          uint64
	TourID          uint64
	StartDate       time.Time
	Adults          int
	Children        int
	Accommodation   string  // room type name; unknown input defaults to SINGLE
	PaymentMethodID *uint64 // optional
}

// BookingDetail is the enriched booking returned to callers.
type BookingDetail struct {
	ID              uint64               `json:"id"`
	UserID          uint64               `json:"user_id"`
	TourID          uint64               `json:"tour_id"`
	TourName        string               `json:"tour_name"`
	TourDescription string               `json:"tour_description"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	CreationDate    time.Time            `json:"creation_date"`
	Accommodation   string               `json:"accommodation"`
	Adults          int                  `json:"adults"`
	Children        int                  `json:"children"`
	PriceCents      uint32               `json:"price_cents"`
	PaymentMethod   *string              `json:"payment_method,omitempty"`
	Includes        []model.IncludedItem `json:"includes"`
}

// CreateBooking validates the command, reserves capacity on the
// matching availability slot and persists the booking atomically.
//
// Failure contract: ErrValidation for malformed party sizes or a start
// date not strictly in the future; repository.ErrTourNotFound /
// ErrSlotNotFound / ErrPaymentMethodNotFound when lookups miss;
// repository.ErrCapacityExceeded when the slot cannot satisfy the
// party size (nothing is mutated, and the caller should pick another
// date); repository.ErrDuplicateBooking for a repeated (tour, start
// date) booking by the same user.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDetail, error) {
	if req.Adults < 1 {
		return nil, fmt.Errorf("%w: adults must be at least 1", ErrValidation)
	}
	if req.Children < 0 {
		return nil, fmt.Errorf("%w: children must not be negative", ErrValidation)
	}
	if !req.StartDate.After(s.now()) {
		return nil, fmt.Errorf("%w: start date must be in the future", ErrValidation)
	}

	tour, err := s.tours.GetByID(ctx, req.TourID)
	if err != nil {
		return nil, err
	}
	slot, err := s.slots.FindSlot(ctx, req.TourID, req.StartDate)
	if err != nil {
		return nil, err
	}

	var methodName *string
	if req.PaymentMethodID != nil {
		method, err := s.payments.GetMethod(ctx, *req.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		methodName = &method.Name
	}

	// Enrichment data is read before the reservation so a catalog
	// failure cannot strand a persisted booking.
	includes, err := s.tours.ListIncludedItems(ctx, req.TourID)
	if err != nil {
		return nil, err
	}

	partySize := uint32(req.Adults + req.Children)
	roomType := model.ParseRoomType(req.Accommodation)

	booking := &model.Booking{
		UserID:         req.UserID,
		TourID:         req.TourID,
		AvailabilityID: slot.ID,
		StartDate:      req.StartDate.UTC(),
		EndDate:        slot.ReturnTime,
		Adults:         uint32(req.Adults),
		Children:       uint32(req.Children),
		PriceCents:     tour.BasePriceCents * partySize,
	}
	if err := s.bookings.CreateWithReservation(ctx, booking, roomType, req.PaymentMethodID); err != nil {
		return nil, err
	}

	detail := &BookingDetail{
		ID:              booking.ID,
		UserID:          booking.UserID,
		TourID:          booking.TourID,
		TourName:        tour.Name,
		TourDescription: tour.Description,
		StartDate:       booking.StartDate.Format("2006-01-02"),
		EndDate:         booking.EndDate.Format("2006-01-02"),
		CreationDate:    booking.CreatedAt,
		Accommodation:   string(roomType),
		Adults:          req.Adults,
		Children:        req.Children,
		PriceCents:      booking.PriceCents,
		PaymentMethod:   methodName,
		Includes:        includes,
	}

	if s.publish != nil {
		ev := queue.BookingCreatedEvent{
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			TourID:      booking.TourID,
			TourName:    tour.Name,
			Destination: tour.Destination,
			StartDate:   detail.StartDate,
			EndDate:     detail.EndDate,
			Adults:      uint32(req.Adults),
			Children:    uint32(req.Children),
			PriceCents:  booking.PriceCents,
			CreatedAt:   booking.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := s.publish(ctx, ev); err != nil {
			log.Printf("booking %d: publish booking.created failed: %v", booking.ID, err)
		}
	}
	return detail, nil
}

// FindSlots returns availability slots inside the inclusive date range,
// ascending by date.  The range must be well-formed.
func (s *BookingService) FindSlots(ctx context.Context, start, end time.Time) ([]model.Availability, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}
	return s.slots.FindByDateRange(ctx, start, end)
}

// CreateSlot registers a new availability slot for a tour.  This is the
// administrative path; it validates the command the same way the HTTP
// validation layer does so direct callers cannot create unusable slots.
func (s *BookingService) CreateSlot(ctx context.Context, a *model.Availability) error {
	if a.AvailableSlots < 1 {
		return fmt.Errorf("%w: available slots must be at least 1", ErrValidation)
	}
	if !a.AvailableDate.After(s.now()) {
		return fmt.Errorf("%w: available date must be in the future", ErrValidation)
	}
	if !a.ReturnTime.After(a.DepartureTime) {
		return fmt.Errorf("%w: return time must be after departure time", ErrValidation)
	}
	if _, err := s.tours.GetByID(ctx, a.TourID); err != nil {
		return err
	}
	return s.slots.Create(ctx, a)
}
