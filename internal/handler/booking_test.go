package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
	"github.com/AllexanderGM/feeling-sub002/internal/repository"
	"github.com/AllexanderGM/feeling-sub002/internal/service"
)

// In-memory stores backing the booking engine for handler tests.

type stubTours struct{ tour *model.Tour }

func (s *stubTours) GetByID(_ context.Context, id uint64) (*model.Tour, error) {
	if s.tour == nil || s.tour.ID != id {
		return nil, repository.ErrTourNotFound
	}
	cp := *s.tour
	return &cp, nil
}

func (s *stubTours) ListIncludedItems(_ context.Context, _ uint64) ([]model.IncludedItem, error) {
	return []model.IncludedItem{{ID: 1, TourID: s.tour.ID, Name: "Breakfast"}}, nil
}

type stubSlots struct {
	mu   sync.Mutex
	slot *model.Availability
}

func (s *stubSlots) FindSlot(_ context.Context, tourID uint64, date time.Time) (*model.Availability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot == nil || s.slot.TourID != tourID ||
		s.slot.AvailableDate.UTC().Format("2006-01-02") != date.UTC().Format("2006-01-02") {
		return nil, repository.ErrSlotNotFound
	}
	cp := *s.slot
	return &cp, nil
}

func (s *stubSlots) FindByDateRange(_ context.Context, start, end time.Time) ([]model.Availability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot == nil || s.slot.AvailableDate.Before(start) || s.slot.AvailableDate.After(end) {
		return nil, nil
	}
	return []model.Availability{*s.slot}, nil
}

func (s *stubSlots) Create(_ context.Context, a *model.Availability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = 1
	cp := *a
	s.slot = &cp
	return nil
}

type stubPayments struct{}

func (stubPayments) GetMethod(_ context.Context, id uint64) (*model.PaymentMethod, error) {
	if id != 7 {
		return nil, repository.ErrPaymentMethodNotFound
	}
	return &model.PaymentMethod{ID: 7, Name: "Credit card"}, nil
}

type stubBookings struct {
	slots *stubSlots
}

func (s *stubBookings) CreateWithReservation(_ context.Context, b *model.Booking, _ model.RoomType, _ *uint64) error {
	s.slots.mu.Lock()
	defer s.slots.mu.Unlock()
	need := b.Adults + b.Children
	if s.slots.slot == nil || s.slots.slot.ID != b.AvailabilityID {
		return repository.ErrSlotNotFound
	}
	if s.slots.slot.AvailableSlots < need {
		return repository.ErrCapacityExceeded
	}
	s.slots.slot.AvailableSlots -= need
	b.ID = 100
	b.CreatedAt = time.Now().UTC()
	return nil
}

func newBookingTestHandler(t *testing.T, capacity uint32, start time.Time) (*BookingHandler, *stubSlots) {
	t.Helper()
	tours := &stubTours{tour: &model.Tour{ID: 1, Name: "Cartagena Escape", Destination: "Cartagena", Status: "ACTIVE", BasePriceCents: 125000}}
	slots := &stubSlots{}
	require.NoError(t, slots.Create(context.Background(), &model.Availability{
		TourID: 1, AvailableDate: start, AvailableSlots: capacity,
		DepartureTime: start, ReturnTime: start.AddDate(0, 0, 4),
	}))
	svc := service.NewBookingService(tours, slots, stubPayments{}, &stubBookings{slots: slots}, nil)
	return &BookingHandler{Svc: svc}, slots
}

func postBooking(h *BookingHandler, userID interface{}, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}
	_ = h.CreateBooking(c)
	return rec
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 1, 0)
	h, slots := newBookingTestHandler(t, 10, start)

	body := `{"tour_id":1,"start_date":"` + start.Format("2006-01-02") + `","adults":2,"children":1,"accommodation":"double"}`
	rec := postBooking(h, uint64(42), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got service.BookingDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(42), got.UserID)
	assert.Equal(t, "Cartagena Escape", got.TourName)
	assert.Equal(t, uint32(375000), got.PriceCents)
	assert.Equal(t, "DOUBLE", got.Accommodation)
	assert.Len(t, got.Includes, 1)

	slots.mu.Lock()
	defer slots.mu.Unlock()
	assert.Equal(t, uint32(7), slots.slot.AvailableSlots)
}

func TestCreateBookingHandlerUnauthorized(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 1, 0)
	h, _ := newBookingTestHandler(t, 10, start)

	rec := postBooking(h, nil, `{"tour_id":1,"start_date":"2030-01-01","adults":1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandlerBadRequest(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 1, 0)
	h, _ := newBookingTestHandler(t, 10, start)
	day := start.Format("2006-01-02")

	cases := []struct {
		name string
		body string
	}{
		{"missing tour", `{"start_date":"` + day + `","adults":1}`},
		{"bad date", `{"tour_id":1,"start_date":"01/02/2030","adults":1}`},
		{"zero adults", `{"tour_id":1,"start_date":"` + day + `","adults":0}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postBooking(h, uint64(42), tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateBookingHandlerNotFound(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 1, 0)
	h, _ := newBookingTestHandler(t, 10, start)
	day := start.Format("2006-01-02")

	rec := postBooking(h, uint64(42), `{"tour_id":99,"start_date":"`+day+`","adults":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	otherDay := start.AddDate(0, 0, 1).Format("2006-01-02")
	rec = postBooking(h, uint64(42), `{"tour_id":1,"start_date":"`+otherDay+`","adults":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBookingHandlerConflictOnFullSlot(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 1, 0)
	h, slots := newBookingTestHandler(t, 2, start)
	day := start.Format("2006-01-02")

	rec := postBooking(h, uint64(42), `{"tour_id":1,"start_date":"`+day+`","adults":3}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	slots.mu.Lock()
	defer slots.mu.Unlock()
	assert.Equal(t, uint32(2), slots.slot.AvailableSlots)
}
