package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AllexanderGM/feeling-sub002/internal/repository"
	"github.com/AllexanderGM/feeling-sub002/internal/service"
)

// BookingHandler serves the booking endpoints.  Creation goes through
// the booking engine so the reserve-then-persist sequence stays
// atomic; listing and single-booking reads go straight to the
// repository.  All methods assume JWT authentication and role checks
// have already run in middleware.
type BookingHandler struct {
	Svc      *service.BookingService
	Bookings *repository.BookingRepo
	Tours    *repository.TourRepo
}

// NewBookingHandler constructs a BookingHandler with the provided
// dependencies.  All of them must be non-nil.
func NewBookingHandler(svc *service.BookingService, bookings *repository.BookingRepo, tours *repository.TourRepo) *BookingHandler {
	if svc == nil || bookings == nil || tours == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc, Bookings: bookings, Tours: tours}
}

type createBookingReq struct {
	TourID          uint64  `json:"tour_id"`
	StartDate       string  `json:"start_date"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Accommodation   string  `json:"accommodation"` // optional; defaults to SINGLE
	PaymentMethodID *uint64 `json:"payment_method_id"`
}

// CreateBooking handles POST /v1/bookings.  It validates the command,
// delegates to the booking engine and maps the engine's error contract
// onto HTTP statuses: 400 for validation failures, 404 for missing
// tour/slot/payment method, 409 when capacity is exhausted or the user
// already booked this tour and date.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.TourID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tour_id is required"})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_date"})
	}

	detail, err := h.Svc.CreateBooking(c.Request().Context(), service.CreateBookingRequest{
		UserID:          userID,
		TourID:          req.TourID,
		StartDate:       start,
		Adults:          req.Adults,
		Children:        req.Children,
		Accommodation:   req.Accommodation,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrTourNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		case errors.Is(err, repository.ErrSlotNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no availability for this date"})
		case errors.Is(err, repository.ErrPaymentMethodNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment method not found"})
		case errors.Is(err, repository.ErrCapacityExceeded):
			return c.JSON(http.StatusConflict, echo.Map{"error": "not enough available slots"})
		case errors.Is(err, repository.ErrDuplicateBooking):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking already exists for this tour and date"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
		}
	}
	return c.JSON(http.StatusCreated, detail)
}

// ListBookings handles GET /v1/bookings.  It returns the caller's
// bookings with tour and payment context, newest first.  When no
// bookings exist, it returns an empty array.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	rows, err := h.Bookings.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

// GetBooking handles GET /v1/bookings/:id.  It returns the booking
// enriched with the tour's included items.  Ownership is enforced in
// the repository query, so a foreign booking reads as 404.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx := c.Request().Context()
	row, err := h.Bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch booking"})
	}
	includes, err := h.Tours.ListIncludedItems(ctx, row.TourID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load included items"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item":     row,
		"includes": includes,
	})
}
