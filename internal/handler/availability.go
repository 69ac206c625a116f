package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
	"github.com/AllexanderGM/feeling-sub002/internal/repository"
	"github.com/AllexanderGM/feeling-sub002/internal/service"
)

// AvailabilityHandler exposes availability slot queries and the
// administrative slot-creation endpoint.
type AvailabilityHandler struct {
	Svc *service.BookingService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc *service.BookingService) *AvailabilityHandler {
	if svc == nil {
		panic("nil service passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{Svc: svc}
}

type slotResp struct {
	ID             uint64 `json:"id"`
	TourID         uint64 `json:"tour_id"`
	AvailableDate  string `json:"available_date"`
	AvailableSlots uint32 `json:"available_slots"`
	DepartureTime  string `json:"departure_time"`
	ReturnTime     string `json:"return_time"`
}

func toSlotResp(a model.Availability) slotResp {
	return slotResp{
		ID:             a.ID,
		TourID:         a.TourID,
		AvailableDate:  a.AvailableDate.UTC().Format("2006-01-02"),
		AvailableSlots: a.AvailableSlots,
		DepartureTime:  a.DepartureTime.UTC().Format(time.RFC3339),
		ReturnTime:     a.ReturnTime.UTC().Format(time.RFC3339),
	}
}

// ListSlots handles GET /v1/availabilities?start=...&end=....  Both
// bounds are required calendar dates; the scan is inclusive and the
// result is ordered ascending by date.
func (h *AvailabilityHandler) ListSlots(c echo.Context) error {
	start, err := parseDate(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := parseDate(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}
	slots, err := h.Svc.FindSlots(c.Request().Context(), start, end)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load availabilities"})
	}
	items := make([]slotResp, 0, len(slots))
	for _, a := range slots {
		items = append(items, toSlotResp(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type createSlotReq struct {
	TourID         uint64 `json:"tour_id"`
	AvailableDate  string `json:"available_date"`
	AvailableSlots uint32 `json:"available_slots"`
	DepartureTime  string `json:"departure_time"`
	ReturnTime     string `json:"return_time"`
}

// CreateSlot handles POST /v1/availabilities (ADMIN only).  The date
// must be in the future and the slot count at least 1; validation is
// repeated in the engine so direct callers get the same contract.
func (h *AvailabilityHandler) CreateSlot(c echo.Context) error {
	var req createSlotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.TourID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tour_id is required"})
	}
	date, err := parseDate(req.AvailableDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available_date"})
	}
	dep, err := parseDate(req.DepartureTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid departure_time"})
	}
	ret, err := parseDate(req.ReturnTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid return_time"})
	}
	slot := &model.Availability{
		TourID:         req.TourID,
		AvailableDate:  date,
		AvailableSlots: req.AvailableSlots,
		DepartureTime:  dep,
		ReturnTime:     ret,
	}
	if err := h.Svc.CreateSlot(c.Request().Context(), slot); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrTourNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create availability"})
		}
	}
	return c.JSON(http.StatusCreated, toSlotResp(*slot))
}
