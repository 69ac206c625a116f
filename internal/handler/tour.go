package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AllexanderGM/feeling-sub002/internal/model"
	"github.com/AllexanderGM/feeling-sub002/internal/repository"
)

// TourHandler serves the public tour catalog: listing with tag filters
// and single-tour detail with included items and hotels.  The catalog
// is read-only from this surface.
type TourHandler struct {
	Tours *repository.TourRepo
}

// NewTourHandler constructs a TourHandler.  Tours must be non-nil.
func NewTourHandler(tours *repository.TourRepo) *TourHandler {
	if tours == nil {
		panic("nil repository passed to NewTourHandler")
	}
	return &TourHandler{Tours: tours}
}

// ListTours handles GET /v1/tours.  The optional ?tags=a,b query
// filters to tours whose tag set intersects the given names; an empty
// or missing parameter returns all active tours.  Unknown tag names
// are normalized to the default tag and simply match nothing.
func (h *TourHandler) ListTours(c echo.Context) error {
	var tagNames []string
	if raw := strings.TrimSpace(c.QueryParam("tags")); raw != "" {
		tagNames = model.NormalizeTags(strings.Split(raw, ","))
	}
	tours, err := h.Tours.FilterByTags(c.Request().Context(), tagNames)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tours"})
	}
	items := make([]echo.Map, 0, len(tours))
	for _, t := range tours {
		items = append(items, echo.Map{
			"id":               t.ID,
			"name":             t.Name,
			"description":      t.Description,
			"destination":      t.Destination,
			"base_price_cents": t.BasePriceCents,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetTour handles GET /v1/tours/:id.  It returns the tour together
// with its included items and hotels, or 404 when the tour is absent.
func (h *TourHandler) GetTour(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tour id"})
	}
	ctx := c.Request().Context()
	tour, err := h.Tours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tour"})
	}
	includes, err := h.Tours.ListIncludedItems(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load included items"})
	}
	hotels, err := h.Tours.ListHotels(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load hotels"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":               tour.ID,
		"name":             tour.Name,
		"description":      tour.Description,
		"destination":      tour.Destination,
		"status":           tour.Status,
		"base_price_cents": tour.BasePriceCents,
		"includes":         includes,
		"hotels":           hotels,
	})
}
