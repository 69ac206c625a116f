package handler

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// SystemHandler serves the system-info endpoint.  The handler captures
// the process start time at construction so it can report uptime.
type SystemHandler struct {
	Name      string
	Version   string
	Env       string
	startedAt time.Time
}

// NewSystemHandler constructs a SystemHandler stamped with the current time.
func NewSystemHandler(name, version, env string) *SystemHandler {
	return &SystemHandler{Name: name, Version: version, Env: env, startedAt: time.Now().UTC()}
}

// Info handles GET /v1/system.  It reports service identity, runtime
// and uptime information for operators and smoke tests.
func (h *SystemHandler) Info(c echo.Context) error {
	host, _ := os.Hostname()
	now := time.Now().UTC()
	return c.JSON(http.StatusOK, echo.Map{
		"name":       h.Name,
		"version":    h.Version,
		"env":        h.Env,
		"hostname":   host,
		"go_version": runtime.Version(),
		"started_at": h.startedAt.Format(time.RFC3339),
		"uptime":     now.Sub(h.startedAt).Round(time.Second).String(),
		"now":        now.Format(time.RFC3339),
	})
}
