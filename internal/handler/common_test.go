package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetUserIDAcceptsNumericEncodings(t *testing.T) {
	cases := []struct {
		name string
		val  interface{}
	}{
		{"uint64", uint64(42)},
		{"int", int(42)},
		{"int64", int64(42)},
		{"float64", float64(42)},
		{"string", "42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testContext()
			c.Set("user_id", tc.val)
			got, err := getUserID(c)
			require.NoError(t, err)
			assert.Equal(t, uint64(42), got)
		})
	}
}

func TestGetUserIDRejectsMissingOrGarbage(t *testing.T) {
	c := testContext()
	_, err := getUserID(c)
	assert.Error(t, err)

	c.Set("user_id", "not-a-number")
	_, err = getUserID(c)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("2026-09-15T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC), d)

	_, err = parseDate("15/09/2026")
	assert.Error(t, err)
}
