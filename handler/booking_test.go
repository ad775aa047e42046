package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"cinema_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An empty selection must be turned away by the validation layer, before the
// booking handler touches any seat or order state.
func TestCreateBookingRejectsEmptySelection(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/bookings", validate.CreateBooking(), CreateBooking)

	for name, body := range map[string]string{
		"empty seat list": `{"showtimeId": 1, "seatCodes": []}`,
		"no seat list":    `{"showtimeId": 1}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/api/v1/bookings", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
