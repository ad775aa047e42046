package validate

import (
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("createBookingInput", input)
		return c.Next()
	}
}

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("createPaymentInput", input)
		return c.Next()
	}
}
