package validate

import (
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCinemaInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("createCinemaInput", input)
		return c.Next()
	}
}

func EditCinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCinemaInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("editCinemaInput", input)
		return c.Next()
	}
}

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("createRoomInput", input)
		return c.Next()
	}
}

func EditRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditRoomInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("editRoomInput", input)
		return c.Next()
	}
}

func UpsertTicketPrice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpsertTicketPriceInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("upsertTicketPriceInput", input)
		return c.Next()
	}
}
