package validate

import (
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func CreatePerson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePersonInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("createPersonInput", input)
		return c.Next()
	}
}

func UpdatePerson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePersonInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("updatePersonInput", input)
		return c.Next()
	}
}
