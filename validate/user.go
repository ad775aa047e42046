package validate

import (
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateUserInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("createUserInput", input)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateUserInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("updateUserInput", input)
		return c.Next()
	}
}
