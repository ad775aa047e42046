package validate

import (
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("registerInput", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangePasswordInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("changePasswordInput", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("forgotPasswordInput", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("resetPasswordInput", input)
		return c.Next()
	}
}
