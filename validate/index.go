package validate

import (
	"errors"
	"strconv"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody parses and validates the request body into out. A false return
// means the rejection response has already been written and the chain must
// not continue.
func parseBody(c *fiber.Ctx, out interface{}) bool {
	if err := c.BodyParser(out); err != nil {
		_ = utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		return false
	}
	if err := validate.Struct(out); err != nil {
		_ = utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		return false
	}
	return true
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if len(input.IDs) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "IDs must not be empty", nil)
		}

		c.Locals("deleteIds", input)
		return c.Next()
	}
}
