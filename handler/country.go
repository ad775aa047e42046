package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/v1/countries
func GetCountries(c *fiber.Ctx) error {
	var countries []model.Country
	if err := database.DB.Order("name ASC").Find(&countries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, countries)
}

// POST /api/v1/admin/countries
func CreateCountry(c *fiber.Ctx) error {
	var input model.Country
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Country name is required", nil)
	}

	country := model.Country{Name: input.Name, Code: input.Code}
	if err := database.DB.Create(&country).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, country)
}

// EditCountry runs behind validate.GetById.
// PUT /api/v1/admin/countries/:id
func EditCountry(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	var input model.Country
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var country model.Country
	if err := database.DB.First(&country, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	if err := database.DB.Model(&country).Updates(model.Country{Name: input.Name, Code: input.Code}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, country)
}

// DeleteCountry runs behind validate.GetById.
// DELETE /api/v1/admin/countries/:id
func DeleteCountry(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	database.DB.Model(&model.Movie{}).Where("country_id = ?", id).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Country is still referenced by movies", nil)
	}

	if err := database.DB.Delete(&model.Country{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
