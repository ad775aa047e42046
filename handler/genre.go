package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/v1/genres
func GetGenres(c *fiber.Ctx) error {
	var genres []model.Genre
	if err := database.DB.Order("name ASC").Find(&genres).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genres)
}

// POST /api/v1/admin/genres
func CreateGenre(c *fiber.Ctx) error {
	var input model.Genre
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre name is required", nil)
	}

	genre := model.Genre{Name: input.Name}
	if err := database.DB.Create(&genre).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, genre)
}

// EditGenre runs behind validate.GetById.
// PUT /api/v1/admin/genres/:id
func EditGenre(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	var input model.Genre
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var genre model.Genre
	if err := database.DB.First(&genre, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	if err := database.DB.Model(&genre).Update("name", input.Name).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genre)
}

// DeleteGenre runs behind validate.GetById.
// DELETE /api/v1/admin/genres/:id
func DeleteGenre(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	if err := database.DB.Delete(&model.Genre{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
