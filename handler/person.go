package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GET /api/v1/persons
func GetPersons(c *fiber.Ctx) error {
	var filter model.FilterPersonInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Person{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Role != "" {
		query = query.Joins("JOIN movie_people mp ON mp.person_id = people.id").
			Where("mp.role = ?", filter.Role).
			Distinct()
	}

	var totalCount int64
	query.Count(&totalCount)

	var persons []model.Person
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("name ASC").
		Find(&persons).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       persons,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GET /api/v1/persons/:id
func GetPersonById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	var person model.Person
	if err := database.DB.First(&person, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, person)
}

// POST /api/v1/admin/persons
func CreatePerson(c *fiber.Ctx) error {
	input, ok := c.Locals("createPersonInput").(model.CreatePersonInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var person model.Person
	if err := copier.Copy(&person, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Create(&person).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, person)
}

// PUT /api/v1/admin/persons/:id
func EditPerson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	input, ok := c.Locals("updatePersonInput").(model.UpdatePersonInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var person model.Person
	if err := database.DB.First(&person, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	if err := copier.Copy(&person, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Save(&person).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, person)
}

// DELETE /api/v1/admin/persons/:id
func DeletePerson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var count int64
	database.DB.Model(&model.MoviePerson{}).Where("person_id = ?", id).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Person is still linked to movies", nil)
	}

	if err := database.DB.Delete(&model.Person{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
