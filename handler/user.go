package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GET /api/v1/admin/users
func GetUsers(c *fiber.Ctx) error {
	var filter model.FilterUserInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.User{})
	if filter.Username != "" {
		query = query.Where("username ILIKE ?", "%"+filter.Username+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var totalCount int64
	query.Count(&totalCount)

	var users []model.User
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// POST /api/v1/admin/users
func CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("createUserInput").(model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if existing, _ := helper.GetUserByUsername(input.Username); existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Username already taken", nil)
	}
	if existing, _ := helper.GetUserByEmail(input.Email); existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Email already registered", nil)
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	var user model.User
	if err := copier.Copy(&user, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	user.Password = hash
	user.IsActive = true

	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

// PUT /api/v1/admin/users/:id
func EditUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	input, ok := c.Locals("updateUserInput").(model.UpdateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var user model.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	if err := copier.Copy(&user, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// DeleteUser deactivates the account; orders keep their history.
// DELETE /api/v1/admin/users/:id
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uint(id) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot deactivate yourself", nil)
	}

	if err := database.DB.Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deactivated": true})
}
