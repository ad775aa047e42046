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

// GET /api/v1/cinemas
func GetCinemas(c *fiber.Ctx) error {
	var filter model.FilterCinemaInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Cinema{}).Where("is_active = ?", true)
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Province != "" {
		query = query.Where("province = ?", filter.Province)
	}

	var totalCount int64
	query.Count(&totalCount)

	var cinemas []model.Cinema
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("name ASC").
		Find(&cinemas).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       cinemas,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GET /api/v1/cinemas/:slug
func GetCinemaBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var cinema model.Cinema
	if err := database.DB.
		Where("slug = ?", slug).
		Preload("Rooms").
		First(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

// POST /api/v1/admin/cinemas
func CreateCinema(c *fiber.Ctx) error {
	input, ok := c.Locals("createCinemaInput").(model.CreateCinemaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var cinema model.Cinema
	if err := copier.Copy(&cinema, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	cinema.Slug = helper.GenerateUniqueCinemaSlug(database.DB, input.Name)
	cinema.IsActive = true

	if err := database.DB.Create(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, cinema)
}

// PUT /api/v1/admin/cinemas/:id
func EditCinema(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	input, ok := c.Locals("editCinemaInput").(model.EditCinemaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var cinema model.Cinema
	if err := database.DB.First(&cinema, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	if err := copier.Copy(&cinema, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Name != nil {
		cinema.Slug = helper.GenerateUniqueCinemaSlug(database.DB, *input.Name)
	}
	if err := database.DB.Save(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

// DELETE /api/v1/admin/cinemas/:id
func DeleteCinema(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var count int64
	database.DB.Model(&model.Room{}).Where("cinema_id = ?", id).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cinema still has rooms", nil)
	}

	if err := database.DB.Delete(&model.Cinema{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// POST /api/v1/admin/rooms
func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("createRoomInput").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var cinema model.Cinema
	if err := database.DB.First(&cinema, input.CinemaId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cinema not found", err)
	}

	var room model.Room
	if err := copier.Copy(&room, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	room.IsActive = true

	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

// PUT /api/v1/admin/rooms/:id
func EditRoom(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	input, ok := c.Locals("editRoomInput").(model.EditRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}

	// shrinking the grid would orphan sold seats
	if input.RowNumber != nil || input.ColumnNumber != nil {
		var sold int64
		database.DB.Model(&model.Ticket{}).
			Joins("JOIN showtimes ON showtimes.id = tickets.showtime_id").
			Where("showtimes.room_id = ?", room.ID).
			Count(&sold)
		if sold > 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Room has sold tickets, grid cannot change", nil)
		}
	}

	if err := copier.Copy(&room, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Save(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// DELETE /api/v1/admin/rooms/:id
func DeleteRoom(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var count int64
	database.DB.Model(&model.Showtime{}).Where("room_id = ?", id).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Room still has showtimes", nil)
	}

	if err := database.DB.Delete(&model.Room{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// GET /api/v1/ticket-prices
func GetTicketPrices(c *fiber.Ctx) error {
	var prices []model.TicketPrice
	if err := database.DB.Order("room_type ASC, day_type ASC").Find(&prices).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, prices)
}

// UpsertTicketPrice sets the base price of a room type / day type pair.
// PUT /api/v1/admin/ticket-prices
func UpsertTicketPrice(c *fiber.Ctx) error {
	input, ok := c.Locals("upsertTicketPriceInput").(model.UpsertTicketPriceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var price model.TicketPrice
	err := database.DB.
		Where(model.TicketPrice{RoomType: input.RoomType, DayType: input.DayType}).
		Assign(model.TicketPrice{Price: input.Price}).
		FirstOrCreate(&price).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, price)
}
