package handler

import (
	"fmt"
	"strings"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cleaningBuffer is the gap kept between screenings in the same room.
const cleaningBuffer = 15 * time.Minute

func newPublicCode() string {
	return "ST-" + strings.ToUpper(uuid.New().String()[:8])
}

// roomHasOverlap reports whether another showtime in the room overlaps
// [start, end) including the cleaning buffer.
func roomHasOverlap(tx *gorm.DB, roomId uint, start, end time.Time, excludeId uint) (bool, error) {
	var count int64
	query := tx.Model(&model.Showtime{}).
		Where("room_id = ?", roomId).
		Where("start_time < ? AND end_time > ?", end.Add(cleaningBuffer), start.Add(-cleaningBuffer))
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func buildShowtime(tx *gorm.DB, movieId, roomId uint, startTime time.Time, priceOverride *float64) (*model.Showtime, error) {
	var movie model.Movie
	if err := tx.First(&movie, movieId).Error; err != nil {
		return nil, fmt.Errorf("movie not found")
	}
	var room model.Room
	if err := tx.First(&room, roomId).Error; err != nil {
		return nil, fmt.Errorf("room not found")
	}

	endTime := startTime.Add(time.Duration(movie.Duration) * time.Minute)

	overlap, err := roomHasOverlap(tx, room.ID, startTime, endTime, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, fmt.Errorf("room %s is occupied at %s", room.Name, startTime.Format("02/01 15:04"))
	}

	price := helper.ResolveTicketPrice(room.RoomType, startTime)
	if priceOverride != nil {
		price = *priceOverride
	}

	return &model.Showtime{
		PublicCode: newPublicCode(),
		StartTime:  startTime,
		EndTime:    endTime,
		Price:      price,
		Status:     "SCHEDULED",
		MovieId:    movie.ID,
		RoomId:     room.ID,
	}, nil
}

// POST /api/v1/admin/showtimes
func CreateShowtime(c *fiber.Ctx) error {
	input, ok := c.Locals("createShowtimeInput").(model.CreateShowtimeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	if input.StartTime.Before(time.Now()) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Start time is in the past", nil)
	}

	showtime, err := buildShowtime(database.DB, input.MovieId, input.RoomId, input.StartTime, input.Price)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	if err := database.DB.Create(showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, showtime)
}

// CreateShowtimeBatch schedules one showtime per room, day and time slot.
// Slots that clash with existing screenings are reported, not created.
// POST /api/v1/admin/showtimes/batch
func CreateShowtimeBatch(c *fiber.Ctx) error {
	input, ok := c.Locals("createShowtimeBatchInput").(model.CreateShowtimeBatchInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	startDate, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "startDate must be YYYY-MM-DD", err)
	}
	endDate, err := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate must be YYYY-MM-DD", err)
	}
	if endDate.Before(startDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate is before startDate", nil)
	}

	slots := make([]time.Duration, 0, len(input.TimeSlots))
	for _, s := range input.TimeSlots {
		t, err := time.Parse("15:04", s)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("time slot %q must be HH:MM", s), err)
		}
		slots = append(slots, time.Duration(t.Hour())*time.Hour+time.Duration(t.Minute())*time.Minute)
	}

	var created []model.Showtime
	var skipped []string

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
			for _, roomId := range input.RoomIds {
				for i, slot := range slots {
					start := day.Add(slot)
					if start.Before(time.Now()) {
						skipped = append(skipped, fmt.Sprintf("%s %s: in the past", day.Format("2006-01-02"), input.TimeSlots[i]))
						continue
					}
					showtime, err := buildShowtime(tx, input.MovieId, roomId, start, nil)
					if err != nil {
						skipped = append(skipped, err.Error())
						continue
					}
					if err := tx.Create(showtime).Error; err != nil {
						return err
					}
					created = append(created, *showtime)
				}
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"created": created,
		"skipped": skipped,
	})
}

// PUT /api/v1/admin/showtimes/:id
func EditShowtime(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	input, ok := c.Locals("editShowtimeInput").(model.EditShowtimeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var showtime model.Showtime
	if err := database.DB.Preload("Movie").First(&showtime, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}

	var sold int64
	database.DB.Model(&model.Ticket{}).Where("showtime_id = ?", showtime.ID).Count(&sold)
	if sold > 0 && (input.StartTime != nil || input.RoomId != nil || input.MovieId != nil) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime has sold tickets, schedule cannot change", nil)
	}

	if input.MovieId != nil {
		showtime.MovieId = *input.MovieId
		if err := database.DB.First(&showtime.Movie, *input.MovieId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie not found", err)
		}
	}
	if input.RoomId != nil {
		showtime.RoomId = *input.RoomId
	}
	if input.StartTime != nil {
		showtime.StartTime = *input.StartTime
		showtime.EndTime = input.StartTime.Add(time.Duration(showtime.Movie.Duration) * time.Minute)
	}
	if input.Price != nil {
		showtime.Price = *input.Price
	}

	if input.StartTime != nil || input.RoomId != nil {
		overlap, err := roomHasOverlap(database.DB, showtime.RoomId, showtime.StartTime, showtime.EndTime, showtime.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if overlap {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Room is occupied at that time", nil)
		}
	}

	if err := database.DB.Save(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

// DELETE /api/v1/admin/showtimes/:id
func DeleteShowtime(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var sold int64
	database.DB.Model(&model.Ticket{}).Where("showtime_id = ?", id).Count(&sold)
	if sold > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime has sold tickets", nil)
	}

	if err := database.DB.Delete(&model.Showtime{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// DeleteShowtimeBatch removes several empty showtimes at once; ids come from
// validate.Delete. Any showtime with sold tickets stops the whole batch.
// DELETE /api/v1/admin/showtimes
func DeleteShowtimeBatch(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var sold int64
	database.DB.Model(&model.Ticket{}).Where("showtime_id IN ?", input.IDs).Count(&sold)
	if sold > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "One or more showtimes have sold tickets", nil)
	}

	if err := database.DB.Delete(&model.Showtime{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// GetShowtimes lists showtimes filtered by movie, cinema, room or date.
// GET /api/v1/showtimes
func GetShowtimes(c *fiber.Ctx) error {
	var filter model.FilterShowtimeInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Showtime{})
	if filter.MovieId != 0 {
		query = query.Where("movie_id = ?", filter.MovieId)
	}
	if filter.RoomId != 0 {
		query = query.Where("room_id = ?", filter.RoomId)
	}
	if filter.CinemaId != 0 {
		query = query.Joins("JOIN rooms ON rooms.id = showtimes.room_id").
			Where("rooms.cinema_id = ?", filter.CinemaId)
	}
	if filter.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", filter.Date, time.Local)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", err)
		}
		query = query.Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1))
	}

	var totalCount int64
	query.Count(&totalCount)

	var showtimes []model.Showtime
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Preload("Movie").
		Preload("Room").
		Preload("Room.Cinema").
		Order("start_time ASC").
		Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GET /api/v1/showtimes/:id
func GetShowtimeById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	var showtime model.Showtime
	if err := database.DB.
		Preload("Movie").
		Preload("Room").
		Preload("Room.Cinema").
		First(&showtime, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}
