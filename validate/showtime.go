package validate

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowtimeInput
		if !parseBody(c, &input) {
			return nil
		}

		var movie model.Movie
		if err := database.DB.First(&movie, input.MovieId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Movie does not exist", err, "movieId")
		}
		var room model.Room
		if err := database.DB.First(&room, input.RoomId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room does not exist", err, "roomId")
		}

		c.Locals("createShowtimeInput", input)
		return c.Next()
	}
}

func CreateShowtimeBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowtimeBatchInput
		if !parseBody(c, &input) {
			return nil
		}

		var movie model.Movie
		if err := database.DB.First(&movie, input.MovieId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Movie does not exist", err, "movieId")
		}
		var count int64
		if err := database.DB.Model(&model.Room{}).Where("id IN ?", input.RoomIds).Count(&count).Error; err == nil &&
			count != int64(len(input.RoomIds)) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "One or more rooms do not exist", nil, "roomIds")
		}

		c.Locals("createShowtimeBatchInput", input)
		return c.Next()
	}
}

func EditShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditShowtimeInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("editShowtimeInput", input)
		return c.Next()
	}
}
