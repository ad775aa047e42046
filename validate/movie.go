package validate

import (
	"fmt"

	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func personsExist(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := database.DB.Model(&model.Person{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return fmt.Errorf("one or more person ids do not exist")
	}
	return nil
}

func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovieInput
		if !parseBody(c, &input) {
			return nil
		}

		var existing model.Movie
		if err := database.DB.Where("title = ?", input.Title).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Movie title already exists", nil, "title")
		}

		if input.CountryId != nil {
			var country model.Country
			if err := database.DB.First(&country, *input.CountryId).Error; err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Country does not exist", err, "countryId")
			}
		}
		if err := personsExist(input.DirectorIds); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "directorIds")
		}
		if err := personsExist(input.ActorIds); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "actorIds")
		}
		if input.DateEnd != nil && input.DateEnd.Before(input.DateRelease) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "End date is before release date", nil, "dateEnd")
		}

		c.Locals("createMovieInput", input)
		return c.Next()
	}
}

func EditMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditMovieInput
		if !parseBody(c, &input) {
			return nil
		}

		if input.DirectorIds != nil {
			if err := personsExist(*input.DirectorIds); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "directorIds")
			}
		}
		if input.ActorIds != nil {
			if err := personsExist(*input.ActorIds); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "actorIds")
			}
		}

		c.Locals("editMovieInput", input)
		return c.Next()
	}
}
