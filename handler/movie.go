package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func moviePersonRows(movieId uint, personIds []uint, role string) []model.MoviePerson {
	rows := make([]model.MoviePerson, 0, len(personIds))
	for _, id := range personIds {
		rows = append(rows, model.MoviePerson{MovieId: movieId, PersonId: id, Role: role})
	}
	return rows
}

// CreateMovie creates a movie with its genre and cast links.
// POST /api/v1/admin/movies
func CreateMovie(c *fiber.Ctx) error {
	input, ok := c.Locals("createMovieInput").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var movie model.Movie
	if err := copier.Copy(&movie, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	movie.Slug = helper.GenerateUniqueMovieSlug(database.DB, input.Title)

	var genres []model.Genre
	if err := database.DB.Find(&genres, input.GenreIds).Error; err != nil || len(genres) != len(input.GenreIds) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown genre id", err)
	}
	movie.Genres = genres

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movie).Error; err != nil {
			return err
		}
		links := append(
			moviePersonRows(movie.ID, input.DirectorIds, model.PersonRoleDirector),
			moviePersonRows(movie.ID, input.ActorIds, model.PersonRoleActor)...,
		)
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

// EditMovie applies a partial update; only set fields change.
// PUT /api/v1/admin/movies/:id
func EditMovie(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	input, ok := c.Locals("editMovieInput").(model.EditMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var movie model.Movie
	if err := database.DB.First(&movie, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}

	// copier skips nil pointer sources, so unset fields stay untouched
	if err := copier.Copy(&movie, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Title != nil {
		movie.Slug = helper.GenerateUniqueMovieSlug(database.DB, *input.Title)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&movie).Error; err != nil {
			return err
		}
		if input.GenreIds != nil {
			var genres []model.Genre
			if err := tx.Find(&genres, *input.GenreIds).Error; err != nil {
				return err
			}
			if err := tx.Model(&movie).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		if input.DirectorIds != nil {
			if err := tx.Where("movie_id = ? AND role = ?", movie.ID, model.PersonRoleDirector).
				Delete(&model.MoviePerson{}).Error; err != nil {
				return err
			}
			if rows := moviePersonRows(movie.ID, *input.DirectorIds, model.PersonRoleDirector); len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		if input.ActorIds != nil {
			if err := tx.Where("movie_id = ? AND role = ?", movie.ID, model.PersonRoleActor).
				Delete(&model.MoviePerson{}).Error; err != nil {
				return err
			}
			if rows := moviePersonRows(movie.ID, *input.ActorIds, model.PersonRoleActor); len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// DeleteMovie removes a movie that has no showtimes.
// DELETE /api/v1/admin/movies/:id
func DeleteMovie(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var count int64
	database.DB.Model(&model.Showtime{}).Where("movie_id = ?", id).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie still has showtimes", nil)
	}

	if err := database.DB.Delete(&model.Movie{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// GetMovies lists movies with optional title, genre and status filters.
// GET /api/v1/movies
func GetMovies(c *fiber.Ctx) error {
	var filter model.FilterMovieInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Movie{})
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.GenreId != 0 {
		query = query.Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
			Where("mg.genre_id = ?", filter.GenreId)
	}

	var totalCount int64
	query.Count(&totalCount)

	var movies []model.Movie
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Preload("Genres").
		Preload("Country").
		Order("date_release DESC").
		Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       movies,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GetNowShowing lists movies currently in theatres.
// GET /api/v1/movies/now-showing
func GetNowShowing(c *fiber.Ctx) error {
	var movies []model.Movie
	if err := database.DB.
		Where("status = ?", "NOW_SHOWING").
		Preload("Genres").
		Order("date_release DESC").
		Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// GetComingSoon lists announced movies not yet released.
// GET /api/v1/movies/coming-soon
func GetComingSoon(c *fiber.Ctx) error {
	var movies []model.Movie
	if err := database.DB.
		Where("status = ?", "COMING_SOON").
		Preload("Genres").
		Order("date_release ASC").
		Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// GetMovieBySlug serves the movie detail page payload.
// GET /api/v1/movies/:slug
func GetMovieBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var movie model.Movie
	if err := database.DB.
		Where("slug = ?", slug).
		Preload("Genres").
		Preload("Country").
		Preload("Persons").
		Preload("Persons.Person").
		First(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}
