package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

type uploadSigParams struct {
	Folder   string `json:"folder"`
	PublicID string `json:"publicId"`
}

// GetUploadSignature signs client-side Cloudinary upload parameters so the
// browser can upload directly. Signable params are sorted and joined raw,
// without URL encoding, per the Cloudinary signing rules.
// POST /api/v1/admin/media/signature
func GetUploadSignature(c *fiber.Ctx) error {
	var params uploadSigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadMoviePoster uploads a poster through the server and stores the URL
// on the movie.
// POST /api/v1/admin/movies/:id/poster
func UploadMoviePoster(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var movie model.Movie
	if err := database.DB.First(&movie, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}

	file, err := c.FormFile("poster")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Poster file is required", err)
	}
	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read poster file", err)
	}
	defer reader.Close()

	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot init media client", err)
	}

	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "movies/posters",
		PublicID:     fmt.Sprintf("movie_%d_poster_%d", movie.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Poster upload failed", err)
	}

	if err := database.DB.Model(&movie).Update("poster_url", result.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"posterUrl": result.SecureURL,
	})
}
