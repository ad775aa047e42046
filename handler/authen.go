package handler

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(60 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Login checks credentials and answers with a token pair, also set as
// HTTP-only cookies.
// POST /api/v1/auth/login
func Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.Username == "" || input.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, nil)
	}

	user, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, nil)
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
	}
	if !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, nil)
	}

	claim := model.TokenClaim{UserId: user.ID, Username: user.Username, Role: user.Role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, accessToken, refreshToken)

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
// POST /api/v1/auth/refresh
func RefreshToken(c *fiber.Ctx) error {
	token := c.Cookies("refresh_token")
	if token == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&body); err == nil {
			token = body.RefreshToken
		}
	}
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", nil)
	}

	parsed, err := helper.ParseToken(token)
	if err != nil || !parsed.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", nil)
	}
	userId, _ := claims["userId"].(float64)

	var user model.User
	if err := database.DB.First(&user, uint(userId)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, err)
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
	}

	claim := model.TokenClaim{UserId: user.ID, Username: user.Username, Role: user.Role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, accessToken, refreshToken)

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout clears the auth cookies.
// POST /api/v1/auth/logout
func Logout(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true})
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"loggedOut": true})
}

// Register creates a customer account.
// POST /api/v1/auth/register
func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("registerInput").(model.RegisterInput)
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

	user := model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     constants.ROLE_CUSTOMER,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

// Me returns the authenticated user.
// GET /api/v1/auth/me
func Me(c *fiber.Ctx) error {
	user := helper.GetCurrentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Login required", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// ChangePassword verifies the current password and stores a new hash.
// POST /api/v1/auth/change-password
func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("changePasswordInput").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	user := helper.GetCurrentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Login required", nil)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, nil)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}
	if err := database.DB.Model(user).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"changed": true})
}

// ForgotPassword issues a reset token and emails the reset link. The answer
// is the same whether or not the email exists.
// POST /api/v1/auth/forgot-password
func ForgotPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("forgotPasswordInput").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user != nil {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		token := hex.EncodeToString(raw)

		reset := model.PasswordResetToken{
			UserId:    user.ID,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		if err := database.DB.Create(&reset).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}

		link := config.Config("FRONTEND_URL") + "/reset-password?token=" + token
		go func() {
			if err := utils.SendPasswordResetEmail(user.Email, link); err != nil {
				log.Printf("auth: cannot send reset email to %s: %v", user.Email, err)
			}
		}()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "If the email exists, a reset link has been sent",
	})
}

// ResetPassword consumes a reset token and stores the new password.
// POST /api/v1/auth/reset-password
func ResetPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("resetPasswordInput").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var reset model.PasswordResetToken
	if err := database.DB.Where("token = ?", input.Token).First(&reset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired token", err)
	}
	if reset.ExpiresAt.Before(time.Now()) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired token", nil)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	if err := database.DB.Model(&model.User{}).
		Where("id = ?", reset.UserId).
		Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	database.DB.Delete(&reset)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"reset": true})
}
