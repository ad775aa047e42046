package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetUserByUsername(u string) (*model.User, error) {
	var user model.User
	if err := database.DB.Where(&model.User{Username: u}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(e string) (*model.User, error) {
	var user model.User
	if err := database.DB.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// GetInfoUserFromToken resolves the authenticated user and whether it is an
// admin. Requires middleware.Protected upstream.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}

	userIdFloat, _ := claims["userId"].(float64)
	username, _ := claims["username"].(string)

	var user model.User
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		log.Printf("token user not found: id=%d err=%v", uint(userIdFloat), err)
		return model.TokenClaim{}, false
	}

	return model.TokenClaim{
		UserId:   user.ID,
		Username: username,
		Role:     user.Role,
	}, user.Role == constants.ROLE_ADMIN
}

// GetCurrentUser returns the logged-in user, or nil for guests. Works behind
// OptionalJWT as well as Protected.
func GetCurrentUser(c *fiber.Ctx) *model.User {
	if u, ok := c.Locals("currentUser").(*model.User); ok && u != nil {
		return u
	}

	tokenVal := c.Locals("user")
	if tokenVal == nil {
		return nil
	}
	token, ok := tokenVal.(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	userIdFloat, ok := claims["userId"].(float64)
	if !ok || userIdFloat == 0 {
		return nil
	}

	var user model.User
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		return nil
	}
	c.Locals("currentUser", &user)
	return &user
}
