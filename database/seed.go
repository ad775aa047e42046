package database

import (
	"log"

	"cinema_booking/constants"
	"cinema_booking/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Username: "administrator", Email: "admin@cinemabooking.local", Password: hashPassword, Role: constants.ROLE_ADMIN, IsActive: true},
	}
	for _, user := range users {
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Username, "error:", err)
		}
	}

	genres := []model.Genre{
		{Name: "Action"}, {Name: "Comedy"}, {Name: "Drama"},
		{Name: "Horror"}, {Name: "Animation"}, {Name: "Romance"},
	}
	for _, genre := range genres {
		if err := db.Where(model.Genre{Name: genre.Name}).FirstOrCreate(&genre).Error; err != nil {
			log.Println("failed to seed genre:", genre.Name, "error:", err)
		}
	}

	countries := []model.Country{
		{Name: "Vietnam", Code: "VN"},
		{Name: "United States", Code: "US"},
		{Name: "South Korea", Code: "KR"},
		{Name: "Japan", Code: "JP"},
	}
	for _, country := range countries {
		if err := db.Where(model.Country{Code: country.Code}).FirstOrCreate(&country).Error; err != nil {
			log.Println("failed to seed country:", country.Name, "error:", err)
		}
	}

	prices := []model.TicketPrice{
		{RoomType: "2D", DayType: "WEEKDAY", Price: 50000},
		{RoomType: "2D", DayType: "WEEKEND", Price: 70000},
		{RoomType: "3D", DayType: "WEEKDAY", Price: 65000},
		{RoomType: "3D", DayType: "WEEKEND", Price: 85000},
		{RoomType: "IMAX", DayType: "WEEKDAY", Price: 90000},
		{RoomType: "IMAX", DayType: "WEEKEND", Price: 110000},
		{RoomType: "4DX", DayType: "WEEKDAY", Price: 80000},
		{RoomType: "4DX", DayType: "WEEKEND", Price: 100000},
	}
	for _, price := range prices {
		if err := db.Where(model.TicketPrice{RoomType: price.RoomType, DayType: price.DayType}).
			FirstOrCreate(&price).Error; err != nil {
			log.Println("failed to seed ticket price:", price.RoomType, price.DayType, "error:", err)
		}
	}
}
