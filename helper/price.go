package helper

import (
	"errors"
	"time"

	"cinema_booking/database"
	"cinema_booking/model"

	"gorm.io/gorm"
)

const (
	DayTypeWeekday = "WEEKDAY"
	DayTypeWeekend = "WEEKEND"
)

// ClassifyDay maps a date onto the ticket price table's day types.
func ClassifyDay(date time.Time) string {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}

// fallback when no price row is configured for the room/day combination
const defaultTicketPrice = 50000.0

// ResolveTicketPrice looks up the configured base price for a room type on a
// given date, falling back to a flat default when the table has no row.
func ResolveTicketPrice(roomType string, date time.Time) float64 {
	var row model.TicketPrice
	err := database.DB.
		Where("room_type = ? AND day_type = ?", roomType, ClassifyDay(date)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultTicketPrice
	}
	if err != nil {
		return defaultTicketPrice
	}
	return row.Price
}
