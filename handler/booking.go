package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HoldTimeout bounds a selection session; it doubles as the seat-hold window.
const HoldTimeout = 10 * time.Minute

// PendingOrderTimeout is how long an unpaid booking keeps its seats.
const PendingOrderTimeout = 15 * time.Minute

func selectionKey(showtimeId uint, sessionId string) string {
	return fmt.Sprintf("selection:%d:%s", showtimeId, sessionId)
}

// loadBookedSeatCodes returns the seat codes already taken for a showtime.
// Cancelled and expired tickets are deleted, so every row counts.
func loadBookedSeatCodes(db *gorm.DB, showtimeId uint) ([]string, error) {
	var codes []string
	err := db.Model(&model.Ticket{}).
		Where("showtime_id = ?", showtimeId).
		Pluck("seat_code", &codes).Error
	return codes, err
}

// GetSeatMap serves the derived seat grid for a showtime.
// GET /api/v1/bookings/seat/:showtimeId
func GetSeatMap(c *fiber.Ctx) error {
	showtimeId, err := c.ParamsInt("showtimeId")
	if err != nil || showtimeId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var showtime model.Showtime
	if err := database.DB.
		Preload("Movie").
		Preload("Room").
		Preload("Room.Cinema").
		First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}

	bookedCodes, err := loadBookedSeatCodes(database.DB, showtime.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.BuildSeatMap(showtime, bookedCodes))
}

// ToggleSeatSelection flips one seat in the caller's selection session.
// POST /api/v1/bookings/seat/:showtimeId/toggle
func ToggleSeatSelection(c *fiber.Ctx) error {
	showtimeId, err := c.ParamsInt("showtimeId")
	if err != nil || showtimeId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var input model.ToggleSeatInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.SeatCode == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Seat code is required", nil)
	}

	var showtime model.Showtime
	if err := database.DB.Preload("Room").First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}
	if showtime.StartTime.Before(time.Now()) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime already started", nil)
	}

	if !helper.ValidSeatCode(input.SeatCode, showtime.Room.RowNumber, showtime.Room.ColumnNumber) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Seat code outside the room grid", nil)
	}

	bookedCodes, err := loadBookedSeatCodes(database.DB, showtime.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if helper.ContainsSeat(bookedCodes, input.SeatCode) {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Seat is already booked", nil)
	}

	sessionId := input.SessionId
	if sessionId == "" {
		sessionId = "SESS-" + uuid.New().String()[:8]
	}

	ctx := context.Background()
	key := selectionKey(showtime.ID, sessionId)

	selection := []string{}
	if raw, err := database.Redis.Get(ctx, key).Result(); err == nil {
		_ = json.Unmarshal([]byte(raw), &selection)
	}

	selection = helper.ToggleSeat(selection, input.SeatCode)

	raw, _ := json.Marshal(selection)
	if err := database.Redis.Set(ctx, key, raw, HoldTimeout).Err(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot store selection", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"sessionId": sessionId,
		"seats":     helper.SeatsFromCodes(selection, bookedCodes, showtime.Price),
		"expiresAt": time.Now().Add(HoldTimeout),
	})
}

// GetSeatSelection returns the current selection set of a session.
// GET /api/v1/bookings/seat/:showtimeId/selection?sessionId=...
func GetSeatSelection(c *fiber.Ctx) error {
	showtimeId, err := c.ParamsInt("showtimeId")
	if err != nil || showtimeId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	sessionId := c.Query("sessionId")
	if sessionId == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Session ID required", nil)
	}

	selection := []string{}
	raw, err := database.Redis.Get(context.Background(), selectionKey(uint(showtimeId), sessionId)).Result()
	if err == nil {
		_ = json.Unmarshal([]byte(raw), &selection)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"sessionId": sessionId,
		"seatCodes": selection,
	})
}

// CreateBooking turns a non-empty seat selection into a pending order with
// issued tickets. Seat uniqueness is enforced inside the transaction: the
// showtime row is locked, taken codes are re-checked and the unique
// (showtime_id, seat_code) index backs it all up. On conflict the caller
// keeps its selection and can retry.
// POST /api/v1/bookings
func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("createBookingInput").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if len(input.SeatCodes) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Select at least one seat", nil)
	}

	db := database.DB
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var showtime model.Showtime
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Movie").
		Preload("Room").
		Preload("Room.Cinema").
		First(&showtime, input.ShowtimeId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}
	if showtime.StartTime.Before(time.Now()) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime already started", nil)
	}

	seen := map[string]bool{}
	for _, code := range input.SeatCodes {
		if !helper.ValidSeatCode(code, showtime.Room.RowNumber, showtime.Room.ColumnNumber) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Seat %s outside the room grid", code), nil)
		}
		if seen[code] {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Seat %s requested twice", code), nil)
		}
		seen[code] = true
	}

	var taken []string
	if err := tx.Model(&model.Ticket{}).
		Where("showtime_id = ? AND seat_code IN ?", showtime.ID, input.SeatCodes).
		Pluck("seat_code", &taken).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(taken) > 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, fmt.Sprintf("Seats no longer available: %v", taken), nil)
	}

	totalPrice := showtime.Price * float64(len(input.SeatCodes))

	order := model.Order{
		TicketOrderCode: "ORD-" + uuid.New().String()[:8],
		ShowtimeId:      showtime.ID,
		TotalPrice:      totalPrice,
		Status:          constants.ORDER_PENDING,
		Email:           input.Email,
		CustomerName:    input.Name,
		Phone:           input.Phone,
	}
	if user := helper.GetCurrentUser(c); user != nil {
		order.UserId = &user.ID
		if order.Email == "" {
			order.Email = user.Email
		}
		if order.CustomerName == "" {
			order.CustomerName = user.FullName
		}
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create order", err)
	}

	now := time.Now()
	tickets := make([]model.Ticket, 0, len(input.SeatCodes))
	for _, code := range input.SeatCodes {
		tickets = append(tickets, model.Ticket{
			TicketCode: "TKT-" + uuid.New().String()[:10],
			SeatCode:   code,
			ShowtimeId: showtime.ID,
			OrderId:    order.ID,
			Price:      showtime.Price,
			Status:     "ISSUED",
			IssuedAt:   now,
		})
	}
	if err := tx.Create(&tickets).Error; err != nil {
		tx.Rollback()
		// unique (showtime_id, seat_code) lost the race
		return utils.ErrorResponse(c, fiber.StatusConflict, "Seats were just taken, pick again", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// the selection served its purpose; drop it and push the new map
	if input.SessionId != "" {
		database.Redis.Del(context.Background(), selectionKey(showtime.ID, input.SessionId))
	}
	BroadcastSeatUpdate(showtime.ID)

	result := model.BookingResult{
		TicketOrderCode:   order.TicketOrderCode,
		ShowtimeId:        showtime.ID,
		MovieName:         showtime.Movie.Title,
		CinemaName:        showtime.Room.Cinema.Name,
		RoomName:          showtime.Room.Name,
		RoomType:          showtime.Room.RoomType,
		ShowtimeTimeStart: showtime.StartTime,
		TotalPrice:        totalPrice,
		SeatCodes:         input.SeatCodes,
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}
