package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func seatChannel(showtimeId uint) string {
	return fmt.Sprintf("seats:%d", showtimeId)
}

// BroadcastSeatUpdate publishes the current booked-seat set of a showtime to
// its channel. Every websocket client watching that seat map receives it.
// Failures are logged, never returned: the booking already happened.
func BroadcastSeatUpdate(showtimeId uint) {
	bookedCodes, err := loadBookedSeatCodes(database.DB, showtimeId)
	if err != nil {
		log.Printf("seat broadcast: cannot load booked seats for showtime %d: %v", showtimeId, err)
		return
	}

	payload, _ := json.Marshal(fiber.Map{
		"showtimeId":  showtimeId,
		"bookedSeats": bookedCodes,
	})
	if err := database.Redis.Publish(context.Background(), seatChannel(showtimeId), payload).Err(); err != nil {
		log.Printf("seat broadcast: publish failed for showtime %d: %v", showtimeId, err)
	}
}

// WebSocketUpgrade gates /ws routes behind a proper upgrade request.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SeatMapSocket streams live seat updates for one showtime. On connect the
// client gets the current map, then every booking, cancellation or expiry
// pushes the fresh booked set through the Redis channel.
// GET /ws/seats/:showtimeId
func SeatMapSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		defer conn.Close()

		showtimeId, err := strconv.Atoi(conn.Params("showtimeId"))
		if err != nil || showtimeId <= 0 {
			conn.WriteJSON(fiber.Map{"error": "invalid showtime id"})
			return
		}

		var showtime model.Showtime
		if err := database.DB.
			Preload("Movie").
			Preload("Room").
			Preload("Room.Cinema").
			First(&showtime, showtimeId).Error; err != nil {
			conn.WriteJSON(fiber.Map{"error": "showtime not found"})
			return
		}

		bookedCodes, err := loadBookedSeatCodes(database.DB, showtime.ID)
		if err == nil {
			conn.WriteJSON(helper.BuildSeatMap(showtime, bookedCodes))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub := database.Redis.Subscribe(ctx, seatChannel(showtime.ID))
		defer sub.Close()

		// drain the client side so close frames are noticed
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					cancel()
					return
				}
			}
		}()

		for msg := range sub.Channel() {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	})
}
