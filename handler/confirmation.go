package handler

import (
	"log"
	"net/url"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetConfirmation serves the full receipt for an order the server knows.
// GET /api/v1/bookings/:orderCode/confirmation
func GetConfirmation(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Tickets").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Room").
		Preload("Showtime.Room.Cinema").
		Where("ticket_order_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	switch order.Status {
	case constants.ORDER_PAID, constants.ORDER_PENDING_SETTLEMENT:
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order has no confirmation yet", nil)
	}

	qr, err := utils.QRCodeDataURL(order.TicketOrderCode, 300)
	if err != nil {
		log.Printf("confirmation: cannot render QR for %s: %v", order.TicketOrderCode, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.NewFullReceipt(order, qr))
}

// GetCallbackConfirmation renders a receipt from vnp_* parameters alone, for
// redirects that arrive without any server-side booking context. It upgrades
// to the full receipt when the referenced order exists.
// GET /api/v1/bookings/confirmation/callback
func GetCallbackConfirmation(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Malformed callback query", err)
	}
	if query.Get("vnp_TxnRef") == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing vnp_TxnRef", nil)
	}

	data := ParseCallbackData(query)

	var order model.Order
	if err := database.DB.
		Preload("Tickets").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Room").
		Preload("Showtime.Room.Cinema").
		Where("ticket_order_code = ?", data.TxnRef).
		First(&order).Error; err == nil {
		qr, qrErr := utils.QRCodeDataURL(order.TicketOrderCode, 300)
		if qrErr != nil {
			log.Printf("confirmation: cannot render QR for %s: %v", order.TicketOrderCode, qrErr)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, model.NewFullReceipt(order, qr))
	}

	// No order on record means nothing is settled, whatever the redirect claims.
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewCallbackReceipt(data, false))
}
