package handler

import (
	"log"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTickets is the admin listing with showtime, order and status filters.
// GET /api/v1/admin/tickets
func GetTickets(c *fiber.Ctx) error {
	var filter model.FilterTicketInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Ticket{})
	if filter.ShowtimeId != 0 {
		query = query.Where("showtime_id = ?", filter.ShowtimeId)
	}
	if filter.Status != "" {
		query = query.Where("tickets.status = ?", filter.Status)
	}
	if filter.OrderCode != "" {
		query = query.Joins("JOIN orders ON orders.id = tickets.order_id").
			Where("orders.ticket_order_code = ?", filter.OrderCode)
	}

	var totalCount int64
	query.Count(&totalCount)

	var tickets []model.Ticket
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Order("tickets.created_at DESC").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       tickets,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// CheckInTicket marks a scanned ticket as used. The ticket must belong to a
// paid order and its showtime must be roughly current.
// POST /api/v1/admin/tickets/:ticketCode/check-in
func CheckInTicket(c *fiber.Ctx) error {
	ticketCode := c.Params("ticketCode")

	var ticket model.Ticket
	if err := database.DB.
		Preload("Order").
		Preload("Showtime").
		Where("ticket_code = ?", ticketCode).
		First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Ticket not found", err)
	}

	if ticket.Order.Status != constants.ORDER_PAID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order is not paid", nil)
	}
	if ticket.Status == "CHECKED_IN" {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Ticket already used", nil)
	}
	if ticket.Status != "ISSUED" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ticket is "+ticket.Status, nil)
	}

	now := time.Now()
	if now.Before(ticket.Showtime.StartTime.Add(-time.Hour)) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Too early to check in", nil)
	}
	if now.After(ticket.Showtime.EndTime) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime is over", nil)
	}

	if err := database.DB.Model(&ticket).Updates(map[string]interface{}{
		"status":  "CHECKED_IN",
		"used_at": now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// ExpireTickets marks unused tickets of finished showtimes. Runs from the
// cron scheduler alongside the order expiry sweep.
func ExpireTickets() {
	result := database.DB.Model(&model.Ticket{}).
		Where("status = ?", "ISSUED").
		Where("showtime_id IN (?)",
			database.DB.Model(&model.Showtime{}).Select("id").Where("end_time < ?", time.Now()),
		).
		Update("status", "EXPIRED")
	if result.Error != nil {
		log.Printf("ticket expiry: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("ticket expiry: marked %d tickets expired", result.RowsAffected)
	}
}
