package handler

import (
	"log"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetMyOrders lists the authenticated customer's orders, newest first.
// GET /api/v1/orders
func GetMyOrders(c *fiber.Ctx) error {
	user := helper.GetCurrentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Login required", nil)
	}

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Order{}).
		Where("user_id = ?", user.ID).
		Order("created_at DESC")

	var totalCount int64
	query.Count(&totalCount)

	var orders []model.Order
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).
		Preload("Tickets").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// GetOrderDetail serves one order with its tickets and a check-in QR.
// Guests reach their orders by code; logged-in customers only see their own.
// GET /api/v1/orders/:orderCode
func GetOrderDetail(c *fiber.Ctx) error {
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

	if user := helper.GetCurrentUser(c); user != nil && order.UserId != nil &&
		*order.UserId != user.ID && user.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ERROR_FORBIDDEN, nil)
	}

	qr := ""
	if order.Status == constants.ORDER_PAID || order.Status == constants.ORDER_PENDING_SETTLEMENT {
		dataURL, err := utils.QRCodeDataURL(order.TicketOrderCode, 300)
		if err != nil {
			log.Printf("order detail: cannot render QR for %s: %v", order.TicketOrderCode, err)
		}
		qr = dataURL
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":  order,
		"qrCode": qr,
	})
}

// refundRate returns the refundable fraction for a paid order cancelled
// before the showtime: full refund two hours out, half refund one hour out,
// nothing after that.
func refundRate(startTime, now time.Time) float64 {
	lead := startTime.Sub(now)
	switch {
	case lead >= 2*time.Hour:
		return 1.0
	case lead >= time.Hour:
		return 0.5
	default:
		return 0
	}
}

// cancellationRefund decides whether an order in the given status may cancel
// and how much of totalPrice comes back. Money the gateway reported captured
// (PAID, or PENDING_SETTLEMENT awaiting its IPN) refunds by lead time; an
// unpaid order always cancels with no refund.
func cancellationRefund(status string, totalPrice float64, startTime, now time.Time) (float64, bool) {
	switch status {
	case constants.ORDER_PAID, constants.ORDER_PENDING_SETTLEMENT:
		rate := refundRate(startTime, now)
		if rate == 0 {
			return 0, false
		}
		return totalPrice * rate, true
	default:
		return 0, true
	}
}

// CancelOrder cancels a pending or paid order. Tickets are deleted so the
// seats go straight back on sale; the unique seat index stays clean.
// POST /api/v1/orders/:orderCode/cancel
func CancelOrder(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Showtime").
		Where("ticket_order_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	user := helper.GetCurrentUser(c)
	if order.UserId != nil {
		if user == nil || (*order.UserId != user.ID && user.Role != constants.ROLE_ADMIN) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ERROR_FORBIDDEN, nil)
		}
	}

	switch order.Status {
	case constants.ORDER_PENDING, constants.ORDER_PAID, constants.ORDER_PENDING_SETTLEMENT:
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order cannot be cancelled", nil)
	}

	now := time.Now()
	if order.Showtime.StartTime.Before(now) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime already started", nil)
	}

	refund, allowed := cancellationRefund(order.Status, order.TotalPrice, order.Showtime.StartTime, now)
	if !allowed {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Too close to showtime to cancel", nil)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":        constants.ORDER_CANCELLED,
			"cancelled_at":  now,
			"refund_amount": refund,
		}).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", order.ID).Delete(&model.Ticket{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot cancel order", err)
	}

	BroadcastSeatUpdate(order.ShowtimeId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode":    order.TicketOrderCode,
		"status":       constants.ORDER_CANCELLED,
		"refundAmount": refund,
	})
}

// pendingExpiryQuery scopes an expiry update to an order that is still
// PENDING, so a payment landing between the sweep's scan and this statement
// cannot be clobbered.
func pendingExpiryQuery(tx *gorm.DB, orderId uint) *gorm.DB {
	return tx.Model(&model.Order{}).
		Where("id = ? AND status = ?", orderId, constants.ORDER_PENDING)
}

// expirePendingOrder flips one order to EXPIRED and frees its seats. The
// returned bool reports whether the transition actually happened; tickets
// are deleted only when it did.
func expirePendingOrder(tx *gorm.DB, orderId uint) (bool, error) {
	res := pendingExpiryQuery(tx, orderId).Update("status", constants.ORDER_EXPIRED)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := tx.Where("order_id = ?", orderId).Delete(&model.Ticket{}).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ExpirePendingOrders releases seats held by bookings that never paid.
// Runs every minute from the cron scheduler.
func ExpirePendingOrders() {
	cutoff := time.Now().Add(-PendingOrderTimeout)

	var orders []model.Order
	if err := database.DB.
		Where("status = ? AND created_at < ?", constants.ORDER_PENDING, cutoff).
		Find(&orders).Error; err != nil {
		log.Printf("order expiry: query failed: %v", err)
		return
	}

	released := 0
	for _, order := range orders {
		var expired bool
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var err error
			expired, err = expirePendingOrder(tx, order.ID)
			return err
		})
		if err != nil {
			log.Printf("order expiry: cannot expire %s: %v", order.TicketOrderCode, err)
			continue
		}
		if !expired {
			// paid between the scan and the transaction; leave it alone
			continue
		}
		released++
		BroadcastSeatUpdate(order.ShowtimeId)
	}

	if released > 0 {
		log.Printf("order expiry: released %d unpaid orders", released)
	}
}
