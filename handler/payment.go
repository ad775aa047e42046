package handler

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatePayment starts payment for a pending order. CASH settles on the
// spot; VNPAY answers with the hosted payment page URL.
// POST /api/v1/payments
func CreatePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("createPaymentInput").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var order model.Order
	if err := database.DB.
		Preload("Tickets").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Where("ticket_order_code = ?", input.OrderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status != constants.ORDER_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Order is %s, not payable", order.Status), nil)
	}

	switch input.Method {
	case constants.PAYMENT_CASH:
		now := time.Now()
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&order).Updates(map[string]interface{}{
				"status":         constants.ORDER_PAID,
				"payment_method": constants.PAYMENT_CASH,
				"paid_at":        now,
			}).Error; err != nil {
				return err
			}
			payment := model.Payment{
				OrderId:     order.ID,
				PaymentCode: order.TicketOrderCode,
				Amount:      order.TotalPrice,
				Method:      constants.PAYMENT_CASH,
				Status:      constants.ORDER_PAID,
			}
			return tx.Create(&payment).Error
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot settle cash payment", err)
		}

		order.Status = constants.ORDER_PAID
		order.PaymentMethod = constants.PAYMENT_CASH
		order.PaidAt = &now
		go sendConfirmationEmail(order)

		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"orderCode": order.TicketOrderCode,
			"status":    order.Status,
		})

	case constants.PAYMENT_VNPAY:
		if err := database.DB.Model(&order).Update("payment_method", constants.PAYMENT_VNPAY).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		payment := model.Payment{
			OrderId:     order.ID,
			PaymentCode: order.TicketOrderCode,
			Amount:      order.TotalPrice,
			Method:      constants.PAYMENT_VNPAY,
			Status:      constants.ORDER_PENDING,
		}
		if err := database.DB.
			Where(model.Payment{PaymentCode: payment.PaymentCode}).
			FirstOrCreate(&payment).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot record payment", err)
		}

		paymentUrl, err := NewVNPay().BuildPaymentUrl(model.PaymentRequest{
			Amount:    int64(order.TotalPrice),
			OrderInfo: "Thanh toan don hang " + order.TicketOrderCode,
			TxnRef:    order.TicketOrderCode,
			IPAddr:    c.IP(),
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot build payment URL", err)
		}

		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"orderCode":  order.TicketOrderCode,
			"paymentUrl": paymentUrl,
		})
	}

	return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported payment method", nil)
}

// GetPaymentUrl regenerates the VNPay URL for a pending order, so an
// abandoned payment page can be reopened.
// GET /api/v1/payments/:orderCode
func GetPaymentUrl(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.Where("ticket_order_code = ?", orderCode).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status != constants.ORDER_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Order is %s, not payable", order.Status), nil)
	}

	paymentUrl, err := NewVNPay().BuildPaymentUrl(model.PaymentRequest{
		Amount:    int64(order.TotalPrice),
		OrderInfo: "Thanh toan don hang " + order.TicketOrderCode,
		TxnRef:    order.TicketOrderCode,
		IPAddr:    c.IP(),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot build payment URL", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode":  order.TicketOrderCode,
		"paymentUrl": paymentUrl,
	})
}

// gatewayReportedFailure distinguishes a verified non-success code from a
// response that failed signature verification. Only the former is a statement
// by the gateway; the latter could come from anyone.
func gatewayReportedFailure(resp model.PaymentResponse) bool {
	return !resp.IsSuccess && resp.ResponseCode != ""
}

// VNPayReturn handles the browser redirect back from the gateway. A missing
// vnp_TxnRef is fatal: there is nothing to correlate, so the request is
// rejected outright. A verified "00" moves the order to PENDING_SETTLEMENT;
// the IPN, not this redirect, is what marks it PAID.
// GET /vnpay/return
func VNPayReturn(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Malformed callback query", err)
	}
	if query.Get("vnp_TxnRef") == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing vnp_TxnRef", nil)
	}

	data := ParseCallbackData(query)
	resp := NewVNPay().VerifyReturnUrl(query)

	var order model.Order
	orderErr := database.DB.
		Preload("Tickets").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Room").
		Preload("Showtime.Room.Cinema").
		Where("ticket_order_code = ?", data.TxnRef).
		First(&order).Error

	if !resp.IsSuccess {
		// only a hash-verified failure may touch the payment row; a forged
		// redirect with a bad signature carries no gateway verdict
		if gatewayReportedFailure(resp) && orderErr == nil && order.Status == constants.ORDER_PENDING {
			database.DB.Model(&model.Payment{}).
				Where("payment_code = ?", data.TxnRef).
				Updates(map[string]interface{}{"status": constants.ORDER_FAILED, "bank_code": data.BankCode})
		}
		return utils.SuccessResponse(c, fiber.StatusOK, model.NewCallbackReceipt(data, false))
	}

	if orderErr != nil {
		// Verified payment for an order we cannot find: answer with what
		// the redirect carried and leave reconciliation to the IPN.
		log.Printf("vnpay return: verified txn %s has no matching order", data.TxnRef)
		return utils.SuccessResponse(c, fiber.StatusOK, model.NewCallbackReceipt(data, false))
	}

	if order.Status == constants.ORDER_PENDING {
		database.DB.Model(&order).Update("status", constants.ORDER_PENDING_SETTLEMENT)
		order.Status = constants.ORDER_PENDING_SETTLEMENT
	}

	qr, err := utils.QRCodeDataURL(order.TicketOrderCode, 300)
	if err != nil {
		log.Printf("vnpay return: cannot render QR for %s: %v", order.TicketOrderCode, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewFullReceipt(order, qr))
}

// PaymentCallbackNotify accepts an unauthenticated payment notification and
// treats it strictly as a hint: it is recorded, never settled from. Always
// answers 200 so the notifier does not retry forever.
// POST /payments/callback
func PaymentCallbackNotify(c *fiber.Ctx) error {
	var data model.CallbackData
	if err := c.BodyParser(&data); err != nil {
		// fall back to query parameters
		if query, qerr := url.ParseQuery(string(c.Request().URI().QueryString())); qerr == nil {
			data = ParseCallbackData(query)
		}
	}

	if data.TxnRef == "" {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"received": true})
	}

	var order model.Order
	if err := database.DB.Where("ticket_order_code = ?", data.TxnRef).First(&order).Error; err == nil {
		if data.ResponseCode == "00" && order.Status == constants.ORDER_PENDING {
			database.DB.Model(&order).Update("status", constants.ORDER_PENDING_SETTLEMENT)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"received": true})
}

// VNPayIPN is the server-to-server settlement notification. It alone is
// trusted to mark an order PAID. Idempotent: a replay of a confirmed
// transaction answers success without touching the order again.
// GET /vnpay/ipn
func VNPayIPN(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.JSON(fiber.Map{"RspCode": "99", "Message": "Malformed query"})
	}

	data := ParseCallbackData(query)
	resp := NewVNPay().VerifyIPN(query)
	if !resp.IsSuccess && resp.TxnRef == "" {
		return c.JSON(fiber.Map{"RspCode": "97", "Message": "Invalid signature"})
	}

	var order model.Order
	if err := database.DB.
		Preload("Tickets").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Where("ticket_order_code = ?", data.TxnRef).
		First(&order).Error; err != nil {
		return c.JSON(fiber.Map{"RspCode": "01", "Message": "Order not found"})
	}

	if int64(order.TotalPrice) != data.Amount {
		return c.JSON(fiber.Map{"RspCode": "04", "Message": "Invalid amount"})
	}

	if order.Status == constants.ORDER_PAID {
		return c.JSON(fiber.Map{"RspCode": "02", "Message": "Order already confirmed"})
	}
	if order.Status != constants.ORDER_PENDING && order.Status != constants.ORDER_PENDING_SETTLEMENT {
		return c.JSON(fiber.Map{"RspCode": "02", "Message": "Order not in a payable state"})
	}

	if !resp.IsSuccess {
		database.DB.Model(&order).Update("status", constants.ORDER_FAILED)
		database.DB.Model(&model.Payment{}).
			Where("payment_code = ?", data.TxnRef).
			Updates(map[string]interface{}{"status": constants.ORDER_FAILED, "bank_code": data.BankCode})
		return c.JSON(fiber.Map{"RspCode": "00", "Message": "Confirm Success"})
	}

	now := time.Now()
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":  constants.ORDER_PAID,
			"paid_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Payment{}).
			Where("payment_code = ?", data.TxnRef).
			Updates(map[string]interface{}{
				"status":      constants.ORDER_PAID,
				"bank_code":   data.BankCode,
				"gateway_txn": data.TransactionNo,
			}).Error
	})
	if err != nil {
		return c.JSON(fiber.Map{"RspCode": "99", "Message": "Update failed"})
	}

	order.Status = constants.ORDER_PAID
	order.PaidAt = &now
	go sendConfirmationEmail(order)

	return c.JSON(fiber.Map{"RspCode": "00", "Message": "Confirm Success"})
}

func sendConfirmationEmail(order model.Order) {
	if order.Email == "" {
		return
	}
	seatCodes := make([]string, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		seatCodes = append(seatCodes, t.SeatCode)
	}
	utils.SendOrderConfirmationEmail(order.Email, utils.OrderConfirmationData{
		OrderCode:     order.TicketOrderCode,
		MovieName:     order.Showtime.Movie.Title,
		Showtime:      order.Showtime.StartTime.Format("02/01/2006 15:04"),
		Seats:         strings.Join(seatCodes, ", "),
		TotalAmount:   order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		DetailLink:    config.Config("FRONTEND_URL") + "/orders/" + order.TicketOrderCode,
	})
}
