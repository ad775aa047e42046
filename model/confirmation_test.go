package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidOrder() Order {
	start := time.Date(2026, 9, 1, 19, 30, 0, 0, time.Local)
	return Order{
		TicketOrderCode: "ORD-AB12CD34",
		TotalPrice:      150000,
		PaymentMethod:   "VNPAY",
		Status:          "PAID",
		Tickets: []Ticket{
			{SeatCode: "C3"},
			{SeatCode: "D4"},
		},
		Showtime: Showtime{
			StartTime: start,
			Movie:     Movie{Title: "Interstellar"},
			Room: Room{
				Name:     "Room 1",
				RoomType: "IMAX",
				Cinema:   Cinema{Name: "Galaxy Central"},
			},
		},
	}
}

func TestNewFullReceipt(t *testing.T) {
	got := NewFullReceipt(paidOrder(), "data:image/png;base64,abc")

	assert.Equal(t, ReceiptFull, got.Kind)
	assert.Equal(t, "ORD-AB12CD34", got.TicketOrderCode)
	assert.True(t, got.Settled)
	assert.Equal(t, "Interstellar", got.MovieName)
	assert.Equal(t, "Galaxy Central", got.CinemaName)
	assert.Equal(t, "Room 1", got.RoomName)
	assert.Equal(t, "IMAX", got.RoomType)
	assert.Equal(t, []string{"C3", "D4"}, got.SeatCodes)
	require.NotNil(t, got.ShowtimeTimeStart)
	assert.Equal(t, 19, got.ShowtimeTimeStart.Hour())
	assert.Equal(t, "data:image/png;base64,abc", got.QRCode)
}

func TestNewFullReceiptUnsettledBeforeIPN(t *testing.T) {
	order := paidOrder()
	order.Status = "PENDING_SETTLEMENT"

	got := NewFullReceipt(order, "")
	assert.Equal(t, ReceiptFull, got.Kind)
	assert.False(t, got.Settled, "redirect success alone must not read as settled")
}

func TestNewCallbackReceipt(t *testing.T) {
	got := NewCallbackReceipt(CallbackData{
		TxnRef:       "ORD-AB12CD34",
		ResponseCode: "00",
		Amount:       150000,
	}, false)

	assert.Equal(t, ReceiptCallbackOnly, got.Kind)
	assert.Equal(t, "ORD-AB12CD34", got.TicketOrderCode)
	assert.Equal(t, 150000.0, got.TotalPrice)
	assert.Equal(t, "VNPAY", got.PaymentMethod)
	assert.False(t, got.Settled)

	// the minimal branch never carries seat or showtime detail
	assert.Empty(t, got.MovieName)
	assert.Empty(t, got.SeatCodes)
	assert.Nil(t, got.ShowtimeTimeStart)
}
