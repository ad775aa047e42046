package model

import "time"

const (
	ReceiptFull         = "FULL"
	ReceiptCallbackOnly = "CALLBACK_ONLY"
)

// Receipt is the confirmation payload. The gateway redirect cannot carry the
// in-memory booking state, so the callback path produces a minimal receipt
// holding only what the vnp_* parameters contained. Kind tells the renderer
// which branch it is looking at.
type Receipt struct {
	Kind string `json:"kind"` // FULL or CALLBACK_ONLY

	TicketOrderCode string  `json:"ticketOrderCode"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentMethod   string  `json:"paymentMethod"`
	Settled         bool    `json:"settled"` // false until the IPN confirms

	// Populated on the FULL branch only.
	MovieName         string     `json:"movieName,omitempty"`
	CinemaName        string     `json:"cinemaName,omitempty"`
	RoomName          string     `json:"roomName,omitempty"`
	RoomType          string     `json:"roomType,omitempty"`
	ShowtimeTimeStart *time.Time `json:"showtimeTimeStart,omitempty"`
	SeatCodes         []string   `json:"seatCodes,omitempty"`
	QRCode            string     `json:"qrCode,omitempty"` // base64 PNG data URL
}

// NewFullReceipt builds the rich branch from a paid order with its showtime
// preloaded.
func NewFullReceipt(order Order, qrDataURL string) Receipt {
	seatCodes := make([]string, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		seatCodes = append(seatCodes, t.SeatCode)
	}
	start := order.Showtime.StartTime
	return Receipt{
		Kind:              ReceiptFull,
		TicketOrderCode:   order.TicketOrderCode,
		TotalPrice:        order.TotalPrice,
		PaymentMethod:     order.PaymentMethod,
		Settled:           order.Status == "PAID",
		MovieName:         order.Showtime.Movie.Title,
		CinemaName:        order.Showtime.Room.Cinema.Name,
		RoomName:          order.Showtime.Room.Name,
		RoomType:          order.Showtime.Room.RoomType,
		ShowtimeTimeStart: &start,
		SeatCodes:         seatCodes,
		QRCode:            qrDataURL,
	}
}

// NewCallbackReceipt builds the minimal branch from redirect parameters alone.
// It must never require seat or showtime detail.
func NewCallbackReceipt(data CallbackData, settled bool) Receipt {
	return Receipt{
		Kind:            ReceiptCallbackOnly,
		TicketOrderCode: data.TxnRef,
		TotalPrice:      float64(data.Amount),
		PaymentMethod:   "VNPAY",
		Settled:         settled,
	}
}
