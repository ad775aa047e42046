package model

import "time"

type Order struct {
	DTO
	TicketOrderCode string     `gorm:"size:20;uniqueIndex" json:"ticketOrderCode"` // e.g. ORD-AB12CD34
	UserId          *uint      `json:"userId,omitempty"`                           // nil for guest checkout
	User            *User      `gorm:"foreignKey:UserId" json:"-"`
	ShowtimeId      uint       `gorm:"index;not null" json:"showtimeId"`
	Showtime        Showtime   `gorm:"foreignKey:ShowtimeId" json:"showtime"`
	TotalPrice      float64    `json:"totalPrice"`
	Status          string     `gorm:"size:25;not null;default:'PENDING'" json:"status"` // PENDING, PAID, PENDING_SETTLEMENT, FAILED, CANCELLED, EXPIRED
	PaymentMethod   string     `gorm:"size:10" json:"paymentMethod"`                     // CASH, VNPAY
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	RefundAmount    float64    `json:"refundAmount"`
	Email           string     `gorm:"size:255" json:"email"`
	CustomerName    string     `gorm:"size:255" json:"customerName"`
	Phone           string     `gorm:"size:20" json:"phone"`
	Tickets         []Ticket   `gorm:"foreignKey:OrderId" json:"tickets"`
}

type Payment struct {
	DTO
	OrderId     uint    `gorm:"index;not null" json:"orderId"`
	Order       Order   `gorm:"foreignKey:OrderId" json:"-"`
	PaymentCode string  `gorm:"size:40;uniqueIndex" json:"paymentCode"` // vnp_TxnRef
	Amount      float64 `json:"amount"`
	Method      string  `gorm:"size:10" json:"method"`
	Status      string  `gorm:"size:20;default:'PENDING'" json:"status"` // PENDING, PAID, FAILED
	BankCode    string  `gorm:"size:20" json:"bankCode"`
	GatewayTxn  string  `gorm:"size:40" json:"gatewayTxn"` // vnp_TransactionNo
}

type CreateBookingInput struct {
	ShowtimeId uint     `json:"showtimeId" validate:"required,gt=0"`
	SeatCodes  []string `json:"seatCodes" validate:"required,min=1,dive,required"`
	SessionId  string   `json:"sessionId"` // selection session to consume, optional
	Email      string   `json:"email" validate:"omitempty,email"`
	Name       string   `json:"name" validate:"omitempty,max=255"`
	Phone      string   `json:"phone" validate:"omitempty,max=20"`
}

// BookingResult is the payload carried forward to the payment step.
type BookingResult struct {
	TicketOrderCode   string    `json:"ticketOrderCode"`
	ShowtimeId        uint      `json:"showtimeId"`
	MovieName         string    `json:"movieName"`
	CinemaName        string    `json:"cinemaName"`
	RoomName          string    `json:"roomName"`
	RoomType          string    `json:"roomType"`
	ShowtimeTimeStart time.Time `json:"showtimeTimeStart"`
	TotalPrice        float64   `json:"totalPrice"`
	SeatCodes         []string  `json:"seatCodes"`
}

type CreatePaymentInput struct {
	OrderCode string `json:"orderCode" validate:"required"`
	Method    string `json:"method" validate:"required,oneof=CASH VNPAY"`
}
