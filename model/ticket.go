package model

import "time"

type Ticket struct {
	DTO
	TicketCode string     `gorm:"size:20;uniqueIndex" json:"ticketCode"`
	SeatCode   string     `gorm:"size:5;not null;uniqueIndex:idx_showtime_seat" json:"seatCode"` // e.g. "C3"
	ShowtimeId uint       `gorm:"not null;uniqueIndex:idx_showtime_seat" json:"showtimeId"`
	OrderId    uint       `gorm:"index;not null" json:"orderId"`
	Price      float64    `gorm:"not null" json:"price"`
	Status     string     `gorm:"size:20;not null;default:'ISSUED'" json:"status"` // ISSUED, CHECKED_IN, CANCELLED, EXPIRED
	IssuedAt   time.Time  `json:"issuedAt"`
	UsedAt     *time.Time `json:"usedAt,omitempty"`

	Showtime Showtime `gorm:"foreignKey:ShowtimeId" json:"-"`
	Order    Order    `gorm:"foreignKey:OrderId" json:"-"`
}

type FilterTicketInput struct {
	Pagination
	ShowtimeId uint   `query:"showtimeId"`
	OrderCode  string `query:"orderCode"`
	Status     string `query:"status" validate:"omitempty,oneof=ISSUED CHECKED_IN CANCELLED EXPIRED"`
}
