package model

import "time"

type Showtime struct {
	DTO
	PublicCode string    `gorm:"size:16;uniqueIndex" json:"publicCode"`
	StartTime  time.Time `gorm:"not null;index" validate:"required" json:"startTime"`
	EndTime    time.Time `gorm:"not null" validate:"required" json:"endTime"`
	Price      float64   `json:"price"` // resolved from the ticket price table at creation
	Status     string    `gorm:"size:20;default:'SCHEDULED'" json:"status"`
	MovieId    uint      `gorm:"index;not null" json:"movieId"`
	RoomId     uint      `gorm:"index;not null" json:"roomId"`
	Movie      Movie     `gorm:"foreignKey:MovieId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"movie"`
	Room       Room      `gorm:"foreignKey:RoomId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"room"`
	Tickets    []Ticket  `gorm:"foreignKey:ShowtimeId" json:"-"`
}

type CreateShowtimeInput struct {
	MovieId   uint      `json:"movieId" validate:"required,gt=0"`
	RoomId    uint      `json:"roomId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
	Price     *float64  `json:"price" validate:"omitempty,gt=0"` // overrides the price table when set
}

// CreateShowtimeBatchInput creates one showtime per room per time slot per day.
type CreateShowtimeBatchInput struct {
	MovieId   uint     `json:"movieId" validate:"required,gt=0"`
	RoomIds   []uint   `json:"roomIds" validate:"required,min=1,dive,required"`
	StartDate string   `json:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate   string   `json:"endDate" validate:"required"`
	TimeSlots []string `json:"timeSlots" validate:"required,min=1,dive,required"` // ["18:30", "20:45"]
}

type EditShowtimeInput struct {
	MovieId   *uint      `json:"movieId" validate:"omitempty,gt=0"`
	RoomId    *uint      `json:"roomId" validate:"omitempty,gt=0"`
	StartTime *time.Time `json:"startTime"`
	Price     *float64   `json:"price" validate:"omitempty,gt=0"`
}

type FilterShowtimeInput struct {
	Pagination
	MovieId  uint   `query:"movieId"`
	CinemaId uint   `query:"cinemaId"`
	RoomId   uint   `query:"roomId"`
	Date     string `query:"date"` // YYYY-MM-DD
}
