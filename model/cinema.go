package model

type Cinema struct {
	DTO
	Name     string `gorm:"size:255;not null" validate:"required" json:"name"`
	Slug     string `gorm:"uniqueIndex" json:"slug"`
	Address  string `gorm:"size:255" json:"address"`
	Province string `gorm:"size:100;index" json:"province"`
	Hotline  string `gorm:"size:20" json:"hotline"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
	Rooms    []Room `gorm:"foreignKey:CinemaId" json:"rooms,omitempty"`
}

type Room struct {
	DTO
	Name         string `gorm:"size:100;not null" validate:"required" json:"name"`
	CinemaId     uint   `gorm:"index;not null" json:"cinemaId"`
	Cinema       Cinema `gorm:"foreignKey:CinemaId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RoomType     string `gorm:"size:10;not null;default:'2D'" validate:"oneof=2D 3D IMAX 4DX" json:"roomType"`
	RowNumber    int    `gorm:"not null" validate:"required,min=1,max=26" json:"rowNumber"`
	ColumnNumber int    `gorm:"not null" validate:"required,min=1" json:"columnNumber"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

// TicketPrice is the admin-managed price table: base price per room type and day type.
type TicketPrice struct {
	DTO
	RoomType string  `gorm:"size:10;not null;uniqueIndex:idx_room_day" validate:"required,oneof=2D 3D IMAX 4DX" json:"roomType"`
	DayType  string  `gorm:"size:10;not null;uniqueIndex:idx_room_day" validate:"required,oneof=WEEKDAY WEEKEND" json:"dayType"`
	Price    float64 `gorm:"not null" validate:"required,gt=0" json:"price"`
}

type CreateCinemaInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Address  string `json:"address" validate:"omitempty,max=255"`
	Province string `json:"province" validate:"omitempty,max=100"`
	Hotline  string `json:"hotline" validate:"omitempty,max=20"`
}

type EditCinemaInput struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
	Province *string `json:"province" validate:"omitempty,max=100"`
	Hotline  *string `json:"hotline" validate:"omitempty,max=20"`
	IsActive *bool   `json:"isActive"`
}

type FilterCinemaInput struct {
	Pagination
	Name     string `query:"name"`
	Province string `query:"province"`
}

type CreateRoomInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	CinemaId     uint   `json:"cinemaId" validate:"required,gt=0"`
	RoomType     string `json:"roomType" validate:"required,oneof=2D 3D IMAX 4DX"`
	RowNumber    int    `json:"rowNumber" validate:"required,min=1,max=26"`
	ColumnNumber int    `json:"columnNumber" validate:"required,min=1"`
}

type EditRoomInput struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	RoomType     *string `json:"roomType" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
	RowNumber    *int    `json:"rowNumber" validate:"omitempty,min=1,max=26"`
	ColumnNumber *int    `json:"columnNumber" validate:"omitempty,min=1"`
	IsActive     *bool   `json:"isActive"`
}

type UpsertTicketPriceInput struct {
	RoomType string  `json:"roomType" validate:"required,oneof=2D 3D IMAX 4DX"`
	DayType  string  `json:"dayType" validate:"required,oneof=WEEKDAY WEEKEND"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}
