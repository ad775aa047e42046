package model

// SeatMap is the derived per-showtime view sent to the booking screen.
// The grid itself is never stored: rowNumber x columnNumber comes from the room
// and seat codes are generated row letter + column number.
type SeatMap struct {
	ShowtimeId   uint     `json:"showtimeId"`
	MovieName    string   `json:"movieName"`
	CinemaName   string   `json:"cinemaName"`
	RoomName     string   `json:"roomName"`
	RoomType     string   `json:"roomType"`
	RowNumber    int      `json:"rowNumber"`
	ColumnNumber int      `json:"columnNumber"`
	TicketPrice  float64  `json:"ticketPrice"`
	BookedSeats  []string `json:"bookedSeats"`
}

type SelectedSeat struct {
	Id         string  `json:"id"` // seat code, e.g. "C3"
	RowName    string  `json:"rowName"`
	SeatNumber int     `json:"seatNumber"`
	Status     string  `json:"status"` // AVAILABLE, BOOKED
	Price      float64 `json:"price"`
}

type ToggleSeatInput struct {
	SeatCode  string `json:"seatCode" validate:"required"`
	SessionId string `json:"sessionId"` // empty on first toggle, server assigns one
}
