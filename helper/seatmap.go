package helper

import (
	"fmt"
	"sort"
	"strconv"

	"cinema_booking/model"
)

// RowName converts a 0-based row index into its letter: 0 → "A", 25 → "Z".
// Rooms are capped at 26 rows so a single letter always suffices.
func RowName(row int) string {
	return string(rune('A' + row))
}

// SeatCodes generates the full derived grid, row-major: A1..A<cols>, B1..
func SeatCodes(rows, cols int) []string {
	codes := make([]string, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 1; c <= cols; c++ {
			codes = append(codes, fmt.Sprintf("%s%d", RowName(r), c))
		}
	}
	return codes
}

// ParseSeatCode splits "C12" into row letter and column number.
func ParseSeatCode(code string) (row string, col int, ok bool) {
	if len(code) < 2 {
		return "", 0, false
	}
	row = code[:1]
	if row[0] < 'A' || row[0] > 'Z' {
		return "", 0, false
	}
	col, err := strconv.Atoi(code[1:])
	if err != nil || col < 1 {
		return "", 0, false
	}
	return row, col, true
}

// ValidSeatCode reports whether code falls inside a rows x cols grid.
func ValidSeatCode(code string, rows, cols int) bool {
	row, col, ok := ParseSeatCode(code)
	if !ok {
		return false
	}
	return int(row[0]-'A') < rows && col <= cols
}

// ToggleSeat adds code to the selection if absent, removes it if present.
// Toggling twice returns the selection to its prior value; order of the
// remaining codes is preserved.
func ToggleSeat(selection []string, code string) []string {
	for i, s := range selection {
		if s == code {
			return append(selection[:i:i], selection[i+1:]...)
		}
	}
	return append(selection, code)
}

// ContainsSeat reports membership of code in the set.
func ContainsSeat(set []string, code string) bool {
	for _, s := range set {
		if s == code {
			return true
		}
	}
	return false
}

// BuildSeatMap assembles the derived seat map view for a showtime whose room
// and movie (with cinema) are preloaded. bookedCodes come from issued tickets.
func BuildSeatMap(showtime model.Showtime, bookedCodes []string) model.SeatMap {
	sort.Strings(bookedCodes)
	return model.SeatMap{
		ShowtimeId:   showtime.ID,
		MovieName:    showtime.Movie.Title,
		CinemaName:   showtime.Room.Cinema.Name,
		RoomName:     showtime.Room.Name,
		RoomType:     showtime.Room.RoomType,
		RowNumber:    showtime.Room.RowNumber,
		ColumnNumber: showtime.Room.ColumnNumber,
		TicketPrice:  showtime.Price,
		BookedSeats:  bookedCodes,
	}
}

// SeatsFromCodes expands seat codes into the selected-seat view used by the
// booking screen.
func SeatsFromCodes(codes []string, booked []string, price float64) []model.SelectedSeat {
	seats := make([]model.SelectedSeat, 0, len(codes))
	for _, code := range codes {
		row, col, ok := ParseSeatCode(code)
		if !ok {
			continue
		}
		status := "AVAILABLE"
		if ContainsSeat(booked, code) {
			status = "BOOKED"
		}
		seats = append(seats, model.SelectedSeat{
			Id:         code,
			RowName:    row,
			SeatNumber: col,
			Status:     status,
			Price:      price,
		})
	}
	return seats
}
