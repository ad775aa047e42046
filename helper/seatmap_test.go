package helper

import (
	"testing"

	"cinema_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatCodesGrid(t *testing.T) {
	codes := SeatCodes(6, 6)
	require.Len(t, codes, 36)
	assert.Equal(t, "A1", codes[0])
	assert.Equal(t, "A6", codes[5])
	assert.Equal(t, "B1", codes[6])
	assert.Equal(t, "F6", codes[35])
}

func TestRowName(t *testing.T) {
	assert.Equal(t, "A", RowName(0))
	assert.Equal(t, "C", RowName(2))
	assert.Equal(t, "Z", RowName(25))
}

func TestParseSeatCode(t *testing.T) {
	row, col, ok := ParseSeatCode("C12")
	require.True(t, ok)
	assert.Equal(t, "C", row)
	assert.Equal(t, 12, col)

	for _, bad := range []string{"", "C", "7A", "c3", "A0", "Ax"} {
		_, _, ok := ParseSeatCode(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestValidSeatCode(t *testing.T) {
	assert.True(t, ValidSeatCode("A1", 6, 6))
	assert.True(t, ValidSeatCode("F6", 6, 6))
	assert.False(t, ValidSeatCode("G1", 6, 6))
	assert.False(t, ValidSeatCode("A7", 6, 6))
	assert.False(t, ValidSeatCode("", 6, 6))
}

func TestToggleSeatAddsAndRemoves(t *testing.T) {
	selection := []string{}

	selection = ToggleSeat(selection, "C3")
	selection = ToggleSeat(selection, "D4")
	selection = ToggleSeat(selection, "C3")

	assert.Equal(t, []string{"D4"}, selection)
}

func TestToggleSeatDoubleToggleIsIdentity(t *testing.T) {
	original := []string{"A1", "B2", "C3"}

	selection := ToggleSeat(original, "E5")
	selection = ToggleSeat(selection, "E5")

	assert.Equal(t, original, selection)
}

func TestToggleSeatRemovalPreservesOrder(t *testing.T) {
	selection := []string{"A1", "B2", "C3"}
	selection = ToggleSeat(selection, "B2")
	assert.Equal(t, []string{"A1", "C3"}, selection)
}

func TestToggleSeatDoesNotAliasInput(t *testing.T) {
	original := []string{"A1", "B2", "C3"}
	removed := ToggleSeat(original, "A1")
	readded := append(removed, "Z9")

	assert.Equal(t, []string{"A1", "B2", "C3"}, original)
	assert.NotContains(t, original, "Z9")
	assert.Contains(t, readded, "Z9")
}

func TestContainsSeat(t *testing.T) {
	set := []string{"A1", "B2"}
	assert.True(t, ContainsSeat(set, "B2"))
	assert.False(t, ContainsSeat(set, "C3"))
	assert.False(t, ContainsSeat(nil, "C3"))
}

func TestBuildSeatMap(t *testing.T) {
	showtime := model.Showtime{
		Price: 75000,
		Movie: model.Movie{Title: "Interstellar"},
		Room: model.Room{
			Name:         "Room 1",
			RoomType:     "IMAX",
			RowNumber:    6,
			ColumnNumber: 6,
			Cinema:       model.Cinema{Name: "Galaxy Central"},
		},
	}
	showtime.ID = 42

	got := BuildSeatMap(showtime, []string{"B2", "A1"})

	assert.Equal(t, uint(42), got.ShowtimeId)
	assert.Equal(t, "Interstellar", got.MovieName)
	assert.Equal(t, "Galaxy Central", got.CinemaName)
	assert.Equal(t, "IMAX", got.RoomType)
	assert.Equal(t, 6, got.RowNumber)
	assert.Equal(t, 6, got.ColumnNumber)
	assert.Equal(t, 75000.0, got.TicketPrice)
	assert.Equal(t, []string{"A1", "B2"}, got.BookedSeats, "booked seats come back sorted")
}

func TestSeatsFromCodes(t *testing.T) {
	seats := SeatsFromCodes([]string{"C3", "A1", "bogus"}, []string{"A1"}, 50000)

	require.Len(t, seats, 2)
	assert.Equal(t, "C3", seats[0].Id)
	assert.Equal(t, "C", seats[0].RowName)
	assert.Equal(t, 3, seats[0].SeatNumber)
	assert.Equal(t, "AVAILABLE", seats[0].Status)
	assert.Equal(t, "BOOKED", seats[1].Status)
	assert.Equal(t, 50000.0, seats[1].Price)
}
