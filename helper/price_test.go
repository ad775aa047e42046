package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDay(t *testing.T) {
	// 2026-08-28 is a Friday
	friday := time.Date(2026, 8, 28, 19, 0, 0, 0, time.Local)
	assert.Equal(t, DayTypeWeekday, ClassifyDay(friday))
	assert.Equal(t, DayTypeWeekend, ClassifyDay(friday.AddDate(0, 0, 1))) // Saturday
	assert.Equal(t, DayTypeWeekend, ClassifyDay(friday.AddDate(0, 0, 2))) // Sunday
	assert.Equal(t, DayTypeWeekday, ClassifyDay(friday.AddDate(0, 0, 3))) // Monday
}
