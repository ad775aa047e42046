package handler

import (
	"testing"
	"time"

	"cinema_booking/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestRefundRate(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		start time.Time
		want  float64
	}{
		{"three hours out", now.Add(3 * time.Hour), 1.0},
		{"exactly two hours", now.Add(2 * time.Hour), 1.0},
		{"ninety minutes", now.Add(90 * time.Minute), 0.5},
		{"exactly one hour", now.Add(time.Hour), 0.5},
		{"thirty minutes", now.Add(30 * time.Minute), 0},
		{"already started", now.Add(-time.Minute), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refundRate(tt.start, now))
		})
	}
}

func TestSelectionKey(t *testing.T) {
	assert.Equal(t, "selection:7:SESS-abc", selectionKey(7, "SESS-abc"))
}

func TestCancellationRefund(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	t.Run("pending settlement refunds like paid", func(t *testing.T) {
		refund, ok := cancellationRefund(constants.ORDER_PENDING_SETTLEMENT, 200000, now.Add(3*time.Hour), now)
		assert.True(t, ok)
		assert.Equal(t, 200000.0, refund)

		refund, ok = cancellationRefund(constants.ORDER_PENDING_SETTLEMENT, 200000, now.Add(90*time.Minute), now)
		assert.True(t, ok)
		assert.Equal(t, 100000.0, refund)
	})

	t.Run("captured money inside the cutoff cannot cancel", func(t *testing.T) {
		for _, status := range []string{constants.ORDER_PAID, constants.ORDER_PENDING_SETTLEMENT} {
			_, ok := cancellationRefund(status, 200000, now.Add(10*time.Minute), now)
			assert.False(t, ok, status)
		}
	})

	t.Run("unpaid order always cancels with no refund", func(t *testing.T) {
		refund, ok := cancellationRefund(constants.ORDER_PENDING, 200000, now.Add(5*time.Minute), now)
		assert.True(t, ok)
		assert.Zero(t, refund)
	})
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db
}

func TestPendingExpiryQueryGuardsOnStatus(t *testing.T) {
	db := dryRunDB(t)

	stmt := pendingExpiryQuery(db, 7).Update("status", constants.ORDER_EXPIRED).Statement

	assert.Contains(t, stmt.SQL.String(), "status = ?", "expiry must only touch orders still pending")
	assert.Contains(t, stmt.Vars, constants.ORDER_PENDING)
	assert.Contains(t, stmt.Vars, constants.ORDER_EXPIRED)
}

func TestExpirePendingOrderWithoutTransitionDeletesNothing(t *testing.T) {
	db := dryRunDB(t)

	// a zero-row update means the order was paid after the sweep's scan;
	// its tickets must stay untouched
	expired, err := expirePendingOrder(db, 7)
	require.NoError(t, err)
	assert.False(t, expired)
}
