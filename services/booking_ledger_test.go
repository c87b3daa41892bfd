package services

import (
	"fmt"
	"testing"

	"room-booking-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking(t *testing.T, roomNo, in, out string) *models.Booking {
	t.Helper()
	rng := mustRange(t, in, out)
	return &models.Booking{
		ReferenceCode: uuid.NewString(),
		RoomTypeID:    101,
		RoomName:      "Deluxe",
		RoomNo:        roomNo,
		CheckIn:       rng.CheckIn,
		CheckOut:      rng.CheckOut,
		StayDays:      rng.Nights(),
		UserName:      "Guest",
		Email:         "guest@example.com",
		Adults:        2,
		Status:        models.BookingStatusConfirmed,
	}
}

func TestInsertConfirmedRejectsOverlap(t *testing.T) {
	ledger := NewBookingLedger(newTestDB(t))

	require.NoError(t, ledger.InsertConfirmed(testBooking(t, "1", "2024-06-01", "2024-06-03")))

	err := ledger.InsertConfirmed(testBooking(t, "1", "2024-06-02", "2024-06-04"))
	assert.ErrorIs(t, err, ErrUnitConflict)

	// Same range on a different unit is fine.
	require.NoError(t, ledger.InsertConfirmed(testBooking(t, "2", "2024-06-02", "2024-06-04")))

	// Back-to-back on the same unit does not conflict.
	require.NoError(t, ledger.InsertConfirmed(testBooking(t, "1", "2024-06-03", "2024-06-05")))
}

func TestInsertConfirmedIgnoresCancelled(t *testing.T) {
	ledger := NewBookingLedger(newTestDB(t))

	first := testBooking(t, "1", "2024-06-01", "2024-06-03")
	require.NoError(t, ledger.InsertConfirmed(first))
	require.NoError(t, ledger.Cancel(first.BookingID))

	// The cancelled stay no longer blocks the unit.
	require.NoError(t, ledger.InsertConfirmed(testBooking(t, "1", "2024-06-01", "2024-06-03")))
}

func TestBookingIDsMonotonicFromOne(t *testing.T) {
	ledger := NewBookingLedger(newTestDB(t))

	for i := 1; i <= 5; i++ {
		b := testBooking(t, fmt.Sprintf("%d", i), "2024-06-01", "2024-06-03")
		require.NoError(t, ledger.InsertConfirmed(b))
		assert.Equal(t, uint(i), b.BookingID)
	}
}

func TestCancel(t *testing.T) {
	ledger := NewBookingLedger(newTestDB(t))

	b := testBooking(t, "1", "2024-06-01", "2024-06-03")
	require.NoError(t, ledger.InsertConfirmed(b))

	require.NoError(t, ledger.Cancel(b.BookingID))

	got, err := ledger.FindByID(b.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)

	// Second cancel is reported, not silently accepted.
	assert.ErrorIs(t, ledger.Cancel(b.BookingID), ErrAlreadyCancelled)

	assert.ErrorIs(t, ledger.Cancel(9999), ErrBookingNotFound)
}

func TestFindConfirmedOverlapping(t *testing.T) {
	ledger := NewBookingLedger(newTestDB(t))

	require.NoError(t, ledger.InsertConfirmed(testBooking(t, "1", "2024-06-01", "2024-06-03")))
	require.NoError(t, ledger.InsertConfirmed(testBooking(t, "1", "2024-06-05", "2024-06-07")))

	hits, err := ledger.FindConfirmedOverlapping("1", mustRange(t, "2024-06-02", "2024-06-06"))
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = ledger.FindConfirmedOverlapping("1", mustRange(t, "2024-06-03", "2024-06-05"))
	require.NoError(t, err)
	assert.Empty(t, hits, "gap between stays must read as free")

	hits, err = ledger.FindConfirmedOverlapping("2", mustRange(t, "2024-06-01", "2024-06-07"))
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestFindByEmailCaseNormalized(t *testing.T) {
	ledger := NewBookingLedger(newTestDB(t))

	require.NoError(t, ledger.InsertConfirmed(testBooking(t, "1", "2024-06-01", "2024-06-03")))

	got, err := ledger.FindByEmail("  GUEST@Example.COM ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "guest@example.com", got[0].Email)
}
