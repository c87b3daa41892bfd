package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingPolicyValidate(t *testing.T) {
	policy := BookingPolicy{HorizonDays: 30}
	today := time.Date(2024, 5, 25, 14, 30, 0, 0, time.UTC) // mid-day, must be normalized

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{"valid", "2024-06-01", "2024-06-03", nil},
		{"same day today", "2024-05-25", "2024-05-26", nil},
		{"horizon boundary", "2024-06-23", "2024-06-24", nil},
		{"garbage check_in", "not-a-date", "2024-06-03", ErrInvalidDateFormat},
		{"garbage check_out", "2024-06-01", "03/06/2024", ErrInvalidDateFormat},
		{"check_in in past", "2024-05-24", "2024-06-03", ErrPastDate},
		{"check_out in past", "2024-05-20", "2024-05-24", ErrPastDate},
		{"beyond horizon", "2024-06-26", "2024-06-28", ErrTooFarAhead},
		{"checkout beyond horizon", "2024-06-20", "2024-07-10", ErrTooFarAhead},
		{"checkout equals checkin", "2024-06-01", "2024-06-01", ErrInvalidRange},
		{"checkout before checkin", "2024-06-03", "2024-06-01", ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := policy.Validate(tt.checkIn, tt.checkOut, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, rng.CheckOut.After(rng.CheckIn))
		})
	}
}

func TestBookingPolicyPastDateWinsOverRange(t *testing.T) {
	// Rules short-circuit in order: a past date is reported even when
	// the range is also inverted.
	policy := BookingPolicy{HorizonDays: 30}
	today := time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC)

	_, err := policy.Validate("2024-05-20", "2024-05-10", today)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestNewBookingPolicyHorizonFromEnv(t *testing.T) {
	t.Setenv("BOOKING_HORIZON_DAYS", "60")
	assert.Equal(t, 60, NewBookingPolicy().HorizonDays)

	t.Setenv("BOOKING_HORIZON_DAYS", "bogus")
	assert.Equal(t, defaultHorizonDays, NewBookingPolicy().HorizonDays)
}
