package services

import (
	"os"
	"strconv"
	"time"

	"room-booking-backend/models"
)

const defaultHorizonDays = 30

// BookingPolicy validates requested stay windows against the booking
// horizon. It is a pure function of the dates and the supplied
// "today"; callers inject the clock, which keeps it testable.
type BookingPolicy struct {
	HorizonDays int
}

// NewBookingPolicy reads BOOKING_HORIZON_DAYS, defaulting to 30.
func NewBookingPolicy() BookingPolicy {
	horizon := defaultHorizonDays
	if raw := os.Getenv("BOOKING_HORIZON_DAYS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			horizon = n
		}
	}
	return BookingPolicy{HorizonDays: horizon}
}

// Validate checks the requested window, short-circuiting in order:
// parseable dates, no past dates, within the horizon, checkout after
// checkin. On success it returns the normalized half-open range.
func (p BookingPolicy) Validate(checkIn, checkOut string, today time.Time) (models.DateRange, error) {
	var rng models.DateRange

	ci, err := models.ParseDate(checkIn)
	if err != nil {
		return rng, ErrInvalidDateFormat
	}
	co, err := models.ParseDate(checkOut)
	if err != nil {
		return rng, ErrInvalidDateFormat
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if ci.Before(day) || co.Before(day) {
		return rng, ErrPastDate
	}

	horizon := day.AddDate(0, 0, p.HorizonDays)
	if ci.After(horizon) || co.After(horizon) {
		return rng, ErrTooFarAhead
	}

	if !co.After(ci) {
		return rng, ErrInvalidRange
	}

	rng.CheckIn = ci
	rng.CheckOut = co
	return rng, nil
}
