package services

import "errors"

// Rejection reasons surfaced to callers. Controllers map these to
// HTTP statuses; anything not in this list is a storage failure.
var (
	// Policy guard rejections.
	ErrInvalidDateFormat = errors.New("invalid_date_format")
	ErrPastDate          = errors.New("past_date")
	ErrTooFarAhead       = errors.New("too_far_ahead")
	ErrInvalidRange      = errors.New("invalid_range")

	// Allocation rejections.
	ErrStayLengthOutOfBounds   = errors.New("stay_length_out_of_bounds")
	ErrCapacityExceeded        = errors.New("capacity_exceeded")
	ErrNoUnitsAvailable        = errors.New("no_units_available")
	ErrAllocationRaceExhausted = errors.New("allocation_race_exhausted")

	// Ledger conflicts.
	ErrUnitConflict     = errors.New("unit_already_booked")
	ErrAlreadyCancelled = errors.New("already_cancelled")

	// Catalog.
	ErrRoomTypeNotFound   = errors.New("room_type_not_found")
	ErrRoomTypeExists     = errors.New("room_type_exists")
	ErrRoomTypeIDRequired = errors.New("room_type_id_required")
	ErrInvalidUnitList    = errors.New("invalid_room_numbers")

	ErrBookingNotFound = errors.New("booking_not_found")

	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// IsValidation reports whether err is a caller error rather than a
// storage failure, so handlers can pick 4xx over 500.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidDateFormat, ErrPastDate, ErrTooFarAhead, ErrInvalidRange,
		ErrStayLengthOutOfBounds, ErrCapacityExceeded,
		ErrInvalidUnitList, ErrRoomTypeIDRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
