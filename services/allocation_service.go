package services

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"room-booking-backend/models"

	"github.com/google/uuid"
)

const defaultAllocRetries = 3

// AllocationEngine decides whether a physical unit can host a stay
// and commits the booking through the ledger. Availability is always
// derived live from confirmed bookings; there is no per-type counter
// to drift out of sync.
type AllocationEngine struct {
	Catalog *RoomTypeService
	Ledger  *BookingLedger
	Policy  BookingPolicy

	// Now is the injected clock; tests pin it.
	Now func() time.Time

	// MaxRetries bounds re-scans after losing an allocation race.
	MaxRetries int
}

func NewAllocationEngine(catalog *RoomTypeService, ledger *BookingLedger) *AllocationEngine {
	retries := defaultAllocRetries
	if raw := os.Getenv("ALLOC_MAX_RETRIES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			retries = n
		}
	}
	return &AllocationEngine{
		Catalog:    catalog,
		Ledger:     ledger,
		Policy:     NewBookingPolicy(),
		Now:        time.Now,
		MaxRetries: retries,
	}
}

func fitsCapacity(rt models.RoomType, adults, children int) bool {
	return adults <= rt.CapacityAdults && children <= rt.CapacityChildren
}

// FindAvailableUnits returns the units of the room type with no
// confirmed overlapping booking, in declared room_numbers order. A
// party that exceeds the type's capacity gets no units at all.
func (e *AllocationEngine) FindAvailableUnits(rt models.RoomType, rng models.DateRange, adults, children int) ([]string, error) {
	if !fitsCapacity(rt, adults, children) {
		return nil, nil
	}

	units := rt.Units()
	free := make([]string, 0, len(units))
	for _, unit := range units {
		overlapping, err := e.Ledger.FindConfirmedOverlapping(unit, rng)
		if err != nil {
			return nil, err
		}
		if len(overlapping) == 0 {
			free = append(free, unit)
		}
	}
	return free, nil
}

// AvailableView returns the room type with RoomNumbers narrowed to
// the units free for the requested window. The list may be empty.
func (e *AllocationEngine) AvailableView(roomTypeID uint, checkIn, checkOut string, adults, children int) (models.RoomType, error) {
	rt, err := e.Catalog.GetByID(roomTypeID)
	if err != nil {
		return models.RoomType{}, err
	}

	rng, err := e.Policy.Validate(checkIn, checkOut, e.Now())
	if err != nil {
		return models.RoomType{}, err
	}

	free, err := e.FindAvailableUnits(rt, rng, adults, children)
	if err != nil {
		return models.RoomType{}, err
	}

	view := rt
	if err := view.SetUnits(free); err != nil {
		return models.RoomType{}, err
	}
	return view, nil
}

// Allocate books the first free unit of the room type for the window,
// or reports why it cannot. On losing an insert race it re-scans and
// retries up to MaxRetries before giving up.
func (e *AllocationEngine) Allocate(roomTypeID uint, checkIn, checkOut, userName, email string, adults, children int) (*models.Booking, error) {
	rt, err := e.Catalog.GetByID(roomTypeID)
	if err != nil {
		return nil, err
	}

	rng, err := e.Policy.Validate(checkIn, checkOut, e.Now())
	if err != nil {
		return nil, err
	}

	stay := rng.Nights()
	if stay < rt.MinDays || stay > rt.MaxDays {
		return nil, ErrStayLengthOutOfBounds
	}
	if !fitsCapacity(rt, adults, children) {
		return nil, ErrCapacityExceeded
	}

	for attempt := 0; attempt < e.MaxRetries; attempt++ {
		free, err := e.FindAvailableUnits(rt, rng, adults, children)
		if err != nil {
			return nil, err
		}
		if len(free) == 0 {
			return nil, ErrNoUnitsAvailable
		}

		b := &models.Booking{
			ReferenceCode: uuid.NewString(),
			RoomTypeID:    rt.ID,
			RoomName:      rt.Name,
			RoomNo:        free[0],
			CheckIn:       rng.CheckIn,
			CheckOut:      rng.CheckOut,
			StayDays:      stay,
			UserName:      strings.TrimSpace(userName),
			Email:         strings.ToLower(strings.TrimSpace(email)),
			Adults:        adults,
			Children:      children,
			TotalPrice:    rt.PriceTotal * float64(stay),
			Currency:      rt.Currency,
			Status:        models.BookingStatusConfirmed,
		}

		err = e.Ledger.InsertConfirmed(b)
		if err == nil {
			return b, nil
		}
		if errors.Is(err, ErrUnitConflict) {
			// Another allocation won the unit between scan and
			// insert; re-derive the free list and try again.
			continue
		}
		return nil, err
	}

	return nil, ErrAllocationRaceExhausted
}

// Release cancels a booking. The unit becomes visible as free to the
// next availability scan immediately; nothing else to update.
func (e *AllocationEngine) Release(bookingID uint) error {
	return e.Ledger.Cancel(bookingID)
}
