package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"room-booking-backend/models"

	"gorm.io/gorm"
)

// BookingLedger owns booking records, their ids and their status
// transitions. Booking ids come from the auto-increment primary key,
// issued inside the same insert that commits the record, so issuance
// is atomic and monotonic without a read-max-then-increment step.
//
// The write path (InsertConfirmed, Cancel) is serialized by a
// ledger-scoped mutex held across the check-then-write transaction.
// That closes the window where two callers both see a unit as free
// and both commit overlapping confirmed bookings. Reads take a plain
// snapshot and never hold the lock.
type BookingLedger struct {
	DB *gorm.DB

	mu sync.Mutex
}

func NewBookingLedger(db *gorm.DB) *BookingLedger {
	return &BookingLedger{DB: db}
}

// confirmedOverlapScope expresses the half-open overlap predicate
// (a.start < b.end AND b.start < a.end) in SQL. Every query path uses
// this one scope so availability and conflict checks cannot drift.
func confirmedOverlapScope(db *gorm.DB, roomNo string, rng models.DateRange) *gorm.DB {
	return db.
		Where("room_no = ? AND status = ?", roomNo, models.BookingStatusConfirmed).
		Where("check_in < ? AND ? < check_out", rng.CheckOut, rng.CheckIn)
}

// FindConfirmedOverlapping returns the confirmed bookings on a unit
// whose stay overlaps the given range.
func (l *BookingLedger) FindConfirmedOverlapping(roomNo string, rng models.DateRange) ([]models.Booking, error) {
	var out []models.Booking
	if err := confirmedOverlapScope(l.DB.Model(&models.Booking{}), roomNo, rng).
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings for unit %s: %w", roomNo, err)
	}
	return out, nil
}

// InsertConfirmed commits a new confirmed booking iff no confirmed
// booking overlaps it on the same unit at the instant of insertion.
// Check and insert run as one unit under the ledger lock; losing a
// race surfaces as ErrUnitConflict.
func (l *BookingLedger) InsertConfirmed(b *models.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.DB.Transaction(func(tx *gorm.DB) error {
		var clashes int64
		if err := confirmedOverlapScope(tx.Model(&models.Booking{}), b.RoomNo, b.Range()).
			Count(&clashes).Error; err != nil {
			return fmt.Errorf("failed to check unit %s for conflicts: %w", b.RoomNo, err)
		}
		if clashes > 0 {
			return ErrUnitConflict
		}

		b.Status = models.BookingStatusConfirmed
		if err := tx.Create(b).Error; err != nil {
			return fmt.Errorf("failed to insert booking for unit %s: %w", b.RoomNo, err)
		}
		return nil
	})
	return err
}

// Cancel flips a booking to cancelled. The transition is one-way: a
// second cancel reports ErrAlreadyCancelled instead of silently
// succeeding.
func (l *BookingLedger) Cancel(bookingID uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.DB.Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		if b.Status == models.BookingStatusCancelled {
			return ErrAlreadyCancelled
		}

		if err := tx.Model(&b).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking %d: %w", bookingID, err)
		}
		return nil
	})
}

func (l *BookingLedger) FindByID(bookingID uint) (models.Booking, error) {
	var b models.Booking
	if err := l.DB.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return b, ErrBookingNotFound
		}
		return b, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}
	return b, nil
}

// FindByEmail looks up bookings by guest email, case-normalized on
// both sides (emails are stored lower-cased).
func (l *BookingLedger) FindByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := l.DB.
		Where("email = ?", normalized).
		Order("booking_id DESC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", normalized, err)
	}
	return out, nil
}

func (l *BookingLedger) ListAll() ([]models.Booking, error) {
	var out []models.Booking
	if err := l.DB.Order("booking_id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return out, nil
}
