package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a ledger record tying one physical unit to one guest
// stay. The numeric id is the DB auto-increment key, so issuance is
// atomic with the insert and ids are monotonic from 1. Room type
// name, currency and price are denormalized at creation time; later
// catalog edits do not touch existing bookings. Records are never
// deleted, a cancelled booking stays as history.
type Booking struct {
	BookingID     uint   `gorm:"primaryKey;column:booking_id" json:"booking_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	RoomTypeID uint   `gorm:"column:room_type_id;index" json:"room_type_id"`
	RoomName   string `gorm:"column:room_name;size:255" json:"room_name"`
	RoomNo     string `gorm:"column:room_no;size:50;index:idx_bookings_unit_status" json:"room_no"`
	Status     string `gorm:"column:status;size:32;index:idx_bookings_unit_status" json:"status"`

	// Half-open [CheckIn, CheckOut), normalized to UTC midnight.
	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`
	StayDays int       `gorm:"column:stay_days" json:"stay_days"`

	UserName string `gorm:"column:user_name;size:255" json:"user_name"`
	Email    string `gorm:"size:255;index" json:"email"` // stored lower-cased
	Adults   int    `gorm:"default:1" json:"adults"`
	Children int    `gorm:"default:0" json:"children"`

	TotalPrice float64 `gorm:"column:total_price" json:"total_price"`
	Currency   string  `gorm:"size:8" json:"currency"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Range returns the stay interval of the booking.
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}
