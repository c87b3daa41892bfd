package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType is a bookable class of accommodation. It owns the set of
// physical units (room_numbers) that bookings are allocated against.
// The id is caller-assigned so the catalog can mirror an external
// room inventory.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Capacity maxima, not minima.
	CapacityAdults   int `gorm:"column:capacity_adults" json:"capacity_adults"`
	CapacityChildren int `gorm:"column:capacity_children" json:"capacity_children"`

	// Inclusive bounds on stay length in nights.
	MinDays int `gorm:"column:min_days;default:1" json:"min_days"`
	MaxDays int `gorm:"column:max_days;default:30" json:"max_days"`

	// Ordered JSON arrays of strings. RoomNumbers order is the
	// allocation tie-break order.
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	RoomNumbers datatypes.JSON `gorm:"column:room_numbers" json:"room_numbers"`

	PriceBase   float64 `gorm:"column:price_base" json:"price_base"`
	PriceTax    float64 `gorm:"column:price_tax" json:"price_tax"`
	PriceTotal  float64 `gorm:"column:price_total" json:"price_total"`
	Currency    string  `gorm:"size:8" json:"currency"`
	PricingType string  `gorm:"column:pricing_type;size:32" json:"pricing_type,omitempty"`

	ImageURL     string `gorm:"column:image_url;size:512" json:"image_url,omitempty"`
	RefundPolicy string `gorm:"column:refund_policy;type:text" json:"refund_policy,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Units decodes room_numbers preserving declared order. A column that
// fails to decode is treated as empty rather than failing the read.
func (rt *RoomType) Units() []string {
	var units []string
	if len(rt.RoomNumbers) == 0 {
		return nil
	}
	if err := json.Unmarshal(rt.RoomNumbers, &units); err != nil {
		return nil
	}
	return units
}

// SetUnits encodes the physical unit list into the room_numbers column.
func (rt *RoomType) SetUnits(units []string) error {
	raw, err := json.Marshal(units)
	if err != nil {
		return err
	}
	rt.RoomNumbers = datatypes.JSON(raw)
	return nil
}

// AmenityList decodes the amenities column.
func (rt *RoomType) AmenityList() []string {
	var out []string
	if len(rt.Amenities) == 0 {
		return nil
	}
	if err := json.Unmarshal(rt.Amenities, &out); err != nil {
		return nil
	}
	return out
}
