package services

import (
	"testing"
	"time"

	"room-booking-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: handle opens a fresh empty database per
	// connection; pin the pool to one so every caller sees the same
	// database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.RoomType{}, &models.Booking{}))
	return db
}

func seedRoomType(t *testing.T, db *gorm.DB, id uint, units []string) models.RoomType {
	t.Helper()

	rt := models.RoomType{
		ID:               id,
		Name:             "Deluxe",
		CapacityAdults:   2,
		CapacityChildren: 1,
		MinDays:          1,
		MaxDays:          5,
		PriceBase:        1000,
		PriceTax:         70,
		PriceTotal:       1070,
		Currency:         "THB",
	}
	require.NoError(t, rt.SetUnits(units))
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func fixedClock(t *testing.T, day string) func() time.Time {
	t.Helper()
	d, err := models.ParseDate(day)
	require.NoError(t, err)
	return func() time.Time { return d }
}

func mustRange(t *testing.T, in, out string) models.DateRange {
	t.Helper()
	ci, err := models.ParseDate(in)
	require.NoError(t, err)
	co, err := models.ParseDate(out)
	require.NoError(t, err)
	return models.DateRange{CheckIn: ci, CheckOut: co}
}

func newTestEngine(t *testing.T, db *gorm.DB, today string) *AllocationEngine {
	t.Helper()
	return &AllocationEngine{
		Catalog:    NewRoomTypeService(db),
		Ledger:     NewBookingLedger(db),
		Policy:     BookingPolicy{HorizonDays: 30},
		Now:        fixedClock(t, today),
		MaxRetries: 3,
	}
}
