package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"room-booking-backend/models"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const (
	roomTypeCacheTTL = 30 * time.Second
	roomTypeListKey  = "room_types:all"
)

// RoomTypeService is the catalog: read-mostly storage of room types.
// Reads go through a short-TTL cache that write methods invalidate.
// The catalog knows nothing about bookings.
type RoomTypeService struct {
	DB    *gorm.DB
	cache *gocache.Cache
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{
		DB:    db,
		cache: gocache.New(roomTypeCacheTTL, time.Minute),
	}
}

func roomTypeKey(id uint) string {
	return "room_type:" + strconv.FormatUint(uint64(id), 10)
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	if v, ok := s.cache.Get(roomTypeKey(id)); ok {
		return v.(models.RoomType), nil
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rt, ErrRoomTypeNotFound
		}
		return rt, fmt.Errorf("failed to load room type %d: %w", id, err)
	}

	s.cache.Set(roomTypeKey(id), rt, gocache.DefaultExpiration)
	return rt, nil
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	if v, ok := s.cache.Get(roomTypeListKey); ok {
		return v.([]models.RoomType), nil
	}

	var types []models.RoomType
	if err := s.DB.Order("id").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}

	s.cache.Set(roomTypeListKey, types, gocache.DefaultExpiration)
	return types, nil
}

// Create inserts a new room type under its caller-assigned id.
// Duplicate ids are rejected, as is an empty or non-unique unit list.
func (s *RoomTypeService) Create(rt *models.RoomType) error {
	if rt.ID == 0 {
		return ErrRoomTypeIDRequired
	}
	if err := validateUnits(rt.Units()); err != nil {
		return err
	}
	applyStayBoundDefaults(rt)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Unscoped so a soft-deleted type still blocks its id; the
		// primary key row is physically present either way.
		var count int64
		if err := tx.Unscoped().Model(&models.RoomType{}).Where("id = ?", rt.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check room type %d: %w", rt.ID, err)
		}
		if count > 0 {
			return ErrRoomTypeExists
		}
		if err := tx.Create(rt).Error; err != nil {
			return fmt.Errorf("failed to create room type %d: %w", rt.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Flush()
	return nil
}

func (s *RoomTypeService) Update(rt *models.RoomType) error {
	if err := validateUnits(rt.Units()); err != nil {
		return err
	}
	applyStayBoundDefaults(rt)

	var existing models.RoomType
	if err := s.DB.First(&existing, rt.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomTypeNotFound
		}
		return fmt.Errorf("failed to load room type %d: %w", rt.ID, err)
	}

	if err := s.DB.Model(&existing).Updates(rt).Error; err != nil {
		return fmt.Errorf("failed to update room type %d: %w", rt.ID, err)
	}

	s.cache.Flush()
	return nil
}

func (s *RoomTypeService) Delete(id uint) error {
	res := s.DB.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room type %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}

	s.cache.Flush()
	return nil
}

func validateUnits(units []string) error {
	if len(units) == 0 {
		return ErrInvalidUnitList
	}
	seen := make(map[string]struct{}, len(units))
	for _, unit := range units {
		if unit == "" {
			return ErrInvalidUnitList
		}
		if _, dup := seen[unit]; dup {
			return ErrInvalidUnitList
		}
		seen[unit] = struct{}{}
	}
	return nil
}

func applyStayBoundDefaults(rt *models.RoomType) {
	if rt.MinDays <= 0 {
		rt.MinDays = 1
	}
	if rt.MaxDays <= 0 {
		rt.MaxDays = defaultHorizonDays
	}
}
