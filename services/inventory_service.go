package services

import (
	"time"

	"frontdesk/config"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/validator"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InventoryService is the durable record of rooms.
type InventoryService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type InventoryServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &InventoryService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// ListRooms returns all rooms ordered by number.
func (s *InventoryService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
	}
	return rooms, nil
}

// AddRoom creates a room. The number must be unique and the row valid.
func (s *InventoryService) AddRoom(room *models.Room) error {
	if room.Condition == "" {
		room.Condition = models.ConditionClean
	}

	if err := validator.ValidateRoom(room); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Room
		err := tx.Where("number = ?", room.Number).First(&existing).Error
		if err == nil {
			return errors.NewAppError(errors.ErrCodeDuplicateKey, "Room "+room.Number+" already exists", errors.ErrRoomExists)
		}
		if err != gorm.ErrRecordNotFound {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
		}

		if err := tx.Create(room).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not create room", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateOccupancy()
	s.logger.Info("added room %s (%s)", room.Number, room.Type)
	return nil
}

// UpdateRoom mutates a room's type, rate and condition. The number is
// immutable.
func (s *InventoryService) UpdateRoom(number, roomType string, dailyRate float64, condition string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Where("number = ?", number).First(&room).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Room "+number+" not found", errors.ErrRoomNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
	}

	room.Type = roomType
	room.DailyRate = dailyRate
	room.Condition = condition
	if err := validator.ValidateRoom(&room); err != nil {
		return nil, err
	}

	if err := s.db.Save(&room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not update room", err)
	}

	s.invalidateOccupancy()
	return &room, nil
}

// RemoveRoom deletes a room. The deletion is blocked while any reservation on
// the room has a check-out after today; otherwise the room's past
// reservations are removed with the room, atomically.
func (s *InventoryService) RemoveRoom(number string, today time.Time) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("number = ?", number).First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeNotFound, "Room "+number+" not found", errors.ErrRoomNotFound)
			}
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
		}

		var future int64
		err := tx.Model(&models.Reservation{}).
			Where("room_number = ? AND check_out > ?", number, today).
			Count(&future).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
		}
		if future > 0 {
			return errors.NewAppError(errors.ErrCodeRoomInUse, "Room "+number+" has active or future reservations", errors.ErrRoomInUse)
		}

		if err := tx.Where("room_number = ?", number).Delete(&models.Reservation{}).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not delete past reservations", err)
		}

		if err := tx.Delete(&room).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not delete room", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateOccupancy()
	s.logger.Info("removed room %s", number)
	return nil
}

// invalidateOccupancy drops the cached snapshot; room rows feed every
// occupancy entry, so any room mutation makes the cache stale.
func (s *InventoryService) invalidateOccupancy() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, s.rdb, OccupancyCacheKey); err != nil {
		s.logger.Error("could not invalidate occupancy cache: %v", err)
	}
}

// ListRoomTypes returns the distinct room types ordered by daily rate
// ascending.
func (s *InventoryService) ListRoomTypes() ([]string, error) {
	var rows []struct {
		Type string
		Rate float64
	}
	err := s.db.Model(&models.Room{}).
		Select("type, MIN(daily_rate) AS rate").
		Group("type").
		Order("rate ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read room types", err)
	}

	types := make([]string, 0, len(rows))
	for _, row := range rows {
		types = append(types, row.Type)
	}
	return types, nil
}

// RateForType returns the daily rate of a room type, or 0 when the type is
// unknown. The zero is a sentinel for callers, not an error.
func (s *InventoryService) RateForType(roomType string) (float64, error) {
	return RateForType(s.db, roomType)
}

// RateForType is the transaction-composable form of the rate lookup.
func RateForType(db *gorm.DB, roomType string) (float64, error) {
	var room models.Room
	err := db.Where("type = ?", roomType).Limit(1).First(&room).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
	}
	return room.DailyRate, nil
}
