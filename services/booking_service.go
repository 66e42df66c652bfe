package services

import (
	"time"

	"frontdesk/config"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/validator"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingService coordinates the availability engine with the two stores.
// Every mutating flow runs its availability check and its writes on one
// transaction, so the non-overlap invariant holds with the store's write
// serialization and no assignment is ever committed speculatively.
type BookingService struct {
	db     *gorm.DB
	rdb    *redis.Client
	m      *melody.Melody
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Melody *melody.Melody
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		rdb:    opts.Redis,
		m:      opts.Melody,
		logger: opts.Logger,
	}
}

// Book reserves a room of the requested type for [checkIn, checkOut). The
// engine picks the concrete room; the total is dailyRate * nights.
func (s *BookingService) Book(customerName, roomType string, checkIn, checkOut time.Time, paymentStatus string) (*models.Reservation, error) {
	if paymentStatus == "" {
		paymentStatus = models.PaymentUnpaid
	}
	if err := validator.ValidateStayRequest(customerName, checkIn, checkOut, paymentStatus); err != nil {
		return nil, err
	}

	var res models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rate, err := RateForType(tx, roomType)
		if err != nil {
			return err
		}
		if rate == 0 {
			return errors.NewAppError(errors.ErrCodeInvalidInput, "Unknown room type: "+roomType, errors.ErrInvalidInput)
		}

		number, err := FindAvailableRoom(tx, roomType, checkIn, checkOut)
		if err != nil {
			return err
		}

		res = models.Reservation{
			CustomerName:  customerName,
			RoomNumber:    number,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			TotalAmount:   rate * float64(nights(checkIn, checkOut)),
			PaymentStatus: paymentStatus,
		}
		if err := validator.ValidateReservation(&res); err != nil {
			return err
		}
		return tx.Create(&res).Error
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not create reservation", err)
	}

	s.notifyOccupancyChanged()
	s.logger.Info("booked reservation %d: room %s for %s", res.ID, res.RoomNumber, customerName)
	return &res, nil
}

// Update edits a reservation. When the room type changes, assignment is
// re-run against the new type; when only the dates change, the existing room
// is checked against the other reservations, excluding this one. Either
// check fails before any store mutation happens.
func (s *BookingService) Update(id uint, customerName, roomType string, checkIn, checkOut time.Time, paymentStatus string) (*models.Reservation, error) {
	if err := validator.ValidateStayRequest(customerName, checkIn, checkOut, paymentStatus); err != nil {
		return nil, err
	}

	var res models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", errors.ErrReservationNotFound)
			}
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
		}

		var currentRoom models.Room
		if err := tx.Where("number = ?", res.RoomNumber).First(&currentRoom).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
		}

		rate, err := RateForType(tx, roomType)
		if err != nil {
			return err
		}
		if rate == 0 {
			return errors.NewAppError(errors.ErrCodeInvalidInput, "Unknown room type: "+roomType, errors.ErrInvalidInput)
		}

		number := res.RoomNumber
		if roomType != currentRoom.Type {
			number, err = FindAvailableRoom(tx, roomType, checkIn, checkOut)
			if err != nil {
				return err
			}
		} else {
			available, err := IsRoomAvailable(tx, res.RoomNumber, checkIn, checkOut, res.ID)
			if err != nil {
				return err
			}
			if !available {
				return errors.NewAppError(errors.ErrCodeRoomConflict, "Room "+res.RoomNumber+" is already reserved for the requested dates", errors.ErrRoomConflict)
			}
		}

		res.CustomerName = customerName
		res.RoomNumber = number
		res.CheckIn = checkIn
		res.CheckOut = checkOut
		res.TotalAmount = rate * float64(nights(checkIn, checkOut))
		res.PaymentStatus = paymentStatus
		if err := validator.ValidateReservation(&res); err != nil {
			return err
		}
		return tx.Save(&res).Error
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not update reservation", err)
	}

	s.notifyOccupancyChanged()
	s.logger.Info("updated reservation %d: room %s", res.ID, res.RoomNumber)
	return &res, nil
}

// CheckOut records the front-desk check-out action: the reservation is
// marked paid in full and the room becomes dirty, in one transaction. No
// date validation happens here; check-out is a manual action that may be
// recorded early or late.
func (s *BookingService) CheckOut(id uint) error {
	var roomNumber string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", errors.ErrReservationNotFound)
			}
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
		}
		roomNumber = res.RoomNumber

		err := tx.Model(&models.Reservation{}).
			Where("id = ?", res.ID).
			Update("payment_status", models.PaymentPaidInFull).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not update reservation", err)
		}

		result := tx.Model(&models.Room{}).
			Where("number = ?", res.RoomNumber).
			Update("condition", models.ConditionDirty)
		if result.Error != nil {
			return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not update room", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewAppError(errors.ErrCodeNotFound, "Room "+res.RoomNumber+" not found", errors.ErrRoomNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyOccupancyChanged()
	s.logger.Info("checked out reservation %d, room %s marked dirty", id, roomNumber)
	return nil
}

func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// notifyOccupancyChanged drops the cached snapshot and pings dashboard
// clients.
func (s *BookingService) notifyOccupancyChanged() {
	if s.rdb != nil {
		if err := DeleteFromRedis(config.Ctx, s.rdb, OccupancyCacheKey); err != nil {
			s.logger.Error("could not invalidate occupancy cache: %v", err)
		}
	}
	if s.m != nil {
		if err := s.m.Broadcast([]byte(`{"event":"occupancy_changed"}`)); err != nil {
			s.logger.Error("could not broadcast occupancy change: %v", err)
		}
	}
}
