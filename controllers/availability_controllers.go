package controllers

import (
	"log"
	"strconv"
	"time"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AvailabilityController struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewAvailabilityController(db *gorm.DB, rdb *redis.Client) *AvailabilityController {
	return &AvailabilityController{db: db, rdb: rdb}
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	checkIn, err := validator.ParseDate(c.Query("checkIn"))
	if err != nil {
		response.AppError(c, err)
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := validator.ParseDate(c.Query("checkOut"))
	if err != nil {
		response.AppError(c, err)
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

// CheckAvailability resolves a room assignment for a type and date range
// without booking anything.
func (ctrl *AvailabilityController) CheckAvailability(c *gin.Context) {
	roomType := c.Query("type")
	if roomType == "" {
		response.BadRequest(c, "type is required")
		return
	}
	checkIn, checkOut, ok := parseDateRange(c)
	if !ok {
		return
	}

	number, err := services.FindAvailableRoom(ctrl.db, roomType, checkIn, checkOut)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNoRoomAvailable) {
			response.Success(c, gin.H{"available": false})
			return
		}
		response.AppError(c, err)
		return
	}
	response.Success(c, gin.H{"available": true, "roomNumber": number})
}

// CheckRoomAvailability runs the room-specific availability predicate, with
// an optional reservation id to exclude.
func (ctrl *AvailabilityController) CheckRoomAvailability(c *gin.Context) {
	roomNumber := c.Query("number")
	if roomNumber == "" {
		response.BadRequest(c, "number is required")
		return
	}
	checkIn, checkOut, ok := parseDateRange(c)
	if !ok {
		return
	}

	var excludeID uint
	if raw := c.Query("excludeId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "excludeId must be an integer")
			return
		}
		excludeID = uint(parsed)
	}

	available, err := services.IsRoomAvailable(ctrl.db, roomNumber, checkIn, checkOut, excludeID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, gin.H{"available": available})
}

// GetOccupancy returns the point-in-time status of every room. Today's
// snapshot goes through the cache; other dates are computed directly.
func (ctrl *AvailabilityController) GetOccupancy(c *gin.Context) {
	today := time.Now().Truncate(24 * time.Hour)
	date := today
	if raw := c.Query("date"); raw != "" {
		parsed, err := validator.ParseDate(raw)
		if err != nil {
			response.AppError(c, err)
			return
		}
		date = parsed
	}

	if ctrl.rdb != nil && date.Equal(today) {
		var cached []dto.OccupancyEntry
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.OccupancyCacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	entries, err := services.OccupancySnapshot(ctrl.db, date)
	if err != nil {
		response.AppError(c, err)
		return
	}

	if ctrl.rdb != nil && date.Equal(today) {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, services.OccupancyCacheKey, entries, 10*time.Minute); err != nil {
			log.Printf("could not cache occupancy snapshot: %v", err)
		}
	}

	response.Success(c, entries)
}
