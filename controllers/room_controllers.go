package controllers

import (
	"time"

	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	inventoryService *services.InventoryService
}

func NewRoomController(db *gorm.DB, rdb *redis.Client) *RoomController {
	return &RoomController{
		inventoryService: services.NewInventoryService(services.InventoryServiceOptions{DB: db, Redis: rdb}),
	}
}

// GetRooms lists all rooms ordered by number.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.inventoryService.ListRooms()
	if err != nil {
		response.AppError(c, err)
		return
	}

	data := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, dto.RoomResponse{
			Number:    room.Number,
			Type:      room.Type,
			DailyRate: room.DailyRate,
			Condition: room.Condition,
		})
	}
	response.Success(c, data)
}

// CreateRoom adds a room to the inventory.
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Number, type and daily rate are required")
		return
	}

	room := models.Room{
		Number:    req.Number,
		Type:      req.Type,
		DailyRate: req.DailyRate,
		Condition: req.Condition,
	}
	if err := ctrl.inventoryService.AddRoom(&room); err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, dto.RoomResponse{
		Number:    room.Number,
		Type:      room.Type,
		DailyRate: room.DailyRate,
		Condition: room.Condition,
	})
}

// UpdateRoom mutates a room's type, rate and condition.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Type, daily rate and condition are required")
		return
	}

	room, err := ctrl.inventoryService.UpdateRoom(c.Param("number"), req.Type, req.DailyRate, req.Condition)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, dto.RoomResponse{
		Number:    room.Number,
		Type:      room.Type,
		DailyRate: room.DailyRate,
		Condition: room.Condition,
	})
}

// DeleteRoom removes a room unless it still has active or future
// reservations.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	if err := ctrl.inventoryService.RemoveRoom(c.Param("number"), time.Now()); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetRoomTypes lists the distinct room types ordered by rate.
func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.inventoryService.ListRoomTypes()
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, types)
}

// GetRateForType returns the daily rate for a room type; 0 when the type is
// unknown.
func (ctrl *RoomController) GetRateForType(c *gin.Context) {
	roomType := c.Query("type")
	if roomType == "" {
		response.BadRequest(c, "type is required")
		return
	}

	rate, err := ctrl.inventoryService.RateForType(roomType)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.RoomTypeRate{Type: roomType, DailyRate: rate})
}
