package controllers

import (
	"strconv"
	"time"

	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReservationController struct {
	reservationService *services.ReservationService
	bookingService     *services.BookingService
}

func NewReservationController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *ReservationController {
	return &ReservationController{
		reservationService: services.NewReservationService(services.ReservationServiceOptions{DB: db, Redis: rdb}),
		bookingService:     services.NewBookingService(services.BookingServiceOptions{DB: db, Redis: rdb, Melody: m}),
	}
}

func reservationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id must be an integer")
		return 0, false
	}
	return uint(id), true
}

func toReservationResponse(res *models.Reservation, roomType string) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:            res.ID,
		CustomerName:  res.CustomerName,
		RoomType:      roomType,
		RoomNumber:    res.RoomNumber,
		CheckIn:       res.CheckIn.Format(validator.DateLayout),
		CheckOut:      res.CheckOut.Format(validator.DateLayout),
		TotalAmount:   res.TotalAmount,
		PaymentStatus: res.PaymentStatus,
	}
}

// GetReservations lists all reservations, or searches them when ?q= is
// given. Both are ordered by check-in ascending.
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	var (
		reservations []dto.ReservationResponse
		err          error
	)
	if query := c.Query("q"); query != "" {
		reservations, err = ctrl.reservationService.Search(query)
	} else {
		reservations, err = ctrl.reservationService.ListAll()
	}
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, reservations)
}

// CreateReservation books a room of the requested type.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Customer name, room type, check-in and check-out are required")
		return
	}

	checkIn, err := validator.ParseDate(req.CheckIn)
	if err != nil {
		response.AppError(c, err)
		return
	}
	checkOut, err := validator.ParseDate(req.CheckOut)
	if err != nil {
		response.AppError(c, err)
		return
	}

	res, err := ctrl.bookingService.Book(req.CustomerName, req.RoomType, checkIn, checkOut, req.PaymentStatus)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, toReservationResponse(res, req.RoomType))
}

// UpdateReservation edits a reservation, re-resolving the room assignment
// when needed.
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Customer name, room type, dates and payment status are required")
		return
	}

	checkIn, err := validator.ParseDate(req.CheckIn)
	if err != nil {
		response.AppError(c, err)
		return
	}
	checkOut, err := validator.ParseDate(req.CheckOut)
	if err != nil {
		response.AppError(c, err)
		return
	}

	res, err := ctrl.bookingService.Update(id, req.CustomerName, req.RoomType, checkIn, checkOut, req.PaymentStatus)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, toReservationResponse(res, req.RoomType))
}

// DeleteReservation removes a reservation; this never blocks.
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if err := ctrl.reservationService.Delete(id); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, nil)
}

// CheckOutReservation records a check-out: payment settled, room dirty.
func (ctrl *ReservationController) CheckOutReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if err := ctrl.bookingService.CheckOut(id); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, gin.H{"checkedOutAt": time.Now().Format(time.RFC3339)})
}
