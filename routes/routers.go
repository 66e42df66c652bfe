package routes

import (
	"frontdesk/controllers"
	middlewares "frontdesk/middleware"
	"frontdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	authController := controllers.NewAuthController(db)
	roomController := controllers.NewRoomController(db, redisCli)
	availabilityController := controllers.NewAvailabilityController(db, redisCli)
	reservationController := controllers.NewReservationController(db, redisCli, m)

	staff := middlewares.AuthMiddleware(models.RoleReceptionist, models.RoleAdmin)
	admin := middlewares.AuthMiddleware(models.RoleAdmin)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)

	v1.GET("/rooms", roomController.GetRooms)
	v1.POST("/rooms", admin, roomController.CreateRoom)
	v1.PUT("/rooms/:number", admin, roomController.UpdateRoom)
	v1.DELETE("/rooms/:number", admin, roomController.DeleteRoom)
	v1.GET("/roomTypes", roomController.GetRoomTypes)
	v1.GET("/roomTypes/rate", roomController.GetRateForType)

	v1.GET("/availability", availabilityController.CheckAvailability)
	v1.GET("/availability/room", availabilityController.CheckRoomAvailability)
	v1.GET("/occupancy", availabilityController.GetOccupancy)

	v1.GET("/reservations", reservationController.GetReservations)
	v1.POST("/reservations", staff, reservationController.CreateReservation)
	v1.PUT("/reservations/:id", staff, reservationController.UpdateReservation)
	v1.DELETE("/reservations/:id", staff, reservationController.DeleteReservation)
	v1.POST("/reservations/:id/checkout", staff, reservationController.CheckOutReservation)
}
