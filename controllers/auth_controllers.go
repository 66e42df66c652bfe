package controllers

import (
	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		authService: services.NewAuthService(services.AuthServiceOptions{DB: db}),
	}
}

// Login authenticates a staff user and returns a token.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	token, user, err := ctrl.authService.Login(req.Username, req.Password)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	})
}
