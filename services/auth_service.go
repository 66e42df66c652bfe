package services

import (
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles staff login.
type AuthService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// Login verifies credentials and returns a signed token with the user.
func (s *AuthService) Login(username, password string) (string, *models.StaffUser, error) {
	var user models.StaffUser
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid username or password", nil)
		}
		return "", nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read staff users", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug("failed login attempt for %q", username)
		return "", nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid username or password", nil)
	}

	token, err := CreateToken(&user)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
