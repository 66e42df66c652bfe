package services

import (
	"time"

	"frontdesk/config"
	"frontdesk/errors"
	"frontdesk/models"

	"github.com/dgrijalva/jwt-go"
)

func jwtSecret() []byte {
	return []byte(config.GetEnvDefault("JWT_SECRET", "frontdesk-secret"))
}

// CreateToken issues a signed token for a staff user.
func CreateToken(user *models.StaffUser) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid":   user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Could not sign token", err)
	}
	return signed, nil
}

// GetUserIDFromToken extracts the user id and role from a signed token.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrInvalidFormat
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}

	claimsMap, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Could not parse token claims", nil)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token is missing user info", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token is missing user id", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token is missing role", nil)
	}

	return uint(userID), int(role), nil
}
