package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of recoverable failure.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Input errors
	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Store errors
	ErrCodeDuplicateKey     ErrorCode = "DUPLICATE_KEY"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"

	// Allocation errors
	ErrCodeRoomInUse       ErrorCode = "ROOM_IN_USE"
	ErrCodeNoRoomAvailable ErrorCode = "NO_ROOM_AVAILABLE"
	ErrCodeRoomConflict    ErrorCode = "ROOM_CONFLICT"
)

// AppError carries an error code alongside a human readable message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomExists   = errors.New("room already exists")
	ErrRoomInUse    = errors.New("room has active or future reservations")
	ErrNoRoom       = errors.New("no clean room of the requested type is available")
	ErrRoomConflict = errors.New("room is already reserved for the requested dates")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDateRange    = errors.New("check-in must be before check-out")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
