package validator

import (
	"strings"
	"time"

	"frontdesk/errors"
	"frontdesk/models"
)

// DateLayout is the only date format the engine accepts. Display formats are
// the presentation layer's problem; anything reaching the stores is already a
// parsed calendar date.
const DateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Date must be in YYYY-MM-DD format", err)
	}
	return date, nil
}

// ValidateRoom checks a room row before it is written.
func ValidateRoom(room *models.Room) error {
	if strings.TrimSpace(room.Number) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number must not be empty", errors.ErrMissingRequired)
	}

	if strings.TrimSpace(room.Type) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type must not be empty", errors.ErrMissingRequired)
	}

	if err := room.ValidateRate(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Daily rate must be greater than 0", err)
	}

	if err := room.ValidateCondition(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Room condition must be Clean, Dirty or UnderMaintenance", err)
	}

	return nil
}

// ValidateReservation checks a reservation row structurally. The non-overlap
// invariant is enforced by the availability checks, not here.
func ValidateReservation(res *models.Reservation) error {
	if strings.TrimSpace(res.CustomerName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Customer name must not be empty", errors.ErrMissingRequired)
	}

	if strings.TrimSpace(res.RoomNumber) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number must not be empty", errors.ErrMissingRequired)
	}

	if !res.CheckIn.Before(res.CheckOut) {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Check-in date must be before check-out date", errors.ErrInvalidDateRange)
	}

	if res.TotalAmount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Total amount must be greater than 0", errors.ErrInvalidInput)
	}

	if err := res.ValidatePaymentStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Payment status must be Unpaid, DepositPaid or PaidInFull", err)
	}

	return nil
}

// ValidateStayRequest checks the caller-supplied parts of a booking request
// before any room has been assigned.
func ValidateStayRequest(customerName string, checkIn, checkOut time.Time, paymentStatus string) error {
	if strings.TrimSpace(customerName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Customer name must not be empty", errors.ErrMissingRequired)
	}

	if !checkIn.Before(checkOut) {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Check-in date must be before check-out date", errors.ErrInvalidDateRange)
	}

	res := models.Reservation{PaymentStatus: paymentStatus}
	if err := res.ValidatePaymentStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Payment status must be Unpaid, DepositPaid or PaidInFull", err)
	}

	return nil
}
