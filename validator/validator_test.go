package validator

import (
	"testing"
	"time"

	"frontdesk/errors"
	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), date)

	for _, bad := range []string{"", "01/06/2024", "2024-6-1", "junk", "2024-13-01"} {
		_, err := ParseDate(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat), bad)
	}
}

func TestValidateRoom(t *testing.T) {
	room := models.Room{Number: "101", Type: "Single", DailyRate: 1500, Condition: models.ConditionClean}
	assert.NoError(t, ValidateRoom(&room))

	bad := room
	bad.Number = "  "
	assert.True(t, errors.HasCode(ValidateRoom(&bad), errors.ErrCodeRequiredField))
	assert.ErrorIs(t, ValidateRoom(&bad), errors.ErrMissingRequired)

	bad = room
	bad.Type = ""
	assert.True(t, errors.HasCode(ValidateRoom(&bad), errors.ErrCodeRequiredField))

	bad = room
	bad.DailyRate = 0
	assert.True(t, errors.HasCode(ValidateRoom(&bad), errors.ErrCodeInvalidInput))

	bad = room
	bad.DailyRate = -10
	assert.True(t, errors.HasCode(ValidateRoom(&bad), errors.ErrCodeInvalidInput))

	bad = room
	bad.Condition = "Spotless"
	assert.True(t, errors.HasCode(ValidateRoom(&bad), errors.ErrCodeInvalidInput))
}

func TestValidateReservation(t *testing.T) {
	res := models.Reservation{
		CustomerName:  "John Smith",
		RoomNumber:    "101",
		CheckIn:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		TotalAmount:   3000,
		PaymentStatus: models.PaymentUnpaid,
	}
	assert.NoError(t, ValidateReservation(&res))

	bad := res
	bad.CustomerName = ""
	assert.True(t, errors.HasCode(ValidateReservation(&bad), errors.ErrCodeRequiredField))
	assert.ErrorIs(t, ValidateReservation(&bad), errors.ErrMissingRequired)

	// checkIn == checkOut is a same-day booking and is rejected.
	bad = res
	bad.CheckOut = bad.CheckIn
	assert.True(t, errors.HasCode(ValidateReservation(&bad), errors.ErrCodeInvalidInput))

	bad = res
	bad.CheckIn, bad.CheckOut = bad.CheckOut, bad.CheckIn
	assert.True(t, errors.HasCode(ValidateReservation(&bad), errors.ErrCodeInvalidInput))

	bad = res
	bad.TotalAmount = 0
	assert.True(t, errors.HasCode(ValidateReservation(&bad), errors.ErrCodeInvalidInput))
	assert.ErrorIs(t, ValidateReservation(&bad), errors.ErrInvalidInput)

	bad = res
	bad.PaymentStatus = "Comped"
	assert.True(t, errors.HasCode(ValidateReservation(&bad), errors.ErrCodeInvalidInput))
}
