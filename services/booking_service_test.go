package services

import (
	"testing"
	"time"

	"frontdesk/errors"
	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAssignsDeterministically(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db,
		models.Room{Number: "101", Type: "Single", DailyRate: 1500},
		models.Room{Number: "102", Type: "Single", DailyRate: 1500},
	)

	checkIn, checkOut := day(2024, time.June, 1), day(2024, time.June, 3)

	first, err := svc.Book("John Smith", "Single", checkIn, checkOut, models.PaymentUnpaid)
	require.NoError(t, err)
	assert.Equal(t, "101", first.RoomNumber)
	assert.Equal(t, 3000.0, first.TotalAmount, "dailyRate * nights")

	second, err := svc.Book("Jane Doe", "Single", checkIn, checkOut, models.PaymentDepositPaid)
	require.NoError(t, err)
	assert.Equal(t, "102", second.RoomNumber)

	_, err = svc.Book("Late Guest", "Single", checkIn, checkOut, models.PaymentUnpaid)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNoRoomAvailable))

	assertNoOverlaps(t, db)
}

func TestBookRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db, models.Room{Number: "101", Type: "Single", DailyRate: 1500})

	_, err := svc.Book("", "Single", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	// Same-day bookings are rejected, not priced hourly.
	sameDay := day(2024, time.June, 1)
	_, err = svc.Book("John Smith", "Single", sameDay, sameDay, models.PaymentUnpaid)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))

	_, err = svc.Book("John Smith", "Penthouse", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))

	_, err = svc.Book("John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 3), "Comped")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}

func TestBookSharedBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db, models.Room{Number: "101", Type: "Single", DailyRate: 1500})

	_, err := svc.Book("John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 5), models.PaymentUnpaid)
	require.NoError(t, err)

	next, err := svc.Book("Jane Doe", "Single", day(2024, time.June, 5), day(2024, time.June, 7), models.PaymentUnpaid)
	require.NoError(t, err)
	assert.Equal(t, "101", next.RoomNumber)

	assertNoOverlaps(t, db)
}

func TestUpdateDatesOnlyChecksOwnRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db, models.Room{Number: "101", Type: "Single", DailyRate: 1500})

	res, err := svc.Book("John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	require.NoError(t, err)

	// Stretching the stay by two nights keeps the room and reprices it.
	updated, err := svc.Update(res.ID, "John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 5), models.PaymentDepositPaid)
	require.NoError(t, err)
	assert.Equal(t, "101", updated.RoomNumber)
	assert.Equal(t, 6000.0, updated.TotalAmount)
	assert.Equal(t, models.PaymentDepositPaid, updated.PaymentStatus)

	_, err = svc.Book("Jane Doe", "Single", day(2024, time.June, 5), day(2024, time.June, 7), models.PaymentUnpaid)
	require.NoError(t, err)

	// Colliding with the other stay on the same room is rejected before any
	// write happens.
	_, err = svc.Update(res.ID, "John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 6), models.PaymentDepositPaid)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRoomConflict))

	var unchanged models.Reservation
	require.NoError(t, db.First(&unchanged, res.ID).Error)
	assert.Equal(t, day(2024, time.June, 5).Format("2006-01-02"), unchanged.CheckOut.Format("2006-01-02"))

	assertNoOverlaps(t, db)
}

func TestUpdateTypeChangeReassignsRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db,
		models.Room{Number: "101", Type: "Single", DailyRate: 1500},
		models.Room{Number: "201", Type: "Double", DailyRate: 2500},
	)

	res, err := svc.Book("John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	require.NoError(t, err)
	require.Equal(t, "101", res.RoomNumber)

	upgraded, err := svc.Update(res.ID, "John Smith", "Double", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	require.NoError(t, err)
	assert.Equal(t, "201", upgraded.RoomNumber)
	assert.Equal(t, 5000.0, upgraded.TotalAmount, "repriced at the new type's rate")

	assertNoOverlaps(t, db)
}

func TestUpdateTypeChangeFailsWhenNewTypeFull(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db,
		models.Room{Number: "101", Type: "Single", DailyRate: 1500},
		models.Room{Number: "201", Type: "Double", DailyRate: 2500},
	)

	_, err := svc.Book("Jane Doe", "Double", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	require.NoError(t, err)

	res, err := svc.Book("John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	require.NoError(t, err)

	_, err = svc.Update(res.ID, "John Smith", "Double", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNoRoomAvailable))

	// The failed rebooking left the original assignment untouched.
	var unchanged models.Reservation
	require.NoError(t, db.First(&unchanged, res.ID).Error)
	assert.Equal(t, "101", unchanged.RoomNumber)
}

func TestUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db, models.Room{Number: "101", Type: "Single", DailyRate: 1500})

	_, err := svc.Update(42, "John Smith", "Single", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestCheckOut(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db, models.Room{Number: "201", Type: "Double", DailyRate: 2500})

	res, err := svc.Book("John Smith", "Double", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	require.NoError(t, err)

	require.NoError(t, svc.CheckOut(res.ID))

	var after models.Reservation
	require.NoError(t, db.First(&after, res.ID).Error)
	assert.Equal(t, models.PaymentPaidInFull, after.PaymentStatus)

	var room models.Room
	require.NoError(t, db.Where("number = ?", "201").First(&room).Error)
	assert.Equal(t, models.ConditionDirty, room.Condition)
}

func TestCheckOutNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	err := svc.CheckOut(42)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestCheckOutRollsBackWhenRoomWriteFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	seedRooms(t, db, models.Room{Number: "201", Type: "Double", DailyRate: 2500})

	res, err := svc.Book("John Smith", "Double", day(2024, time.June, 1), day(2024, time.June, 3), models.PaymentUnpaid)
	require.NoError(t, err)

	// Yank the room out from under the transaction; the reservation update
	// must roll back with it.
	require.NoError(t, db.Exec("DELETE FROM rooms WHERE number = ?", "201").Error)

	err = svc.CheckOut(res.ID)
	require.Error(t, err)

	var after models.Reservation
	require.NoError(t, db.First(&after, res.ID).Error)
	assert.Equal(t, models.PaymentUnpaid, after.PaymentStatus, "no partial check-out state")
}
