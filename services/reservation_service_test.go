package services

import (
	"testing"
	"time"

	"frontdesk/errors"
	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationFixture(t *testing.T) *ReservationService {
	t.Helper()
	db := newTestDB(t)
	seedRooms(t, db,
		models.Room{Number: "101", Type: "Single", DailyRate: 1500},
		models.Room{Number: "201", Type: "Double", DailyRate: 2500},
	)
	require.NoError(t, db.Create(&[]models.Reservation{
		{
			CustomerName: "John Smith", RoomNumber: "201",
			CheckIn: day(2024, time.June, 10), CheckOut: day(2024, time.June, 12),
			TotalAmount: 5000, PaymentStatus: models.PaymentDepositPaid,
		},
		{
			CustomerName: "Jane Doe", RoomNumber: "101",
			CheckIn: day(2024, time.June, 1), CheckOut: day(2024, time.June, 3),
			TotalAmount: 3000, PaymentStatus: models.PaymentUnpaid,
		},
	}).Error)
	return NewReservationService(ReservationServiceOptions{DB: db})
}

func TestListAllOrderedByCheckIn(t *testing.T) {
	svc := reservationFixture(t)

	rows, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Jane Doe", rows[0].CustomerName)
	assert.Equal(t, "Single", rows[0].RoomType)
	assert.Equal(t, "2024-06-01", rows[0].CheckIn)
	assert.Equal(t, "2024-06-03", rows[0].CheckOut)

	assert.Equal(t, "John Smith", rows[1].CustomerName)
	assert.Equal(t, "Double", rows[1].RoomType)
}

func TestSearchMatchesAnyField(t *testing.T) {
	svc := reservationFixture(t)

	byName, err := svc.Search("john")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "John Smith", byName[0].CustomerName)

	byType, err := svc.Search("single")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Jane Doe", byType[0].CustomerName)

	byNumber, err := svc.Search("201")
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, "John Smith", byNumber[0].CustomerName)

	byStatus, err := svc.Search("unpaid")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Jane Doe", byStatus[0].CustomerName)
}

func TestSearchFallsBackToFuzzyNames(t *testing.T) {
	svc := reservationFixture(t)

	// "jhon smith" has no substring match but is close enough to John Smith.
	rows, err := svc.Search("jhon smith")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "John Smith", rows[0].CustomerName)

	// Far-off queries return nothing rather than a bad guess.
	rows, err = svc.Search("xqzptlk")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("john smith", "john smith"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.InDelta(t, 0.8, calculateSimilarity("john smith", "jhon smith"), 0.01)
	assert.Less(t, calculateSimilarity("john smith", "xqzptlk"), fuzzyThreshold)
}

func TestInsertValidatesStructure(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(ReservationServiceOptions{DB: db})
	seedRooms(t, db, models.Room{Number: "101", Type: "Single", DailyRate: 1500})

	bad := models.Reservation{
		CustomerName: "John Smith", RoomNumber: "101",
		CheckIn: day(2024, time.June, 3), CheckOut: day(2024, time.June, 1),
		TotalAmount: 3000, PaymentStatus: models.PaymentUnpaid,
	}
	err := svc.Insert(&bad)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))

	good := bad
	good.CheckIn, good.CheckOut = good.CheckOut, good.CheckIn
	require.NoError(t, svc.Insert(&good))
	assert.NotZero(t, good.ID)
}

func TestGetByID(t *testing.T) {
	svc := reservationFixture(t)

	res, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", res.CustomerName)

	_, err = svc.GetByID(42)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestDeleteReservation(t *testing.T) {
	svc := reservationFixture(t)

	require.NoError(t, svc.Delete(1))

	_, err := svc.GetByID(1)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))

	err = svc.Delete(1)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}
