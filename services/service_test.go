package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"frontdesk/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database so gorm's connection pool sees
	// one store per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Reservation{}, &models.StaffUser{}))
	return db
}

func seedRooms(t *testing.T, db *gorm.DB, rooms ...models.Room) {
	t.Helper()
	for i := range rooms {
		if rooms[i].Condition == "" {
			rooms[i].Condition = models.ConditionClean
		}
	}
	require.NoError(t, db.Create(&rooms).Error)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// assertNoOverlaps checks the core invariant: per room, all reservation
// ranges are pairwise disjoint under half-open semantics.
func assertNoOverlaps(t *testing.T, db *gorm.DB) {
	t.Helper()

	var reservations []models.Reservation
	require.NoError(t, db.Find(&reservations).Error)

	byRoom := make(map[string][]models.Reservation)
	for _, res := range reservations {
		byRoom[res.RoomNumber] = append(byRoom[res.RoomNumber], res)
	}

	for room, list := range byRoom {
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				require.False(t, list[i].Overlaps(list[j].CheckIn, list[j].CheckOut),
					"room %s: reservations %d and %d overlap", room, list[i].ID, list[j].ID)
			}
		}
	}
}
