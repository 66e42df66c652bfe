package jobs

import (
	"encoding/json"
	"log"
	"time"

	"frontdesk/config"
	"frontdesk/services"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody, db *gorm.DB, rdb *redis.Client) error {
	// Warm the occupancy cache at midnight, when "today" rolls over.
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := refreshOccupancy(m, db, rdb); err != nil {
			log.Printf("occupancy refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// refreshOccupancy recomputes today's snapshot, caches it and pushes it to
// connected dashboards.
func refreshOccupancy(m *melody.Melody, db *gorm.DB, rdb *redis.Client) error {
	today := time.Now().Truncate(24 * time.Hour)

	entries, err := services.OccupancySnapshot(db, today)
	if err != nil {
		return err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, services.OccupancyCacheKey, entries, 24*time.Hour); err != nil {
			log.Printf("could not cache occupancy snapshot: %v", err)
		}
	}

	if m != nil {
		payload, err := json.Marshal(map[string]interface{}{
			"event": "occupancy_refreshed",
			"data":  entries,
		})
		if err != nil {
			return err
		}
		if err := m.Broadcast(payload); err != nil {
			log.Printf("could not broadcast occupancy snapshot: %v", err)
		}
	}
	return nil
}
