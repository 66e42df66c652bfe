package config

import (
	"fmt"
	"log"
	"os"

	"frontdesk/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) string {
	var user, password, host, port, name string

	switch env {
	case "dev":
		user = os.Getenv("DEV_DB_USER")
		password = os.Getenv("DEV_DB_PASSWORD")
		host = os.Getenv("DEV_DB_HOST")
		port = os.Getenv("DEV_DB_PORT")
		name = os.Getenv("DEV_DB_NAME")
	case "prod":
		user = os.Getenv("PROD_DB_USER")
		password = os.Getenv("PROD_DB_PASSWORD")
		host = os.Getenv("PROD_DB_HOST")
		port = os.Getenv("PROD_DB_PORT")
		name = os.Getenv("PROD_DB_NAME")
	default:
		log.Fatalf("Unknown environment: %s", env)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host, user, password, name, port)
}

func ConnectDB() {
	var err error
	env := GetEnvDefault("ENV", "dev")
	dsn := getDBConfigByEnv(env)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := MigrateDB(DB); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	log.Println("Successfully connected to db")
}

// MigrateDB creates the schema and seeds first-run data.
func MigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Room{}, &models.Reservation{}, &models.StaffUser{}); err != nil {
		return err
	}

	if err := seedRooms(db); err != nil {
		return err
	}

	return seedStaff(db)
}

// seedRooms inserts the default inventory the first time the rooms table is
// empty.
func seedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []models.Room{
		{Number: "101", Type: "Single", DailyRate: 1500, Condition: models.ConditionClean},
		{Number: "102", Type: "Single", DailyRate: 1500, Condition: models.ConditionClean},
		{Number: "103", Type: "Single", DailyRate: 1500, Condition: models.ConditionDirty},
		{Number: "201", Type: "Double", DailyRate: 2500, Condition: models.ConditionClean},
		{Number: "202", Type: "Double", DailyRate: 2500, Condition: models.ConditionClean},
		{Number: "203", Type: "Double", DailyRate: 2500, Condition: models.ConditionClean},
		{Number: "204", Type: "Double", DailyRate: 2500, Condition: models.ConditionUnderMaintenance},
		{Number: "301", Type: "Suite", DailyRate: 4000, Condition: models.ConditionClean},
		{Number: "302", Type: "Suite", DailyRate: 4000, Condition: models.ConditionClean},
	}

	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	log.Println("Seeded default room inventory")
	return nil
}

// seedStaff creates the initial admin account when no staff users exist.
func seedStaff(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.StaffUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := GetEnvDefault("ADMIN_USERNAME", "admin")
	password := GetEnvDefault("ADMIN_PASSWORD", "admin123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.StaffUser{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin account %q", username)
	return nil
}
