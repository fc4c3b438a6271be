package database

import (
	"cursohub/config"
	"cursohub/models"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	cfg := config.AppConfig

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	Database = DbInstance{Db: db}
}

// Migrate registers the enrollment join table and runs schema migrations.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	// The user<->course join carries timestamps, so it is backed by an
	// explicit model instead of GORM's default join table.
	if err := db.SetupJoinTable(&models.User{}, "Courses", &models.Enrollment{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Course{}, "Users", &models.Enrollment{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Enrollment{},
	); err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
