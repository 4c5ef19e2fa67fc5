package db

import (
	"airport-air-quality/model"
	"fmt"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
)

var db *gorm.DB
var runMode string

func InitDB(runModeArg string) (*gorm.DB, error) {
	// save runMode
	runMode = runModeArg

	// .env is optional here, main already tried to load it
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file, using process environment")
	}

	var dbName string
	if runMode == "real" {
		dbName = getEnv("DB_NAME", "airport_air_quality")
	} else if runMode == "test" {
		dbName = getEnv("DB_NAME", "airport_air_quality") + "_test"
	} else {
		return nil, fmt.Errorf("invalid run mode %q", runMode)
	}

	dsn := "host=" + getEnv("DB_HOST", "localhost") +
		" user=" + os.Getenv("DB_USERNAME") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + dbName +
		" port=" + getEnv("DB_PORT", "5433") +
		" sslmode=disable"

	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		// can't connect to the db, the caller should stop
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// staging tables are created only when missing, existing data is kept
	err = db.AutoMigrate(&model.Flight{}, &model.EmissionRecord{}, &model.WeatherObservation{}, &model.PipelineRun{})
	if err != nil {
		return nil, fmt.Errorf("failed to create staging tables: %w", err)
	}

	return db, nil
}

func GetDB() *gorm.DB {
	return db
}

// SetDB replaces the shared connection, used when it is opened outside InitDB
func SetDB(database *gorm.DB) {
	db = database
}

func CloseDBConnection() {
	sqlDB, err := db.DB()
	if err != nil {
		log.Println("Failed closing connection: ", err)
		return
	}
	err = sqlDB.Close()
	if err != nil {
		log.Println("Failed closing connection: ", err)
	}
}

// ClearStaging empties the staging tables before a new pipeline run, pipeline_runs is kept
func ClearStaging(db *gorm.DB) error {
	result := db.Exec(`TRUNCATE TABLE emissions_staging, flights_staging, weather_staging;`)
	return result.Error
}

func ResetTestDatabase() error {
	// check correct run mode
	if runMode != "test" {
		return fmt.Errorf("wrong run mode")
	}

	result := db.Exec(`TRUNCATE TABLE emissions_staging, flights_staging, weather_staging, pipeline_runs;`)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
