package postgres

import (
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	models "courtside/models/postgres"
)

// DSN builds the connection string from the POSTGRES_* environment
// variables (loaded from .env by the entrypoints).
func DSN() string {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	database := os.Getenv("POSTGRES_DATABASE")

	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		user, password, host, port, database)
}

// ConnectGORM returns a GORM DB instance connected to PostgreSQL.
// TranslateError is on so constraint violations surface as the gorm
// sentinel errors the store layer maps to its taxonomy.
func ConnectGORM() (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if os.Getenv("VERBOSE_POSTGRES") == "true" {
		gormConfig.Logger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: false,
				Colorful:                  true,
			},
		)
	}

	db, err := gorm.Open(pgdriver.Open(DSN()), gormConfig)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL with GORM: %v", err)
		return nil, err
	}

	// Get the underlying SQL DB object
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying SQL DB: %v", err)
		return nil, err
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		log.Printf("Error pinging PostgreSQL: %v", err)
		return nil, err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL with GORM")
	return db, nil
}

// MigrateDatabase migrates the schema: the four tables, the unique
// indexes on external_id, the named composite index on player_games and
// the ON DELETE CASCADE foreign keys.
func MigrateDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Player{},
		&models.Game{},
		&models.PlayerGame{},
		&models.Injury{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Println("PostgreSQL database migrated successfully")

	return nil
}
