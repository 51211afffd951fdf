package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase opens the catalog store. The store is process-local and
// single-writer, so a SQLite file is the default; setting POSTGRES_URL
// switches to Postgres.
func InitDatabase() *gorm.DB {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("POSTGRES_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "simconnect.db"
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
	}

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return db
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
