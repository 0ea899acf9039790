package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection and configures the pool. The
// simple protocol avoids prepared-statement cache conflicts behind
// connection poolers.
func InitDB(dsn string) {
	db, err := Open(dsn)
	if err != nil {
		log.Fatal(err)
	}
	DB = db
	log.Println("Database connected successfully!")
}

// Open connects without touching the package-level handle; tests use it to
// build isolated instances.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Error),
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

func GetDB() *gorm.DB {
	return DB
}

// MigrateDatabase creates missing tables and migrates existing ones.
func MigrateDatabase(models ...interface{}) error {
	for _, m := range models {
		if !DB.Migrator().HasTable(m) {
			if err := DB.Migrator().CreateTable(m); err != nil {
				return err
			}
			log.Printf("Created table for %T\n", m)
		} else {
			if err := DB.Migrator().AutoMigrate(m); err != nil {
				return err
			}
			log.Printf("Updated table for %T\n", m)
		}
	}
	return nil
}
