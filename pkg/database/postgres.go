package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/liveartfest/ticketing/internal/models"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.TicketClass{},
		&models.Purchasable{},
		&models.PurchasableTicketClass{},
		&models.Event{},
		&models.Ticket{},
		&models.EventTicket{},
		&models.Payment{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// A purchasable lists each price tier at most once
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_purchasable_ticket_class
		ON purchasable_ticket_classes (purchasable_id, ticket_class_id)
	`)

	return db
}
