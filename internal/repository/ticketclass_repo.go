package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/models"
)

type TicketClassRepository interface {
	Create(ctx context.Context, class *models.TicketClass) error
	FindByID(ctx context.Context, id uint) (*models.TicketClass, error)
	FindAll(ctx context.Context) ([]models.TicketClass, error)
}

type ticketClassRepository struct {
	db *gorm.DB
}

func NewTicketClassRepository(db *gorm.DB) TicketClassRepository {
	return &ticketClassRepository{db: db}
}

func (r *ticketClassRepository) Create(ctx context.Context, class *models.TicketClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *ticketClassRepository) FindByID(ctx context.Context, id uint) (*models.TicketClass, error) {
	var class models.TicketClass
	if err := r.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ticketClassRepository) FindAll(ctx context.Context) ([]models.TicketClass, error) {
	var classes []models.TicketClass
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}
