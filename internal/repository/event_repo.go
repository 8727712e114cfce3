package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, tx *gorm.DB, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByPurchasableID(ctx context.Context, purchasableID uint) ([]models.Event, error)
	FindIndividual(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	DeleteByPurchasableID(ctx context.Context, tx *gorm.DB, purchasableID uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return tx.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindByPurchasableID(ctx context.Context, purchasableID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("purchasable_id = ?", purchasableID).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindIndividual returns events whose purchasable is a single-event offer.
func (r *eventRepository) FindIndividual(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Joins("JOIN purchasables ON purchasables.id = events.purchasable_id").
		Where("purchasables.type = ?", models.TypeIndividual).
		Order("events.start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) DeleteByPurchasableID(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return tx.WithContext(ctx).
		Where("purchasable_id = ?", purchasableID).
		Delete(&models.Event{}).Error
}
