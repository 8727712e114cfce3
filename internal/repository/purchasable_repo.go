package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/models"
)

type PurchasableRepository interface {
	Create(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error
	FindByID(ctx context.Context, id uint) (*models.Purchasable, error)
	FindAll(ctx context.Context) ([]models.Purchasable, error)
	FindByType(ctx context.Context, t models.PurchasableType) ([]models.Purchasable, error)
	Update(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error

	FindClassLinks(ctx context.Context, purchasableID uint) ([]models.PurchasableTicketClass, error)
	CreateClassLink(ctx context.Context, tx *gorm.DB, link *models.PurchasableTicketClass) error
	DeleteClassLink(ctx context.Context, tx *gorm.DB, purchasableID, ticketClassID uint) error
	DeleteClassLinksByPurchasable(ctx context.Context, tx *gorm.DB, purchasableID uint) error

	Transact(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type purchasableRepository struct {
	db *gorm.DB
}

func NewPurchasableRepository(db *gorm.DB) PurchasableRepository {
	return &purchasableRepository{db: db}
}

func (r *purchasableRepository) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *purchasableRepository) Create(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error {
	return tx.WithContext(ctx).Create(purchasable).Error
}

func (r *purchasableRepository) FindByID(ctx context.Context, id uint) (*models.Purchasable, error) {
	var purchasable models.Purchasable
	if err := r.db.WithContext(ctx).First(&purchasable, id).Error; err != nil {
		return nil, err
	}
	return &purchasable, nil
}

func (r *purchasableRepository) FindAll(ctx context.Context) ([]models.Purchasable, error) {
	var purchasables []models.Purchasable
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&purchasables).Error; err != nil {
		return nil, err
	}
	return purchasables, nil
}

func (r *purchasableRepository) FindByType(ctx context.Context, t models.PurchasableType) ([]models.Purchasable, error) {
	var purchasables []models.Purchasable
	err := r.db.WithContext(ctx).
		Where("type = ?", t).
		Order("id ASC").
		Find(&purchasables).Error
	if err != nil {
		return nil, err
	}
	return purchasables, nil
}

func (r *purchasableRepository) Update(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error {
	return tx.WithContext(ctx).Save(purchasable).Error
}

func (r *purchasableRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Purchasable{}, id).Error
}

func (r *purchasableRepository) FindClassLinks(ctx context.Context, purchasableID uint) ([]models.PurchasableTicketClass, error) {
	var links []models.PurchasableTicketClass
	err := r.db.WithContext(ctx).
		Preload("TicketClass").
		Where("purchasable_id = ?", purchasableID).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *purchasableRepository) CreateClassLink(ctx context.Context, tx *gorm.DB, link *models.PurchasableTicketClass) error {
	return tx.WithContext(ctx).Create(link).Error
}

func (r *purchasableRepository) DeleteClassLink(ctx context.Context, tx *gorm.DB, purchasableID, ticketClassID uint) error {
	return tx.WithContext(ctx).
		Where("purchasable_id = ? AND ticket_class_id = ?", purchasableID, ticketClassID).
		Delete(&models.PurchasableTicketClass{}).Error
}

func (r *purchasableRepository) DeleteClassLinksByPurchasable(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return tx.WithContext(ctx).
		Where("purchasable_id = ?", purchasableID).
		Delete(&models.PurchasableTicketClass{}).Error
}
