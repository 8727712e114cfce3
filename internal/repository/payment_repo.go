package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Update writes within tx when given one, so payment completion can commit
// atomically with the ticket-state flip.
func (r *paymentRepository) Update(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Save(payment).Error
}
