package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/models"
)

type TicketRepository interface {
	Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	CreateEventLink(ctx context.Context, tx *gorm.DB, link *models.EventTicket) error

	// FindByUser returns a user's tickets in the given purchase state, each
	// preloaded with its ticket class and event links.
	FindByUser(ctx context.Context, userID uint, purchased bool) ([]models.Ticket, error)

	DeleteUnpurchased(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error
	DeleteEventLinksForCart(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error
	DeleteByPurchasableID(ctx context.Context, tx *gorm.DB, purchasableID uint) error
	DeleteEventLinksByPurchasable(ctx context.Context, tx *gorm.DB, purchasableID uint) error

	// MarkPurchased flips all of a user's unpurchased tickets to purchased
	// and stamps the purchase date.
	MarkPurchased(ctx context.Context, tx *gorm.DB, userID uint, at time.Time) error

	Transact(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *ticketRepository) Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return tx.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) CreateEventLink(ctx context.Context, tx *gorm.DB, link *models.EventTicket) error {
	return tx.WithContext(ctx).Create(link).Error
}

func (r *ticketRepository) FindByUser(ctx context.Context, userID uint, purchased bool) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.WithContext(ctx).
		Preload("TicketClass").
		Preload("Events.Event").
		Where("user_id = ? AND is_purchased = ?", userID, purchased).
		Order("id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) DeleteUnpurchased(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error {
	return tx.WithContext(ctx).
		Where("user_id = ? AND purchasable_id = ? AND is_purchased = ?", userID, purchasableID, false).
		Delete(&models.Ticket{}).Error
}

// DeleteEventLinksForCart removes join rows for a user's unpurchased tickets
// of one purchasable, ahead of deleting those tickets.
func (r *ticketRepository) DeleteEventLinksForCart(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error {
	return tx.WithContext(ctx).
		Where("ticket_id IN (?)",
			tx.Model(&models.Ticket{}).Select("id").
				Where("user_id = ? AND purchasable_id = ? AND is_purchased = ?", userID, purchasableID, false)).
		Delete(&models.EventTicket{}).Error
}

func (r *ticketRepository) DeleteByPurchasableID(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return tx.WithContext(ctx).
		Where("purchasable_id = ?", purchasableID).
		Delete(&models.Ticket{}).Error
}

// DeleteEventLinksByPurchasable removes join rows for every ticket sold
// through the purchasable, ahead of deleting the tickets themselves.
func (r *ticketRepository) DeleteEventLinksByPurchasable(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return tx.WithContext(ctx).
		Where("ticket_id IN (?)",
			tx.Model(&models.Ticket{}).Select("id").Where("purchasable_id = ?", purchasableID)).
		Delete(&models.EventTicket{}).Error
}

func (r *ticketRepository) MarkPurchased(ctx context.Context, tx *gorm.DB, userID uint, at time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("user_id = ? AND is_purchased = ?", userID, false).
		Updates(map[string]interface{}{"is_purchased": true, "purchase_date": at}).Error
}
