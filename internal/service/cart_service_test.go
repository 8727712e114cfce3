package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/models"
)

func cartFixtureRepos() (*mockTicketRepo, *mockPurchasableRepo, *mockEventRepo) {
	purchasables := &mockPurchasableRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Purchasable, error) {
			if id != 7 {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.Purchasable{ID: 7, Name: "Opening Night", Type: models.TypeIndividual}, nil
		},
		findClassLinksFn: func(ctx context.Context, purchasableID uint) ([]models.PurchasableTicketClass, error) {
			return []models.PurchasableTicketClass{
				{PurchasableID: 7, TicketClassID: 2},
			}, nil
		},
	}
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			switch id {
			case 3:
				return &models.Event{ID: 3, PurchasableID: 7}, nil
			case 4:
				return &models.Event{ID: 4, PurchasableID: 99}, nil
			default:
				return nil, gorm.ErrRecordNotFound
			}
		},
	}
	return &mockTicketRepo{}, purchasables, events
}

func TestAddToCart_CreatesTicketPerQuantity(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()

	var created []*models.Ticket
	var links []*models.EventTicket
	tickets.createFn = func(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
		ticket.ID = uint(len(created) + 1)
		created = append(created, ticket)
		return nil
	}
	tickets.createEventLinkFn = func(ctx context.Context, tx *gorm.DB, link *models.EventTicket) error {
		links = append(links, link)
		return nil
	}

	svc := NewCartService(tickets, purchasables, events)
	err := svc.AddToCart(context.Background(), 1, dto.AddToCartRequest{
		PurchasableID: 7,
		TicketClassID: 2,
		Quantity:      3,
		Events:        []uint{3},
	})

	assert.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Len(t, links, 3)
	for _, ticket := range created {
		assert.False(t, ticket.IsPurchased)
		assert.Equal(t, uint(1), ticket.UserID)
		assert.Equal(t, uint(7), ticket.PurchasableID)
		assert.Equal(t, uint(2), ticket.TicketClassID)
	}
	assert.Equal(t, uint(3), links[0].EventID)
}

func TestAddToCart_ZeroQuantity(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()
	svc := NewCartService(tickets, purchasables, events)

	err := svc.AddToCart(context.Background(), 1, dto.AddToCartRequest{
		PurchasableID: 7,
		TicketClassID: 2,
		Quantity:      0,
	})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddToCart_ClassNotOffered(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()
	svc := NewCartService(tickets, purchasables, events)

	err := svc.AddToCart(context.Background(), 1, dto.AddToCartRequest{
		PurchasableID: 7,
		TicketClassID: 5,
		Quantity:      1,
	})

	assert.ErrorIs(t, err, ErrClassNotAllowed)
}

func TestAddToCart_EventBelongsToOtherPurchasable(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()
	svc := NewCartService(tickets, purchasables, events)

	err := svc.AddToCart(context.Background(), 1, dto.AddToCartRequest{
		PurchasableID: 7,
		TicketClassID: 2,
		Quantity:      1,
		Events:        []uint{4},
	})

	assert.ErrorIs(t, err, ErrEventMismatch)
}

func TestAddToCart_PurchasableNotFound(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()
	svc := NewCartService(tickets, purchasables, events)

	err := svc.AddToCart(context.Background(), 1, dto.AddToCartRequest{
		PurchasableID: 999,
		TicketClassID: 2,
		Quantity:      1,
	})

	assert.ErrorIs(t, err, ErrPurchasableNotFound)
}

func TestGetCart_GroupsAndTotals(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()
	tickets.findByUserFn = func(ctx context.Context, userID uint, purchased bool) ([]models.Ticket, error) {
		assert.Equal(t, uint(1), userID)
		assert.False(t, purchased)
		return []models.Ticket{
			{ID: 1, PurchasableID: 7, TicketClass: &models.TicketClass{Price: 20.00}},
			{ID: 2, PurchasableID: 7, TicketClass: &models.TicketClass{Price: 15.005}},
		}, nil
	}
	events.findByPurchasableIDFn = func(ctx context.Context, purchasableID uint) ([]models.Event, error) {
		return []models.Event{{ID: 3, PurchasableID: 7}}, nil
	}

	svc := NewCartService(tickets, purchasables, events)
	view, err := svc.GetCart(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, view.Groups, 1)
	assert.Equal(t, uint(7), view.Groups[0].Purchasable.ID)
	assert.Len(t, view.Groups[0].Tickets, 2)
	assert.Equal(t, "35.01", view.Totals.SubTotal.StringFixed(2))
	assert.Equal(t, "4.56", view.Totals.Tax.StringFixed(2))
	assert.Equal(t, "39.57", view.Totals.Total.StringFixed(2))
}

func TestGetPurchased_QueriesPurchasedState(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()
	tickets.findByUserFn = func(ctx context.Context, userID uint, purchased bool) ([]models.Ticket, error) {
		assert.True(t, purchased)
		return []models.Ticket{{ID: 1, PurchasableID: 7, IsPurchased: true}}, nil
	}
	events.findByPurchasableIDFn = func(ctx context.Context, purchasableID uint) ([]models.Event, error) {
		return nil, nil
	}

	svc := NewCartService(tickets, purchasables, events)
	groups, err := svc.GetPurchased(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.True(t, groups[0].Tickets[0].IsPurchased)
}

func TestRemoveCartItem_LinksDeletedBeforeTickets(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()

	var calls []string
	tickets.deleteEventLinksForCartFn = func(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error {
		calls = append(calls, "links")
		return nil
	}
	tickets.deleteUnpurchasedFn = func(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error {
		calls = append(calls, "tickets")
		return nil
	}

	svc := NewCartService(tickets, purchasables, events)
	err := svc.RemoveCartItem(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, []string{"links", "tickets"}, calls)
}

func TestRemoveCartItem_Error(t *testing.T) {
	tickets, purchasables, events := cartFixtureRepos()
	tickets.deleteEventLinksForCartFn = func(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error {
		return errors.New("db down")
	}

	svc := NewCartService(tickets, purchasables, events)
	err := svc.RemoveCartItem(context.Background(), 1, 7)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
