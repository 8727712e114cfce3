package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/models"
	"github.com/liveartfest/ticketing/internal/repository"
)

var (
	ErrClassNotAllowed = errors.New("ticket class is not offered for this purchasable")
	ErrEventMismatch   = errors.New("event does not belong to this purchasable")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)

// CartGroup collects one purchasable's tickets inside a user's cart or
// purchase history.
type CartGroup struct {
	Purchasable models.Purchasable
	Events      []models.Event
	Tickets     []models.Ticket
}

type CartView struct {
	Totals Totals
	Groups []CartGroup
}

type CartService interface {
	AddToCart(ctx context.Context, userID uint, req dto.AddToCartRequest) error
	GetCart(ctx context.Context, userID uint) (*CartView, error)
	GetPurchased(ctx context.Context, userID uint) ([]CartGroup, error)
	RemoveCartItem(ctx context.Context, userID, purchasableID uint) error
}

type cartService struct {
	tickets      repository.TicketRepository
	purchasables repository.PurchasableRepository
	events       repository.EventRepository
}

func NewCartService(
	tickets repository.TicketRepository,
	purchasables repository.PurchasableRepository,
	events repository.EventRepository,
) CartService {
	return &cartService{tickets: tickets, purchasables: purchasables, events: events}
}

// AddToCart creates quantity unpurchased tickets, each linked to every listed
// event. The class must be offered for the purchasable and every event must
// belong to it; nothing persists when either check fails.
func (s *cartService) AddToCart(ctx context.Context, userID uint, req dto.AddToCartRequest) error {
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	purchasable, err := s.purchasables.FindByID(ctx, req.PurchasableID)
	if err != nil {
		return ErrPurchasableNotFound
	}

	links, err := s.purchasables.FindClassLinks(ctx, purchasable.ID)
	if err != nil {
		return err
	}
	allowed := false
	for _, link := range links {
		if link.TicketClassID == req.TicketClassID {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrClassNotAllowed
	}

	for _, eventID := range req.Events {
		event, err := s.events.FindByID(ctx, eventID)
		if err != nil {
			return ErrEventNotFound
		}
		if event.PurchasableID != purchasable.ID {
			return ErrEventMismatch
		}
	}

	err = s.tickets.Transact(ctx, func(tx *gorm.DB) error {
		for i := 0; i < req.Quantity; i++ {
			ticket := &models.Ticket{
				IsPurchased:   false,
				PurchasableID: purchasable.ID,
				TicketClassID: req.TicketClassID,
				UserID:        userID,
			}
			if err := s.tickets.Create(ctx, tx, ticket); err != nil {
				return err
			}
			for _, eventID := range req.Events {
				link := &models.EventTicket{EventID: eventID, TicketID: ticket.ID}
				if err := s.tickets.CreateEventLink(ctx, tx, link); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

func (s *cartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	tickets, err := s.tickets.FindByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupByPurchasable(ctx, tickets)
	if err != nil {
		return nil, err
	}

	return &CartView{Totals: computeTotals(tickets), Groups: groups}, nil
}

func (s *cartService) GetPurchased(ctx context.Context, userID uint) ([]CartGroup, error) {
	tickets, err := s.tickets.FindByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	return s.groupByPurchasable(ctx, tickets)
}

// RemoveCartItem drops every unpurchased ticket a user holds for one
// purchasable, join rows first.
func (s *cartService) RemoveCartItem(ctx context.Context, userID, purchasableID uint) error {
	err := s.tickets.Transact(ctx, func(tx *gorm.DB) error {
		if err := s.tickets.DeleteEventLinksForCart(ctx, tx, userID, purchasableID); err != nil {
			return err
		}
		return s.tickets.DeleteUnpurchased(ctx, tx, userID, purchasableID)
	})
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

func (s *cartService) groupByPurchasable(ctx context.Context, tickets []models.Ticket) ([]CartGroup, error) {
	var order []uint
	byPurchasable := make(map[uint][]models.Ticket)
	for _, t := range tickets {
		if _, seen := byPurchasable[t.PurchasableID]; !seen {
			order = append(order, t.PurchasableID)
		}
		byPurchasable[t.PurchasableID] = append(byPurchasable[t.PurchasableID], t)
	}

	groups := make([]CartGroup, 0, len(order))
	for _, purchasableID := range order {
		purchasable, err := s.purchasables.FindByID(ctx, purchasableID)
		if err != nil {
			return nil, err
		}
		events, err := s.events.FindByPurchasableID(ctx, purchasableID)
		if err != nil {
			return nil, err
		}
		groups = append(groups, CartGroup{
			Purchasable: *purchasable,
			Events:      events,
			Tickets:     byPurchasable[purchasableID],
		})
	}
	return groups, nil
}
