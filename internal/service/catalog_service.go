package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/models"
	"github.com/liveartfest/ticketing/internal/repository"
	"github.com/liveartfest/ticketing/pkg/rabbitmq"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrPurchasableNotFound = errors.New("purchasable not found")
	ErrTicketClassNotFound = errors.New("ticket class not found")
	ErrInvalidType         = errors.New("invalid purchasable type")
)

// EventWithPurchasable pairs an event with the offer it is sold through.
type EventWithPurchasable struct {
	Event       models.Event
	Purchasable models.Purchasable
}

// PurchasableWithEvents is the catalog listing unit.
type PurchasableWithEvents struct {
	Purchasable models.Purchasable
	Events      []models.Event
}

// PurchasableDetail adds the allowed price tiers.
type PurchasableDetail struct {
	Purchasable models.Purchasable
	Events      []models.Event
	ClassLinks  []models.PurchasableTicketClass
}

type CatalogService interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*PurchasableDetail, *models.Event, error)
	UpdateEvent(ctx context.Context, id uint, req dto.UpdateEventRequest) (*models.Event, error)
	GetEvent(ctx context.Context, id uint) (*PurchasableDetail, *models.Event, error)
	ListIndividualEvents(ctx context.Context) ([]EventWithPurchasable, error)

	CreatePurchasable(ctx context.Context, req dto.CreatePurchasableRequest) (*models.Purchasable, error)
	ListPurchasables(ctx context.Context) ([]PurchasableWithEvents, error)
	ListDayPasses(ctx context.Context) ([]PurchasableWithEvents, error)
	GetPurchasable(ctx context.Context, id uint) (*PurchasableDetail, error)
	UpdatePurchasable(ctx context.Context, id uint, req dto.UpdatePurchasableRequest) (*models.Purchasable, error)
	DeletePurchasable(ctx context.Context, id uint) error

	CreateTicketClass(ctx context.Context, description string, price float64) (*models.TicketClass, error)
	ListTicketClasses(ctx context.Context) ([]models.TicketClass, error)
}

type catalogService struct {
	purchasables repository.PurchasableRepository
	events       repository.EventRepository
	classes      repository.TicketClassRepository
	tickets      repository.TicketRepository
	publisher    *rabbitmq.Publisher
}

func NewCatalogService(
	purchasables repository.PurchasableRepository,
	events repository.EventRepository,
	classes repository.TicketClassRepository,
	tickets repository.TicketRepository,
	publisher *rabbitmq.Publisher,
) CatalogService {
	return &catalogService{
		purchasables: purchasables,
		events:       events,
		classes:      classes,
		tickets:      tickets,
		publisher:    publisher,
	}
}

// CreateEvent attaches the event to an existing purchasable (promoting it to
// a dayPass bundle) or creates a fresh purchasable with its class links. The
// purchasable, its links, and the event persist together or not at all.
func (s *catalogService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*PurchasableDetail, *models.Event, error) {
	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		ArtistName:  req.ArtistName,
		ImageURL:    req.ImageURL,
		EmbedMedia:  req.EmbedMedia,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
		Capacity:    req.Capacity,
	}

	var purchasable *models.Purchasable

	if req.PurchasableID != 0 {
		existing, err := s.purchasables.FindByID(ctx, req.PurchasableID)
		if err != nil {
			return nil, nil, ErrPurchasableNotFound
		}
		purchasable = existing

		err = s.purchasables.Transact(ctx, func(tx *gorm.DB) error {
			// A second event makes the offer a bundle
			purchasable.Type = models.TypeDayPass
			if err := s.purchasables.Update(ctx, tx, purchasable); err != nil {
				return err
			}
			event.PurchasableID = purchasable.ID
			return s.events.Create(ctx, tx, event)
		})
		if err != nil {
			return nil, nil, fmt.Errorf("attach event: %w", err)
		}
	} else {
		pType := models.TypeIndividual
		if req.Type != "" {
			pType = models.PurchasableType(req.Type)
			if !pType.Valid() {
				return nil, nil, ErrInvalidType
			}
		}

		for _, classID := range req.TicketClasses {
			if _, err := s.classes.FindByID(ctx, classID); err != nil {
				return nil, nil, ErrTicketClassNotFound
			}
		}

		purchasable = &models.Purchasable{
			Name:        req.Name,
			Description: req.Description,
			Type:        pType,
			NumTickets:  req.Capacity,
		}

		err := s.purchasables.Transact(ctx, func(tx *gorm.DB) error {
			if err := s.purchasables.Create(ctx, tx, purchasable); err != nil {
				return err
			}
			for _, classID := range req.TicketClasses {
				link := &models.PurchasableTicketClass{
					PurchasableID: purchasable.ID,
					TicketClassID: classID,
				}
				if err := s.purchasables.CreateClassLink(ctx, tx, link); err != nil {
					return err
				}
			}
			event.PurchasableID = purchasable.ID
			return s.events.Create(ctx, tx, event)
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create event: %w", err)
		}

		if s.publisher != nil {
			_ = s.publisher.Publish("purchasable.created", purchasable)
		}
	}

	detail, err := s.GetPurchasable(ctx, purchasable.ID)
	if err != nil {
		return nil, nil, err
	}
	return detail, event, nil
}

func (s *catalogService) UpdateEvent(ctx context.Context, id uint, req dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	event.Name = req.Name
	event.Description = req.Description
	event.ArtistName = req.ArtistName
	event.ImageURL = req.ImageURL
	event.EmbedMedia = req.EmbedMedia
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Venue = req.Venue
	event.Capacity = req.Capacity

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *catalogService) GetEvent(ctx context.Context, id uint) (*PurchasableDetail, *models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, nil, ErrEventNotFound
	}

	detail, err := s.GetPurchasable(ctx, event.PurchasableID)
	if err != nil {
		return nil, nil, err
	}
	return detail, event, nil
}

func (s *catalogService) ListIndividualEvents(ctx context.Context) ([]EventWithPurchasable, error) {
	events, err := s.events.FindIndividual(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]EventWithPurchasable, 0, len(events))
	for _, event := range events {
		purchasable, err := s.purchasables.FindByID(ctx, event.PurchasableID)
		if err != nil {
			return nil, err
		}
		result = append(result, EventWithPurchasable{Event: event, Purchasable: *purchasable})
	}
	return result, nil
}

func (s *catalogService) CreatePurchasable(ctx context.Context, req dto.CreatePurchasableRequest) (*models.Purchasable, error) {
	pType := models.PurchasableType(req.Type)
	if !pType.Valid() {
		return nil, ErrInvalidType
	}

	for _, classID := range req.TicketClasses {
		if _, err := s.classes.FindByID(ctx, classID); err != nil {
			return nil, ErrTicketClassNotFound
		}
	}

	purchasable := &models.Purchasable{
		Name:        req.Name,
		Description: req.Description,
		Type:        pType,
		NumTickets:  req.NumTickets,
	}

	err := s.purchasables.Transact(ctx, func(tx *gorm.DB) error {
		if err := s.purchasables.Create(ctx, tx, purchasable); err != nil {
			return err
		}
		for _, classID := range req.TicketClasses {
			link := &models.PurchasableTicketClass{
				PurchasableID: purchasable.ID,
				TicketClassID: classID,
			}
			if err := s.purchasables.CreateClassLink(ctx, tx, link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create purchasable: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("purchasable.created", purchasable)
	}
	return purchasable, nil
}

func (s *catalogService) ListPurchasables(ctx context.Context) ([]PurchasableWithEvents, error) {
	purchasables, err := s.purchasables.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withEvents(ctx, purchasables)
}

func (s *catalogService) ListDayPasses(ctx context.Context) ([]PurchasableWithEvents, error) {
	purchasables, err := s.purchasables.FindByType(ctx, models.TypeDayPass)
	if err != nil {
		return nil, err
	}
	return s.withEvents(ctx, purchasables)
}

func (s *catalogService) withEvents(ctx context.Context, purchasables []models.Purchasable) ([]PurchasableWithEvents, error) {
	result := make([]PurchasableWithEvents, 0, len(purchasables))
	for _, p := range purchasables {
		events, err := s.events.FindByPurchasableID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, PurchasableWithEvents{Purchasable: p, Events: events})
	}
	return result, nil
}

func (s *catalogService) GetPurchasable(ctx context.Context, id uint) (*PurchasableDetail, error) {
	purchasable, err := s.purchasables.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPurchasableNotFound
	}

	events, err := s.events.FindByPurchasableID(ctx, id)
	if err != nil {
		return nil, err
	}

	links, err := s.purchasables.FindClassLinks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PurchasableDetail{Purchasable: *purchasable, Events: events, ClassLinks: links}, nil
}

// UpdatePurchasable overwrites the scalar fields and reconciles the class set
// against the requested one: links are inserted for added classes and removed
// for dropped ones, so applying the same request twice is a no-op.
func (s *catalogService) UpdatePurchasable(ctx context.Context, id uint, req dto.UpdatePurchasableRequest) (*models.Purchasable, error) {
	purchasable, err := s.purchasables.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPurchasableNotFound
	}

	pType := models.PurchasableType(req.Type)
	if !pType.Valid() {
		return nil, ErrInvalidType
	}

	links, err := s.purchasables.FindClassLinks(ctx, id)
	if err != nil {
		return nil, err
	}

	current := make(map[uint]bool, len(links))
	for _, link := range links {
		current[link.TicketClassID] = true
	}
	requested := make(map[uint]bool, len(req.TicketClasses))
	for _, classID := range req.TicketClasses {
		requested[classID] = true
	}

	err = s.purchasables.Transact(ctx, func(tx *gorm.DB) error {
		purchasable.Type = pType
		purchasable.NumTickets = req.NumTickets
		purchasable.Description = req.Description
		purchasable.Name = req.Name
		if err := s.purchasables.Update(ctx, tx, purchasable); err != nil {
			return err
		}

		for classID := range requested {
			if !current[classID] {
				link := &models.PurchasableTicketClass{
					PurchasableID: id,
					TicketClassID: classID,
				}
				if err := s.purchasables.CreateClassLink(ctx, tx, link); err != nil {
					return err
				}
			}
		}
		for classID := range current {
			if !requested[classID] {
				if err := s.purchasables.DeleteClassLink(ctx, tx, id, classID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update purchasable: %w", err)
	}
	return purchasable, nil
}

// DeletePurchasable cascades in FK order: ticket event links, tickets,
// events, class links, then the purchasable row, all in one transaction.
func (s *catalogService) DeletePurchasable(ctx context.Context, id uint) error {
	if _, err := s.purchasables.FindByID(ctx, id); err != nil {
		return ErrPurchasableNotFound
	}

	err := s.purchasables.Transact(ctx, func(tx *gorm.DB) error {
		if err := s.tickets.DeleteEventLinksByPurchasable(ctx, tx, id); err != nil {
			return err
		}
		if err := s.tickets.DeleteByPurchasableID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.events.DeleteByPurchasableID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.purchasables.DeleteClassLinksByPurchasable(ctx, tx, id); err != nil {
			return err
		}
		return s.purchasables.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("delete purchasable: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("purchasable.deleted", map[string]uint{"id": id})
	}
	return nil
}

func (s *catalogService) CreateTicketClass(ctx context.Context, description string, price float64) (*models.TicketClass, error) {
	class := &models.TicketClass{Description: description, Price: price}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create ticket class: %w", err)
	}
	return class, nil
}

func (s *catalogService) ListTicketClasses(ctx context.Context) ([]models.TicketClass, error) {
	return s.classes.FindAll(ctx)
}
