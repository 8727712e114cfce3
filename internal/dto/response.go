package dto

import (
	"time"

	"github.com/liveartfest/ticketing/internal/models"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// UserResponse maps every user column except the password hash.
type UserResponse struct {
	ID           uint       `json:"id"`
	EmailAddress string     `json:"emailAddress"`
	Name         string     `json:"name"`
	IsAdmin      bool       `json:"isAdmin"`
	Gender       string     `json:"gender,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Association  string     `json:"association,omitempty"`
	CreateDate   time.Time  `json:"createDate"`
}

type TicketClassResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type EventResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ArtistName    string    `json:"artistName,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	EmbedMedia    string    `json:"embedMedia,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Venue         string    `json:"venue,omitempty"`
	Capacity      int       `json:"capacity"`
	IsFull        bool      `json:"isFull"`
	PurchasableID uint      `json:"purchasable_id"`
}

type PurchasableResponse struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Type        models.PurchasableType `json:"type"`
	NumTickets  int                    `json:"numTickets"`
	IsSoldOut   bool                   `json:"isSoldOut"`
}

// PurchasableDetailResponse nests the purchasable's events and allowed
// ticket classes, the shape of GET /purchasables/{id}/.
type PurchasableDetailResponse struct {
	PurchasableResponse
	Events        []EventResponse       `json:"events"`
	TicketClasses []TicketClassResponse `json:"ticketClasses"`
}

// PurchasableListItem is the catalog listing shape: purchasable, its events,
// and the earliest event start time (null when it has no events yet).
type PurchasableListItem struct {
	PurchasableResponse
	Events    []EventResponse `json:"events"`
	StartTime *time.Time      `json:"startTime"`
}

// EventDetailResponse nests the purchasable an event is sold through.
type EventDetailResponse struct {
	EventResponse
	Purchasable PurchasableDetailResponse `json:"purchasable"`
}

type CartTicketResponse struct {
	ID           uint                `json:"id"`
	IsPurchased  bool                `json:"isPurchased"`
	CreateDate   time.Time           `json:"createDate"`
	PurchaseDate *time.Time          `json:"purchaseDate,omitempty"`
	TicketClass  TicketClassResponse `json:"ticketClass"`
	Events       []EventResponse     `json:"events"`
}

type CartPurchasableResponse struct {
	PurchasableResponse
	Events  []EventResponse      `json:"events"`
	Tickets []CartTicketResponse `json:"tickets"`
}

type CartResponse struct {
	TicketSubTotal float64                   `json:"ticketSubTotal"`
	Tax            float64                   `json:"tax"`
	TotalPrice     float64                   `json:"totalPrice"`
	Purchasables   []CartPurchasableResponse `json:"purchasables"`
}

type PurchasedResponse struct {
	Purchasables []CartPurchasableResponse `json:"purchasables"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	EmailAddress string `json:"emailAddress"`
	UserID       uint   `json:"userId"`
	IsAdmin      bool   `json:"isAdmin"`
}

type ReceiptResponse struct {
	Reference  string  `json:"reference"`
	PaymentID  string  `json:"paymentId"`
	NumTickets int     `json:"numTickets"`
	TotalPrice float64 `json:"totalPrice"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		EmailAddress: u.EmailAddress,
		Name:         u.Name,
		IsAdmin:      u.IsAdmin,
		Gender:       u.Gender,
		BirthDate:    u.BirthDate,
		Association:  u.Association,
		CreateDate:   u.CreateDate,
	}
}

func ToTicketClassResponse(tc *models.TicketClass) TicketClassResponse {
	return TicketClassResponse{
		ID:          tc.ID,
		Description: tc.Description,
		Price:       tc.Price,
	}
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		ArtistName:    e.ArtistName,
		ImageURL:      e.ImageURL,
		EmbedMedia:    e.EmbedMedia,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Venue:         e.Venue,
		Capacity:      e.Capacity,
		IsFull:        e.IsFull,
		PurchasableID: e.PurchasableID,
	}
}

func ToEventResponses(events []models.Event) []EventResponse {
	resp := make([]EventResponse, len(events))
	for i, e := range events {
		resp[i] = ToEventResponse(&e)
	}
	return resp
}

func ToPurchasableResponse(p *models.Purchasable) PurchasableResponse {
	return PurchasableResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		NumTickets:  p.NumTickets,
		IsSoldOut:   p.IsSoldOut,
	}
}

func ToTicketClassResponses(links []models.PurchasableTicketClass) []TicketClassResponse {
	resp := make([]TicketClassResponse, 0, len(links))
	for _, link := range links {
		if link.TicketClass != nil {
			resp = append(resp, ToTicketClassResponse(link.TicketClass))
		}
	}
	return resp
}
