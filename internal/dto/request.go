package dto

import "time"

type CreateUserRequest struct {
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type UpdateUserRequest struct {
	Name string `json:"name"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

type PromoteAdminRequest struct {
	EmailAddress string `json:"emailAddress"`
}

type CreateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ArtistName  string    `json:"artistName"`
	ImageURL    string    `json:"imageUrl"`
	EmbedMedia  string    `json:"embedMedia"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Venue       string    `json:"venue"`
	Capacity    int       `json:"capacity"`

	// Attach to an existing purchasable, or create a fresh one with these.
	PurchasableID uint   `json:"purchasableId"`
	Type          string `json:"type"`
	TicketClasses []uint `json:"ticketClasses"`
}

type UpdateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ArtistName  string    `json:"artistName"`
	ImageURL    string    `json:"imageUrl"`
	EmbedMedia  string    `json:"embedMedia"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Venue       string    `json:"venue"`
	Capacity    int       `json:"capacity"`
}

type CreatePurchasableRequest struct {
	Type          string `json:"type"`
	NumTickets    int    `json:"numTickets"`
	Description   string `json:"description"`
	Name          string `json:"name"`
	TicketClasses []uint `json:"ticketClasses"`
}

type UpdatePurchasableRequest struct {
	Type          string `json:"type"`
	NumTickets    int    `json:"numTickets"`
	Description   string `json:"description"`
	Name          string `json:"name"`
	TicketClasses []uint `json:"ticketClasses"`
}

type CreateTicketClassRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type AddToCartRequest struct {
	PurchasableID uint   `json:"purchasableId"`
	TicketClassID uint   `json:"ticketClassId"`
	Quantity      int    `json:"quantity"`
	Events        []uint `json:"events"`
}

type CheckoutRequest struct {
	Nonce string `json:"nonce"`
}

type AuthRequest struct {
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}
