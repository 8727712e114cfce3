package models

import "time"

type TicketClass struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
}

type Ticket struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	IsPurchased  bool       `gorm:"not null;default:false" json:"isPurchased"`
	CreateDate   time.Time  `gorm:"autoCreateTime" json:"createDate"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`

	PurchasableID uint `gorm:"not null;index" json:"purchasable_id"`
	TicketClassID uint `gorm:"not null;index" json:"ticketClass_id"`
	UserID        uint `gorm:"not null;index" json:"user_id"`

	TicketClass *TicketClass  `gorm:"foreignKey:TicketClassID" json:"ticketClass,omitempty"`
	Events      []EventTicket `gorm:"foreignKey:TicketID" json:"events,omitempty"`
}
