package models

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	ArtistName  string    `json:"artistName,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	EmbedMedia  string    `json:"embedMedia,omitempty"`
	StartTime   time.Time `gorm:"not null" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`
	Venue       string    `json:"venue,omitempty"`
	Capacity    int       `json:"capacity"`
	IsFull      bool      `gorm:"not null;default:false" json:"isFull"`

	PurchasableID uint `gorm:"not null;index" json:"purchasable_id"`
}

// EventTicket links a ticket to one of the events it admits to. A dayPass
// ticket links to every event in its bundle.
type EventTicket struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	EventID  uint `gorm:"not null;index" json:"event_id"`
	TicketID uint `gorm:"not null;index" json:"ticket_id"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
