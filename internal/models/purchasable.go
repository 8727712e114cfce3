package models

// PurchasableType distinguishes a single-event offer from a multi-event bundle.
type PurchasableType string

const (
	TypeIndividual PurchasableType = "individual"
	TypeDayPass    PurchasableType = "dayPass"
)

func (t PurchasableType) Valid() bool {
	return t == TypeIndividual || t == TypeDayPass
}

type Purchasable struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"not null" json:"description"`
	Type        PurchasableType `gorm:"type:varchar(20);not null;default:'individual'" json:"type"`
	NumTickets  int             `gorm:"not null" json:"numTickets"`
	IsSoldOut   bool            `gorm:"not null;default:false" json:"isSoldOut"`

	Events        []Event                  `gorm:"foreignKey:PurchasableID" json:"events,omitempty"`
	Tickets       []Ticket                 `gorm:"foreignKey:PurchasableID" json:"-"`
	TicketClasses []PurchasableTicketClass `gorm:"foreignKey:PurchasableID" json:"-"`
}

// PurchasableTicketClass links a purchasable to one of its allowed price tiers.
type PurchasableTicketClass struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	PurchasableID uint `gorm:"not null;index" json:"purchasable_id"`
	TicketClassID uint `gorm:"not null;index" json:"ticketClass_id"`

	TicketClass *TicketClass `gorm:"foreignKey:TicketClassID" json:"ticketClass,omitempty"`
}
