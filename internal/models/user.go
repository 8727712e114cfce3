package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	EmailAddress string     `gorm:"uniqueIndex;not null" json:"emailAddress"`
	Password     string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"isAdmin"`
	Gender       string     `json:"gender,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Association  string     `json:"association,omitempty"`
	CreateDate   time.Time  `gorm:"autoCreateTime" json:"createDate"`

	Tickets []Ticket `gorm:"foreignKey:UserID" json:"-"`
}
