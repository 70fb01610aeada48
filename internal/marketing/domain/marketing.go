package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
)

// Newsletter is a subscribed email address. Unsubscribing flips IsActive off;
// subscribing again turns the same row back on.
type Newsletter struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	SubscribedAt time.Time `json:"subscribed_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Newsletter) TableName() string {
	return "newsletter_subscriptions"
}

// ContactMessage is a message submitted through the contact page
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// MarketingRepository defines the contract for newsletter and contact data
// access
type MarketingRepository interface {
	Subscribe(email string) (*Newsletter, error)
	Unsubscribe(email string) error
	CreateContactMessage(msg *ContactMessage) error
	FindContactMessages(limit, offset int) ([]ContactMessage, error)
	MarkContactMessageRead(id uint) error
}
