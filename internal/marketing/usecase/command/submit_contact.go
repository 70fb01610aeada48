package command

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/pcshop/storefront/internal/marketing/domain"
)

// SubmitContactCommand saves a message from the contact page
type SubmitContactCommand struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitContactHandler handles contact form submission command
type SubmitContactHandler struct {
	repo domain.MarketingRepository
}

// NewSubmitContactHandler creates a new submit contact handler
func NewSubmitContactHandler(repo domain.MarketingRepository) *SubmitContactHandler {
	return &SubmitContactHandler{repo: repo}
}

// Handle executes the submit contact command
func (h *SubmitContactHandler) Handle(cmd SubmitContactCommand) (*domain.ContactMessage, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if strings.TrimSpace(cmd.Subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	msg := &domain.ContactMessage{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Subject: cmd.Subject,
		Message: cmd.Message,
	}

	if err := h.repo.CreateContactMessage(msg); err != nil {
		return nil, err
	}

	return msg, nil
}
