package command

import (
	"net/mail"
	"strings"

	"github.com/pcshop/storefront/internal/marketing/domain"
)

// SubscribeCommand adds an email to the newsletter list
type SubscribeCommand struct {
	Email string
}

// SubscribeHandler handles newsletter subscription command
type SubscribeHandler struct {
	repo domain.MarketingRepository
}

// NewSubscribeHandler creates a new subscribe handler
func NewSubscribeHandler(repo domain.MarketingRepository) *SubscribeHandler {
	return &SubscribeHandler{repo: repo}
}

// Handle executes the subscribe command. Subscribing an address that already
// exists is not an error; it reactivates the subscription.
func (h *SubscribeHandler) Handle(cmd SubscribeCommand) (*domain.Newsletter, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	return h.repo.Subscribe(email)
}
