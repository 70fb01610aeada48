package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/marketing/domain"
)

type fakeMarketingRepository struct {
	domain.MarketingRepository
	subscriptions map[string]*domain.Newsletter
	messages      []*domain.ContactMessage
}

func newFakeMarketingRepository() *fakeMarketingRepository {
	return &fakeMarketingRepository{subscriptions: make(map[string]*domain.Newsletter)}
}

func (f *fakeMarketingRepository) Subscribe(email string) (*domain.Newsletter, error) {
	if sub, ok := f.subscriptions[email]; ok {
		sub.IsActive = true
		return sub, nil
	}
	sub := &domain.Newsletter{ID: uint(len(f.subscriptions) + 1), Email: email, IsActive: true}
	f.subscriptions[email] = sub
	return sub, nil
}

func (f *fakeMarketingRepository) CreateContactMessage(msg *domain.ContactMessage) error {
	msg.ID = uint(len(f.messages) + 1)
	f.messages = append(f.messages, msg)
	return nil
}

func TestSubscribe(t *testing.T) {
	repo := newFakeMarketingRepository()
	handler := NewSubscribeHandler(repo)

	sub, err := handler.Handle(SubscribeCommand{Email: "Asha@Example.com"})
	require.NoError(t, err)

	// addresses are normalized before storage
	assert.Equal(t, "asha@example.com", sub.Email)
	assert.True(t, sub.IsActive)
}

func TestSubscribeTwiceIsIdempotent(t *testing.T) {
	repo := newFakeMarketingRepository()
	handler := NewSubscribeHandler(repo)

	first, err := handler.Handle(SubscribeCommand{Email: "asha@example.com"})
	require.NoError(t, err)

	second, err := handler.Handle(SubscribeCommand{Email: "asha@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.subscriptions, 1)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	handler := NewSubscribeHandler(newFakeMarketingRepository())

	for _, email := range []string{"", "not-an-email", "a@", "@b.com"} {
		_, err := handler.Handle(SubscribeCommand{Email: email})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q", email)
	}
}

func TestSubmitContact(t *testing.T) {
	repo := newFakeMarketingRepository()
	handler := NewSubmitContactHandler(repo)

	msg, err := handler.Handle(SubmitContactCommand{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Subject: "Shipping question",
		Message: "When will my order arrive?",
	})
	require.NoError(t, err)

	assert.False(t, msg.IsRead)
	assert.Len(t, repo.messages, 1)
}

func TestSubmitContactValidation(t *testing.T) {
	handler := NewSubmitContactHandler(newFakeMarketingRepository())

	valid := SubmitContactCommand{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Subject: "Hi",
		Message: "Hello",
	}

	tests := []struct {
		name   string
		mutate func(*SubmitContactCommand)
	}{
		{"missing name", func(c *SubmitContactCommand) { c.Name = " " }},
		{"bad email", func(c *SubmitContactCommand) { c.Email = "nope" }},
		{"missing subject", func(c *SubmitContactCommand) { c.Subject = "" }},
		{"missing message", func(c *SubmitContactCommand) { c.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)
			_, err := handler.Handle(cmd)
			assert.Error(t, err)
		})
	}
}
