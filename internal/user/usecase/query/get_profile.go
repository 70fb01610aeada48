package query

import (
	"github.com/pcshop/storefront/internal/user/domain"
)

// GetProfileQuery fetches a user's profile, creating it on first access
type GetProfileQuery struct {
	UserID uint
}

// ProfileView joins the account fields with the saved shipping details
type ProfileView struct {
	User    *domain.User        `json:"user"`
	Profile *domain.UserProfile `json:"profile"`
}

// GetProfileHandler handles get profile query
type GetProfileHandler struct {
	repo domain.UserRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle executes the get profile query
func (h *GetProfileHandler) Handle(query GetProfileQuery) (*ProfileView, error) {
	user, err := h.repo.FindByID(query.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := h.repo.FindOrCreateProfile(query.UserID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{User: user, Profile: profile}, nil
}
