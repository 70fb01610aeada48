package command

import (
	"fmt"
	"time"

	"github.com/pcshop/storefront/internal/user/domain"
)

// UpdateProfileCommand saves the user's shipping details for checkout prefill
type UpdateProfileCommand struct {
	UserID  uint
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
}

// UpdateProfileHandler handles profile update command
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command
func (h *UpdateProfileHandler) Handle(cmd UpdateProfileCommand) (*domain.UserProfile, error) {
	profile, err := h.repo.FindOrCreateProfile(cmd.UserID)
	if err != nil {
		return nil, err
	}

	profile.Phone = cmd.Phone
	profile.Address = cmd.Address
	profile.City = cmd.City
	profile.State = cmd.State
	profile.Pincode = cmd.Pincode
	profile.UpdatedAt = time.Now()

	if err := h.repo.UpdateProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}
