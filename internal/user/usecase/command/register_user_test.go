package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/user/domain"
	"github.com/pcshop/storefront/pkg/auth"
)

// fakeUserRepository is an in-memory UserRepository for usecase tests
type fakeUserRepository struct {
	domain.UserRepository
	users    map[uint]*domain.User
	profiles map[uint]*domain.UserProfile
	nextID   uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:    make(map[uint]*domain.User),
		profiles: make(map[uint]*domain.UserProfile),
		nextID:   1,
	}
}

func (f *fakeUserRepository) Create(user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) FindByUsername(username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepository) FindByEmail(email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepository) FindOrCreateProfile(userID uint) (*domain.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	p := &domain.UserProfile{ID: f.nextID, UserID: userID}
	f.nextID++
	f.profiles[userID] = p
	return p, nil
}

func (f *fakeUserRepository) UpdateProfile(profile *domain.UserProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func registerCommand() RegisterUserCommand {
	return RegisterUserCommand{
		Username: "dana",
		Email:    "dana@example.com",
		Password: "hunter22",
		FullName: "Dana Mills",
	}
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepository()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(registerCommand())
	require.NoError(t, err)

	assert.Equal(t, "dana", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	// Stored password is a bcrypt hash, never the plaintext
	assert.NotEqual(t, "hunter22", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "hunter22"))
}

func TestRegisterUserValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterUserCommand)
	}{
		{"missing username", func(c *RegisterUserCommand) { c.Username = "" }},
		{"missing email", func(c *RegisterUserCommand) { c.Email = "" }},
		{"missing password", func(c *RegisterUserCommand) { c.Password = "" }},
		{"short password", func(c *RegisterUserCommand) { c.Password = "abc" }},
		{"missing full name", func(c *RegisterUserCommand) { c.FullName = "" }},
		{"unknown role", func(c *RegisterUserCommand) { c.Role = "superuser" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRegisterUserHandler(newFakeUserRepository())
			cmd := registerCommand()
			tt.mutate(&cmd)

			_, err := handler.Handle(cmd)
			assert.Error(t, err)
		})
	}
}

func TestRegisterUserDuplicates(t *testing.T) {
	repo := newFakeUserRepository()
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(registerCommand())
	require.NoError(t, err)

	dup := registerCommand()
	dup.Email = "other@example.com"
	_, err = handler.Handle(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	dup = registerCommand()
	dup.Username = "other"
	_, err = handler.Handle(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepository()
	_, err := NewRegisterUserHandler(repo).Handle(registerCommand())
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)
	resp, err := handler.Handle(LoginUserCommand{Username: "dana", Password: "hunter22"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "dana", resp.User.Username)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLoginUserBadCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	_, err := NewRegisterUserHandler(repo).Handle(registerCommand())
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)

	// Unknown user and wrong password are indistinguishable to the caller
	_, err = handler.Handle(LoginUserCommand{Username: "nobody", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = handler.Handle(LoginUserCommand{Username: "dana", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginDeactivatedUser(t *testing.T) {
	repo := newFakeUserRepository()
	user, err := NewRegisterUserHandler(repo).Handle(registerCommand())
	require.NoError(t, err)
	user.IsActive = false

	_, err = NewLoginUserHandler(repo).Handle(LoginUserCommand{Username: "dana", Password: "hunter22"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateProfileCreatesLazily(t *testing.T) {
	repo := newFakeUserRepository()
	handler := NewUpdateProfileHandler(repo)

	profile, err := handler.Handle(UpdateProfileCommand{
		UserID:  42,
		Phone:   "555-0142",
		Address: "12 Baker St",
		City:    "Pune",
		State:   "MH",
		Pincode: "411001",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), profile.UserID)
	assert.Equal(t, "Pune", profile.City)

	// Second save reuses the same row
	again, err := handler.Handle(UpdateProfileCommand{UserID: 42, City: "Mumbai"})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.Equal(t, "Mumbai", again.City)
	assert.Empty(t, again.Address)
}
