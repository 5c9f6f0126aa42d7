//go:build unit || e2e

package builder

import (
	"time"

	"github.com/akshattiwarii/Peakster/internal/domain/quota"
	"github.com/akshattiwarii/Peakster/internal/domain/user"
	"github.com/akshattiwarii/Peakster/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	Credits      int32
	LastRefillAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "traveler",
		IsActive:     true,
		Credits:      quota.MaxCredits,
		LastRefillAt: time.Now().UTC(),
	}
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildCurrentUserRow() *queries.CurrentUserRow {
	return &queries.CurrentUserRow{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		IsActive:     u.IsActive,
		Credits:      u.Credits,
		LastRefillAt: u.LastRefillAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithCredits(credits int32) *UserBuilder {
	u.Credits = credits
	return u
}

func (u *UserBuilder) WithLastRefillAt(t time.Time) *UserBuilder {
	u.LastRefillAt = t
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
