package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/akshattiwarii/Peakster/internal/domain/quota"
	"github.com/akshattiwarii/Peakster/internal/domain/user"
	reqdto "github.com/akshattiwarii/Peakster/internal/handler/dto/request"
	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/clock"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"
	"github.com/akshattiwarii/Peakster/internal/pkg/jwt"
	"github.com/akshattiwarii/Peakster/internal/pkg/password"
	"github.com/akshattiwarii/Peakster/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrEmailTaken           = errs.New("email already registered")
)

type UserRepository interface {
	// CreateWithProfile provisions the user and their quota profile
	// (credits = MaxCredits, lastRefillAt = now) in one transaction.
	CreateWithProfile(ctx context.Context, u *user.User, credits int32, lastRefillAt time.Time) error

	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if _, err := user.NewPassword(req.Password); err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(email, hash, user.RoleTraveler)

	err = a.userRepo.CreateWithProfile(ctx, newUser, quota.MaxCredits, a.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return newUser.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userView.ID); err != nil {
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
		// Continue without failing - this is not critical
	}

	return &LoginResult{
		UserID: userView.ID,
		Token:  token,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}
