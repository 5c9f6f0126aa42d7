package response

import (
	"time"

	"github.com/akshattiwarii/Peakster/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  *LoginUser `json:"user,omitempty"`
}

type LoginUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type MeResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Credits          int       `json:"credits"`
	CreditsResetIn   string    `json:"creditsResetIn"`
	CreditsResetSecs int64     `json:"creditsResetSeconds"`
}

func FromCurrentUserView(v *queries.CurrentUserView) *MeResponse {
	return &MeResponse{
		ID:               v.ID,
		Email:            v.Email,
		Role:             v.Role,
		Credits:          v.Credits,
		CreditsResetIn:   v.ResetIn.Round(time.Minute).String(),
		CreditsResetSecs: int64(v.ResetIn.Seconds()),
	}
}
