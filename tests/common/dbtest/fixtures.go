//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/akshattiwarii/Peakster/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestUserPassword is the plaintext behind every fixture-created account.
const TestUserPassword = "password123"

// CreateTestUser seeds a user with a full quota profile directly in the
// database, bypassing the registration endpoint.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	hash, err := password.HashPassword(TestUserPassword)
	require.NoError(t, err)

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, hash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
		return userID
	}

	_, err = db.Exec(ctx, "INSERT INTO profiles (user_id, credits, last_refill_at) VALUES ($1, 5, now()) ON CONFLICT (user_id) DO NOTHING", userID)
	require.NoError(t, err)

	return userID
}

// SetCredits pins a user's quota row to an explicit balance and refill anchor.
func SetCredits(t *testing.T, db DBLike, userID uuid.UUID, credits int32, lastRefillAt time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE profiles SET credits = $2, last_refill_at = $3, updated_at = now() WHERE user_id = $1",
		userID, credits, lastRefillAt)
	require.NoError(t, err)
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE trips, profiles, users CASCADE")
	return err
}
