package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
)

func newAuthService(st *store.MemoryStore) *AuthService {
	return NewAuthService(st, validator.New(), zap.NewNop(), AuthConfig{
		AccessTokenSecret:  "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		ConfirmTokenExpiry: 2 * time.Minute,
		Issuer:             "tournament-test",
	})
}

func TestAuthServiceLogin(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "reeldeal", models.RoleAngler, "hook-line-sinker", true)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "reeldeal",
		Password: "hook-line-sinker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "reeldeal", resp.Account.Username)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "reeldeal", claims.Username)
	assert.Equal(t, models.RoleAngler, claims.Role)

	account, err := st.GetAccount(context.Background(), "reeldeal")
	require.NoError(t, err)
	assert.NotNil(t, account.LastLogin)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "reeldeal", models.RoleAngler, "hook-line-sinker", true)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "reeldeal",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginInactiveCaptainAllowed(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "captain_sal", models.RoleCaptain, "hook-line-sinker", false)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "captain_sal",
		Password: "hook-line-sinker",
	})
	require.NoError(t, err)
	assert.False(t, resp.Account.Active)
}

func TestAuthServiceRefreshRotatesToken(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "reeldeal", models.RoleAngler, "hook-line-sinker", true)

	login, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "reeldeal",
		Password: "hook-line-sinker",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The used token is revoked and cannot be exchanged again.
	_, err = svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLogoutRevokesToken(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "reeldeal", models.RoleAngler, "hook-line-sinker", true)

	login, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "reeldeal",
		Password: "hook-line-sinker",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken, "reeldeal"))

	_, err = svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.Error(t, err)
}

func TestAuthServiceLogoutForeignTokenForbidden(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "reeldeal", models.RoleAngler, "hook-line-sinker", true)
	seedAccount(t, st, "poacher", models.RoleAngler, "hook-line-sinker", true)

	login, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "reeldeal",
		Password: "hook-line-sinker",
	})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), login.RefreshToken, "poacher")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceConfirmAction(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "captain_sal", models.RoleCaptain, "hook-line-sinker", true)

	resp, err := svc.ConfirmAction(context.Background(), "captain_sal", models.ConfirmActionRequest{
		Password: "hook-line-sinker",
		Action:   ActionSubmitCatch,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionSubmitCatch, resp.Action)

	require.NoError(t, svc.ValidateActionToken(resp.ConfirmToken, "captain_sal", ActionSubmitCatch))

	// The token is scoped to the account and action it was issued for.
	err = svc.ValidateActionToken(resp.ConfirmToken, "other_captain", ActionSubmitCatch)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConfirmationMismatch.Code, appErrors.FromError(err).Code)

	err = svc.ValidateActionToken(resp.ConfirmToken, "captain_sal", "delete-account")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConfirmationMismatch.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceConfirmActionWrongPassword(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "captain_sal", models.RoleCaptain, "hook-line-sinker", true)

	_, err := svc.ConfirmAction(context.Background(), "captain_sal", models.ConfirmActionRequest{
		Password: "wrong",
		Action:   ActionSubmitCatch,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConfirmationMismatch.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenGarbage(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestAuthServiceRefreshReplayRevokesAllSessions(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAuthService(st)
	seedAccount(t, st, "reeldeal", models.RoleAngler, "hook-line-sinker", true)

	first, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "reeldeal",
		Password: "hook-line-sinker",
	})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "reeldeal",
		Password: "hook-line-sinker",
	})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: first.RefreshToken,
	})
	require.NoError(t, err)

	// Replaying the rotated token revokes every session for the account.
	_, err = svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: first.RefreshToken,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	_, err = svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: rotated.RefreshToken,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	_, err = svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: second.RefreshToken,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
