package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
)

func TestCreateAccountRejectsDuplicateUsername(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: "1", Username: "amy", Role: models.RoleAngler}))
	err := s.CreateAccount(ctx, &models.Account{ID: "2", Username: "amy", Role: models.RoleAngler})
	assert.ErrorIs(t, err, ErrExists)
}

func TestAccountCopiesDoNotAliasStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: "1", Username: "amy", Role: models.RoleAngler}))
	got, err := s.GetAccount(ctx, "amy")
	require.NoError(t, err)
	got.Profile.Bio = "scribbled on a copy"

	again, err := s.GetAccount(ctx, "amy")
	require.NoError(t, err)
	assert.Empty(t, again.Profile.Bio)
}

func TestUpdateAccountKeepsUsernameImmutable(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: "1", Username: "capjoe", Role: models.RoleCaptain}))
	updated, err := s.UpdateAccount(ctx, "capjoe", func(a *models.Account) {
		a.Username = "someone-else"
		a.Profile.BoatName = "Reel Busy"
	})
	require.NoError(t, err)
	assert.Equal(t, "capjoe", updated.Username)
	assert.Equal(t, "Reel Busy", updated.Profile.BoatName)
}

func TestCheckInIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.True(t, s.AddCheckIn(ctx, "2026-06-01", "amy"))
	assert.False(t, s.AddCheckIn(ctx, "2026-06-01", "amy"))
	assert.Equal(t, []string{"amy"}, s.ListCheckIns(ctx, "2026-06-01"))
	assert.True(t, s.IsCheckedIn(ctx, "2026-06-01", "amy"))
	assert.False(t, s.IsCheckedIn(ctx, "2026-06-02", "amy"))
}

func TestTransitionCatchIsSingleUse(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entry := &models.CatchEntry{ID: "c1", Division: models.DivisionReef, Status: models.CatchPending}
	require.NoError(t, s.CreateCatch(ctx, entry))

	decided, err := s.TransitionCatch(ctx, "c1", models.CatchPending, models.CatchApproved)
	require.NoError(t, err)
	assert.Equal(t, models.CatchApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	_, err = s.TransitionCatch(ctx, "c1", models.CatchPending, models.CatchRejected)
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := s.GetCatch(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.CatchApproved, stored.Status)
}

func TestListCatchesFilters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entries := []*models.CatchEntry{
		{ID: "c1", Division: models.DivisionReef, Status: models.CatchApproved, CertifyingCaptain: "capjoe"},
		{ID: "c2", Division: models.DivisionPelagic, Status: models.CatchApproved, CertifyingCaptain: "capjoe"},
		{ID: "c3", Division: models.DivisionReef, Status: models.CatchPending, CertifyingCaptain: "capsue"},
	}
	for _, e := range entries {
		require.NoError(t, s.CreateCatch(ctx, e))
	}

	reef := models.DivisionReef
	approved := models.CatchApproved
	got := s.ListCatches(ctx, CatchFilter{Division: &reef, Status: &approved})
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)

	byCaptain := s.ListCatches(ctx, CatchFilter{Captain: "capsue"})
	require.Len(t, byCaptain, 1)
	assert.Equal(t, "c3", byCaptain[0].ID)
}

func TestListPostsNewestFirstCapped(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		s.AppendPost(ctx, models.SocialPost{ID: string(rune('a' + i))})
	}

	got := s.ListPosts(ctx, models.FeedLimit)
	require.Len(t, got, models.FeedLimit)
	assert.Equal(t, string(rune('a'+24)), got[0].ID)
}

func TestRefreshTokenRevocation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	token := &models.RefreshToken{ID: "rt1", Username: "amy", Token: "opaque", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, s.CreateRefreshToken(ctx, token))

	s.RevokeAccountRefreshTokens(ctx, "amy", time.Now().UTC())
	got, err := s.GetRefreshToken(ctx, "opaque")
	require.NoError(t, err)
	assert.True(t, got.Revoked)
}
