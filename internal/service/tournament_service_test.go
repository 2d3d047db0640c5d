package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
)

func TestTournamentServiceInfo(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewTournamentService(st, zap.NewNop(), 2026)

	info := svc.Info(context.Background())
	assert.Equal(t, models.TournamentName, info.Name)
	assert.Equal(t, 2026, info.Year)
	assert.Equal(t, models.Divisions, info.Divisions)
	assert.Equal(t, models.SpeciesOptions, info.SpeciesOptions)
	assert.Equal(t, time.February, info.WindowStart.Month())
	assert.Empty(t, info.WristbandColor)
}

func TestTournamentServiceWristband(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewTournamentService(st, zap.NewNop(), 2026)

	require.Error(t, svc.SetWristbandColor(context.Background(), "  "))

	require.NoError(t, svc.SetWristbandColor(context.Background(), "orange"))
	assert.Equal(t, "orange", svc.Info(context.Background()).WristbandColor)

	// The color is per-day; tomorrow starts blank.
	svc.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	assert.Empty(t, svc.Info(context.Background()).WristbandColor)
}
