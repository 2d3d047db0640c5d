package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
)

type tournamentStore interface {
	SetWristbandColor(ctx context.Context, day, color string)
	WristbandColor(ctx context.Context, day string) string
}

// TournamentService serves static season information and the daily
// wristband color.
type TournamentService struct {
	store  tournamentStore
	logger *zap.Logger
	year   int
	now    func() time.Time
}

// NewTournamentService constructs the service.
func NewTournamentService(st tournamentStore, logger *zap.Logger, year int) *TournamentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TournamentService{store: st, logger: logger, year: year, now: time.Now}
}

// Info returns the season information for display. The window carries no
// enforcement logic.
func (s *TournamentService) Info(ctx context.Context) models.TournamentInfo {
	start, end := models.SeasonWindow(s.year)
	return models.TournamentInfo{
		Name:           models.TournamentName,
		Year:           s.year,
		WindowStart:    start,
		WindowEnd:      end,
		Divisions:      models.Divisions,
		SpeciesOptions: models.SpeciesOptions,
		WeighInVenues:  models.WeighInVenues,
		WristbandColor: s.store.WristbandColor(ctx, s.today()),
	}
}

// SetWristbandColor records today's wristband color. Display-only value;
// anglers show it in evidence video.
func (s *TournamentService) SetWristbandColor(ctx context.Context, color string) error {
	color = strings.TrimSpace(color)
	if color == "" {
		return appErrors.Clone(appErrors.ErrValidation, "wristband color required")
	}
	s.store.SetWristbandColor(ctx, s.today(), color)
	s.logger.Info("wristband color set", zap.String("color", color))
	return nil
}

func (s *TournamentService) today() string {
	return s.now().UTC().Format(dayFormat)
}
