package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/export"
)

// SailfishBonusLbs is added to any bag containing a sailfish. The rule is
// carried over from the original scoring sheet even though sailfish is not
// currently an offered species.
const SailfishBonusLbs = 10.0

type leaderboardStore interface {
	ListCatches(ctx context.Context, filter store.CatchFilter) []models.CatchEntry
}

// LeaderboardService computes point-in-time division standings.
type LeaderboardService struct {
	store   leaderboardStore
	logger  *zap.Logger
	size    int
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	year    int
	metrics *MetricsService
}

// NewLeaderboardService constructs the service.
func NewLeaderboardService(st leaderboardStore, logger *zap.Logger, size, year int, metrics *MetricsService) *LeaderboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if size <= 0 {
		size = 20
	}
	return &LeaderboardService{
		store:   st,
		logger:  logger,
		size:    size,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		year:    year,
		metrics: metrics,
	}
}

// Get returns the division leaderboard snapshot: approved entries only,
// ranked by adjusted weight descending, truncated to the configured size.
// Ties break by earliest submission, then entry ID, so the ordering is
// deterministic.
func (s *LeaderboardService) Get(ctx context.Context, division models.Division) ([]models.LeaderboardRow, error) {
	if !models.ValidDivision(division) {
		return nil, appErrors.Clone(appErrors.ErrUnknownDivision, "")
	}

	approved := models.CatchApproved
	entries := s.store.ListCatches(ctx, store.CatchFilter{Division: &division, Status: &approved})

	rows := make([]models.LeaderboardRow, 0, len(entries))
	for _, entry := range entries {
		species := make([]string, 0, len(entry.BagFish))
		for _, fish := range entry.BagFish {
			species = append(species, fish.Species)
		}
		rows = append(rows, models.LeaderboardRow{
			CatchID:           entry.ID,
			AnglerName:        entry.AnglerName,
			CertifyingCaptain: entry.CertifyingCaptain,
			Species:           species,
			TotalWeight:       entry.TotalWeight,
			AdjustedWeight:    adjustedWeight(entry),
			WeighInLocation:   entry.WeighInLocation,
			SubmittedAt:       entry.SubmittedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].AdjustedWeight != rows[j].AdjustedWeight {
			return rows[i].AdjustedWeight > rows[j].AdjustedWeight
		}
		if !rows[i].SubmittedAt.Equal(rows[j].SubmittedAt) {
			return rows[i].SubmittedAt.Before(rows[j].SubmittedAt)
		}
		return rows[i].CatchID < rows[j].CatchID
	})

	if len(rows) > s.size {
		rows = rows[:s.size]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}

	s.metrics.RecordLeaderboardQuery(string(division))
	return rows, nil
}

// ExportCSV renders the division standings as a CSV sheet.
func (s *LeaderboardService) ExportCSV(ctx context.Context, division models.Division) ([]byte, error) {
	rows, err := s.Get(ctx, division)
	if err != nil {
		return nil, err
	}
	data, err := s.csv.Render(standingsTable(rows))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv standings")
	}
	return data, nil
}

// ExportPDF renders the division standings as a printable PDF sheet.
func (s *LeaderboardService) ExportPDF(ctx context.Context, division models.Division) ([]byte, error) {
	rows, err := s.Get(ctx, division)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("%s - %s Division", models.TournamentName, division)
	subtitle := fmt.Sprintf("Season %d standings", s.year)
	data, err := s.pdf.Render(standingsTable(rows), title, subtitle)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf standings")
	}
	return data, nil
}

// adjustedWeight applies the bonus when any bag species contains "sailfish",
// compared case-insensitively.
func adjustedWeight(entry models.CatchEntry) float64 {
	for _, fish := range entry.BagFish {
		if strings.Contains(strings.ToLower(fish.Species), "sailfish") {
			return entry.TotalWeight + SailfishBonusLbs
		}
	}
	return entry.TotalWeight
}

func standingsTable(rows []models.LeaderboardRow) export.Table {
	table := export.Table{
		Headers: []string{"Rank", "Angler", "Captain", "Species", "Weight (lbs)", "Adjusted (lbs)", "Weigh-In"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", row.Rank),
			row.AnglerName,
			row.CertifyingCaptain,
			strings.Join(row.Species, ", "),
			fmt.Sprintf("%.2f", row.TotalWeight),
			fmt.Sprintf("%.2f", row.AdjustedWeight),
			row.WeighInLocation,
		})
	}
	return table
}
