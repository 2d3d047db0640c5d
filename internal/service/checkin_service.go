package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
)

const dayFormat = "2006-01-02"

type checkInStore interface {
	GetAccount(ctx context.Context, username string) (*models.Account, error)
	AddCheckIn(ctx context.Context, day, username string) bool
	IsCheckedIn(ctx context.Context, day, username string) bool
	ListCheckIns(ctx context.Context, day string) []string
	AppendAudit(ctx context.Context, entry models.AuditLog)
}

// CheckInService tracks which anglers are present for the current
// tournament day. Each day starts with an empty registration set.
type CheckInService struct {
	store  checkInStore
	logger *zap.Logger
	now    func() time.Time
}

// NewCheckInService constructs the service.
func NewCheckInService(st checkInStore, logger *zap.Logger) *CheckInService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckInService{store: st, logger: logger, now: time.Now}
}

// CheckInResult reports the outcome of a daily registration.
type CheckInResult struct {
	Username string `json:"username"`
	Day      string `json:"day"`
	Already  bool   `json:"already_checked_in"`
}

// RegisterForToday marks the angler present for the current day. Only
// anglers may check in; the insert is idempotent.
func (s *CheckInService) RegisterForToday(ctx context.Context, username string) (*CheckInResult, error) {
	account, err := s.store.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load account")
	}
	if account.Role != models.RoleAngler {
		return nil, appErrors.Clone(appErrors.ErrRoleError, "")
	}

	day := s.Today()
	added := s.store.AddCheckIn(ctx, day, username)
	if added {
		s.store.AppendAudit(ctx, models.AuditLog{
			ID:        uuid.NewString(),
			Actor:     username,
			Action:    models.AuditActionCheckIn,
			Resource:  "checkin",
			Details:   day,
			CreatedAt: s.now().UTC(),
		})
	}

	return &CheckInResult{Username: username, Day: day, Already: !added}, nil
}

// IsRegisteredToday reports whether the angler has checked in today.
func (s *CheckInService) IsRegisteredToday(ctx context.Context, username string) bool {
	return s.store.IsCheckedIn(ctx, s.Today(), username)
}

// ListToday returns today's registered anglers in sorted order.
func (s *CheckInService) ListToday(ctx context.Context) []string {
	return s.store.ListCheckIns(ctx, s.Today())
}

// Today returns the current tournament day key.
func (s *CheckInService) Today() string {
	return s.now().UTC().Format(dayFormat)
}
