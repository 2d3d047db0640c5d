package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
)

// ActionSubmitCatch is the confirmation-token scope consumed by SubmitCatch.
const ActionSubmitCatch = "submit-catch"

type catchStore interface {
	GetAccount(ctx context.Context, username string) (*models.Account, error)
	CreateCatch(ctx context.Context, entry *models.CatchEntry) error
	GetCatch(ctx context.Context, id string) (*models.CatchEntry, error)
	TransitionCatch(ctx context.Context, id string, from, to models.CatchStatus) (*models.CatchEntry, error)
	ListCatches(ctx context.Context, filter store.CatchFilter) []models.CatchEntry
	AppendAudit(ctx context.Context, entry models.AuditLog)
}

type confirmationVerifier interface {
	ValidateActionToken(token, username, action string) error
}

type checkInRoster interface {
	IsRegisteredToday(ctx context.Context, username string) bool
}

type evidenceSizer interface {
	Size(ref string) int64
}

// CatchConfig carries the submission policy knobs.
type CatchConfig struct {
	RequireCheckIn  bool
	RequireApproval bool
	MinVideoBytes   int64
}

// CatchService owns the catch lifecycle from submission through captain
// approval.
type CatchService struct {
	store     catchStore
	confirmer confirmationVerifier
	roster    checkInRoster
	evidence  evidenceSizer
	validator *validator.Validate
	logger    *zap.Logger
	config    CatchConfig
	metrics   *MetricsService
}

// NewCatchService constructs the service.
func NewCatchService(st catchStore, confirmer confirmationVerifier, roster checkInRoster, evidence evidenceSizer, validate *validator.Validate, logger *zap.Logger, cfg CatchConfig, metrics *MetricsService) *CatchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MinVideoBytes <= 0 {
		cfg.MinVideoBytes = 500 * 1024
	}
	return &CatchService{
		store:     st,
		confirmer: confirmer,
		roster:    roster,
		evidence:  evidence,
		validator: validate,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
	}
}

// SubmitCatchRequest is the captain's submission payload. ConfirmToken comes
// from a prior /auth/confirm exchange.
type SubmitCatchRequest struct {
	Division        models.Division  `json:"division" validate:"required"`
	AnglerName      string           `json:"angler_name" validate:"required"`
	BagFish         []models.BagFish `json:"bag_fish" validate:"max=3,dive"`
	WeighInLocation string           `json:"weigh_in_location" validate:"required"`
	LandingVideoRef string           `json:"landing_video_ref" validate:"required"`
	WeighInVideoRef string           `json:"weigh_in_video_ref" validate:"required"`
	ConfirmToken    string           `json:"confirm_token" validate:"required"`
}

// SubmitCatch validates and appends a new catch entry. The append is a
// single atomic store operation; on failure nothing is recorded.
func (s *CatchService) SubmitCatch(ctx context.Context, captainUsername string, req SubmitCatchRequest) (*models.CatchEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid catch payload")
	}

	captain, err := s.store.GetAccount(ctx, captainUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "captain account not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load captain")
	}
	if captain.Role != models.RoleCaptain {
		return nil, appErrors.Clone(appErrors.ErrNotCaptain, "")
	}
	if !captain.Active {
		return nil, appErrors.Clone(appErrors.ErrInactiveAccount, "upload captain credentials before submitting catches")
	}

	if err := s.confirmer.ValidateActionToken(req.ConfirmToken, captainUsername, ActionSubmitCatch); err != nil {
		return nil, err
	}

	if s.config.RequireCheckIn && !s.roster.IsRegisteredToday(ctx, req.AnglerName) {
		return nil, appErrors.Clone(appErrors.ErrAnglerNotRegistered, "")
	}

	if !models.ValidDivision(req.Division) {
		return nil, appErrors.Clone(appErrors.ErrUnknownDivision, "")
	}
	if !models.ValidVenue(req.WeighInLocation) {
		return nil, appErrors.Clone(appErrors.ErrUnknownVenue, "")
	}

	// Zero-weight rows are form placeholders, not real fish.
	bag := make([]models.BagFish, 0, len(req.BagFish))
	var totalWeight float64
	for _, fish := range req.BagFish {
		if fish.WeightLbs == 0 {
			continue
		}
		if !models.ValidSpecies(fish.Species) {
			return nil, appErrors.Clone(appErrors.ErrUnknownSpecies, fmt.Sprintf("species %q is not offered", fish.Species))
		}
		bag = append(bag, fish)
		totalWeight += fish.WeightLbs
	}

	// Byte size stands in for clip duration; anything below the threshold
	// cannot hold the required five seconds of footage.
	for _, ref := range []string{req.LandingVideoRef, req.WeighInVideoRef} {
		if s.evidence.Size(ref) < s.config.MinVideoBytes {
			return nil, appErrors.Clone(appErrors.ErrMediaTooShort, fmt.Sprintf("evidence clip %q is below the minimum size", ref))
		}
	}

	status := models.CatchApproved
	if s.config.RequireApproval {
		status = models.CatchPending
	}

	now := time.Now().UTC()
	entry := &models.CatchEntry{
		ID:                uuid.NewString(),
		Division:          req.Division,
		AnglerName:        req.AnglerName,
		CertifyingCaptain: captainUsername,
		BagFish:           bag,
		TotalWeight:       totalWeight,
		WeighInLocation:   req.WeighInLocation,
		LandingVideoRef:   req.LandingVideoRef,
		WeighInVideoRef:   req.WeighInVideoRef,
		Status:            status,
		SubmittedAt:       now,
	}

	if err := s.store.CreateCatch(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record catch")
	}

	s.store.AppendAudit(ctx, models.AuditLog{
		ID:         uuid.NewString(),
		Actor:      captainUsername,
		Action:     models.AuditActionCatchSubmit,
		Resource:   "catch",
		ResourceID: entry.ID,
		Details:    fmt.Sprintf("%s / %s / %.2f lbs", entry.Division, entry.AnglerName, entry.TotalWeight),
		CreatedAt:  now,
	})
	s.metrics.RecordCatchSubmitted(string(entry.Division))

	s.logger.Info("catch submitted",
		zap.String("catch_id", entry.ID),
		zap.String("captain", captainUsername),
		zap.String("angler", entry.AnglerName),
		zap.Float64("total_weight", entry.TotalWeight),
		zap.String("status", string(entry.Status)))

	return entry, nil
}

// ApproveCatch transitions a pending entry to APPROVED. Only the certifying
// captain may decide, and only once.
func (s *CatchService) ApproveCatch(ctx context.Context, captainUsername, catchID string) (*models.CatchEntry, error) {
	return s.decideCatch(ctx, captainUsername, catchID, models.CatchApproved)
}

// RejectCatch transitions a pending entry to REJECTED. Terminal, like
// approval.
func (s *CatchService) RejectCatch(ctx context.Context, captainUsername, catchID string) (*models.CatchEntry, error) {
	return s.decideCatch(ctx, captainUsername, catchID, models.CatchRejected)
}

func (s *CatchService) decideCatch(ctx context.Context, captainUsername, catchID string, to models.CatchStatus) (*models.CatchEntry, error) {
	entry, err := s.store.GetCatch(ctx, catchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "catch entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catch entry")
	}
	if entry.CertifyingCaptain != captainUsername {
		return nil, appErrors.Clone(appErrors.ErrNotOwner, "")
	}
	if entry.Status != models.CatchPending {
		return nil, appErrors.Clone(appErrors.ErrNotPending, "")
	}

	decided, err := s.store.TransitionCatch(ctx, catchID, models.CatchPending, to)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, appErrors.Clone(appErrors.ErrNotPending, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decide catch entry")
	}

	action := models.AuditActionCatchApprove
	if to == models.CatchRejected {
		action = models.AuditActionCatchReject
	}
	s.store.AppendAudit(ctx, models.AuditLog{
		ID:         uuid.NewString(),
		Actor:      captainUsername,
		Action:     action,
		Resource:   "catch",
		ResourceID: decided.ID,
		CreatedAt:  time.Now().UTC(),
	})
	s.metrics.RecordCatchDecided(string(to))

	s.logger.Info("catch decided",
		zap.String("catch_id", decided.ID),
		zap.String("captain", captainUsername),
		zap.String("status", string(decided.Status)))

	return decided, nil
}

// Get returns a single catch entry. Only the certifying captain may view a
// pending or rejected entry.
func (s *CatchService) Get(ctx context.Context, claims *models.JWTClaims, catchID string) (*models.CatchEntry, error) {
	entry, err := s.store.GetCatch(ctx, catchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "catch entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catch entry")
	}
	if entry.Status != models.CatchApproved && claims != nil && entry.CertifyingCaptain != claims.Username && claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "entry is not public until approved")
	}
	return entry, nil
}

// ListPending returns the captain's own pending queue in submission order.
func (s *CatchService) ListPending(ctx context.Context, captainUsername string) []models.CatchEntry {
	pending := models.CatchPending
	return s.store.ListCatches(ctx, store.CatchFilter{Status: &pending, Captain: captainUsername})
}
