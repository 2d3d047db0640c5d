package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
	"github.com/elpescadoreric/angler-tournament-app/pkg/config"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
)

type accountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, username string) (*models.Account, error)
	UpdateAccount(ctx context.Context, username string, mutate func(*models.Account)) (*models.Account, error)
	AppendAudit(ctx context.Context, entry models.AuditLog)
	ListAudit(ctx context.Context) []models.AuditLog
}

// AccountConfig carries the registration policy knobs.
type AccountConfig struct {
	EnforcePasswordPolicy bool
	CredentialGate        string
}

// AccountService owns the registration and identity ledger: account
// creation, profile edits and the captain credential gate.
type AccountService struct {
	store     accountStore
	validator *validator.Validate
	logger    *zap.Logger
	config    AccountConfig
}

// NewAccountService constructs the service.
func NewAccountService(st accountStore, validate *validator.Validate, logger *zap.Logger, cfg AccountConfig) *AccountService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CredentialGate != config.CredentialGateStrict {
		cfg.CredentialGate = config.CredentialGateDeferred
	}
	return &AccountService{store: st, validator: validate, logger: logger, config: cfg}
}

// RegisterRequest is the signup payload. Captain extras are only read for
// role CAPTAIN.
type RegisterRequest struct {
	Username        string         `json:"username" validate:"required,min=3,max=40"`
	Password        string         `json:"password" validate:"required"`
	ConfirmPassword string         `json:"confirm_password" validate:"required"`
	Role            models.Role    `json:"role" validate:"required"`
	Profile         models.Profile `json:"profile"`
	MarinerNumber   string         `json:"mariner_number,omitempty"`
	CredentialRef   string         `json:"credential_ref,omitempty"`
}

// UpdateProfileRequest merges the provided fields into the profile. Empty
// fields are left untouched.
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	HomePort   *string `json:"home_port,omitempty"`
	BoatName   *string `json:"boat_name,omitempty"`
	SocialLink *string `json:"social_link,omitempty"`
	PictureRef *string `json:"picture_ref,omitempty"`
}

// UploadCredentialsRequest supplies the captain credential document.
type UploadCredentialsRequest struct {
	MarinerNumber string `json:"mariner_number" validate:"required"`
	DocumentRef   string `json:"document_ref" validate:"required"`
}

// Register creates a new account. Usernames are unique and immutable.
// Anglers are active immediately; captains follow the configured credential
// gate policy.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}
	if !models.ValidRole(req.Role) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "role must be ANGLER or CAPTAIN")
	}
	if req.Password != req.ConfirmPassword {
		return nil, appErrors.Clone(appErrors.ErrPasswordMismatch, "")
	}
	if s.config.EnforcePasswordPolicy {
		if reason := checkPasswordStrength(req.Password); reason != "" {
			return nil, appErrors.Clone(appErrors.ErrWeakPassword, reason)
		}
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Role:      req.Role,
		Active:    true,
		Profile:   req.Profile,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Role == models.RoleCaptain {
		hasCredentials := req.MarinerNumber != "" && req.CredentialRef != ""
		switch s.config.CredentialGate {
		case config.CredentialGateStrict:
			if !hasCredentials {
				return nil, appErrors.Clone(appErrors.ErrMissingCredentials, "")
			}
		default:
			if !hasCredentials {
				account.Active = false
			}
		}
		if hasCredentials {
			account.Credentials = &models.CaptainCredentials{
				MarinerNumber: req.MarinerNumber,
				DocumentRef:   req.CredentialRef,
				UploadedAt:    now,
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	account.PasswordHash = string(hash)

	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrExists) {
			return nil, appErrors.Clone(appErrors.ErrUsernameTaken, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	s.store.AppendAudit(ctx, models.AuditLog{
		ID:        uuid.NewString(),
		Actor:     account.Username,
		Action:    models.AuditActionRegister,
		Resource:  "account",
		Details:   string(account.Role),
		CreatedAt: now,
	})

	s.logger.Info("account registered",
		zap.String("username", account.Username),
		zap.String("role", string(account.Role)),
		zap.Bool("active", account.Active))

	return account, nil
}

// BootstrapAdmin seeds the tournament director account from configuration.
// Registration rejects the ADMIN role, so this runs once at startup. An
// already-seeded admin is left untouched.
func (s *AccountService) BootstrapAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return appErrors.Clone(appErrors.ErrValidation, "admin bootstrap needs both username and password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash admin password")
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Role:         models.RoleAdmin,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrExists) {
			s.logger.Info("admin account already seeded", zap.String("username", username))
			return nil
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed admin account")
	}

	s.store.AppendAudit(ctx, models.AuditLog{
		ID:        uuid.NewString(),
		Actor:     username,
		Action:    models.AuditActionRegister,
		Resource:  "account",
		Details:   string(models.RoleAdmin),
		CreatedAt: now,
	})

	s.logger.Info("admin account seeded", zap.String("username", username))
	return nil
}

// AuditTrail returns the full audit ledger in insertion order. The route is
// admin-gated.
func (s *AccountService) AuditTrail(ctx context.Context) []models.AuditLog {
	return s.store.ListAudit(ctx)
}

// Get returns the account for the username.
func (s *AccountService) Get(ctx context.Context, username string) (*models.Account, error) {
	account, err := s.store.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load account")
	}
	return account, nil
}

// UpdateProfile merges the patch into the profile. The merge is
// non-destructive: only supplied fields change, and it always succeeds for
// an existing account.
func (s *AccountService) UpdateProfile(ctx context.Context, username string, req UpdateProfileRequest) (*models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	account, err := s.store.UpdateAccount(ctx, username, func(a *models.Account) {
		applyIfSet(&a.Profile.FullName, req.FullName)
		applyIfSet(&a.Profile.Email, req.Email)
		applyIfSet(&a.Profile.Phone, req.Phone)
		applyIfSet(&a.Profile.Bio, req.Bio)
		applyIfSet(&a.Profile.HomePort, req.HomePort)
		applyIfSet(&a.Profile.BoatName, req.BoatName)
		applyIfSet(&a.Profile.SocialLink, req.SocialLink)
		applyIfSet(&a.Profile.PictureRef, req.PictureRef)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	return account, nil
}

// UploadCaptainCredentials records the credential document and activates the
// captain. Re-upload simply replaces the reference.
func (s *AccountService) UploadCaptainCredentials(ctx context.Context, username string, req UploadCredentialsRequest) (*models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid credentials payload")
	}

	existing, err := s.store.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load account")
	}
	if existing.Role != models.RoleCaptain {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only captains carry credentials")
	}

	account, err := s.store.UpdateAccount(ctx, username, func(a *models.Account) {
		a.Credentials = &models.CaptainCredentials{
			MarinerNumber: req.MarinerNumber,
			DocumentRef:   req.DocumentRef,
			UploadedAt:    time.Now().UTC(),
		}
		a.Active = true
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store credentials")
	}

	s.logger.Info("captain credentials uploaded", zap.String("username", username))
	return account, nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// checkPasswordStrength enforces the policy: minimum length 8 with at least
// two digits, two lowercase, two uppercase and two punctuation or symbol
// characters, each class counted independently. Returns an empty string when
// the password passes.
func checkPasswordStrength(password string) string {
	var digits, lower, upper, punct int
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			punct++
		}
	}

	var missing []string
	if len([]rune(password)) < 8 {
		missing = append(missing, "at least 8 characters")
	}
	if digits < 2 {
		missing = append(missing, "2 digits")
	}
	if lower < 2 {
		missing = append(missing, "2 lowercase letters")
	}
	if upper < 2 {
		missing = append(missing, "2 uppercase letters")
	}
	if punct < 2 {
		missing = append(missing, "2 punctuation or symbol characters")
	}
	if len(missing) == 0 {
		return ""
	}
	return "password needs " + strings.Join(missing, ", ")
}
