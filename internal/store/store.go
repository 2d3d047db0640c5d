package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
)

// Sentinel errors translated by the service layer into API errors.
var (
	ErrNotFound = errors.New("store: not found")
	ErrExists   = errors.New("store: already exists")
	ErrConflict = errors.New("store: conflicting state")
)

// CatchFilter narrows ListCatches results.
type CatchFilter struct {
	Division *models.Division
	Status   *models.CatchStatus
	Captain  string
}

// MemoryStore is the single process-wide store. All mutation is routed
// through its methods; each state-changing call is one critical section, so
// operations are all-or-nothing and at most one writer touches a catch entry
// at a time.
type MemoryStore struct {
	mu sync.RWMutex

	accounts      map[string]*models.Account
	checkins      map[string]map[string]struct{}
	catches       map[string]*models.CatchEntry
	catchOrder    []string
	refreshTokens map[string]*models.RefreshToken
	posts         []models.SocialPost
	audit         []models.AuditLog
	wristbands    map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:      make(map[string]*models.Account),
		checkins:      make(map[string]map[string]struct{}),
		catches:       make(map[string]*models.CatchEntry),
		refreshTokens: make(map[string]*models.RefreshToken),
		wristbands:    make(map[string]string),
	}
}

// CreateAccount inserts a new account. Usernames are unique.
func (s *MemoryStore) CreateAccount(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.Username]; ok {
		return ErrExists
	}
	cp := cloneAccount(account)
	s.accounts[account.Username] = &cp
	return nil
}

// GetAccount returns a copy of the account for the username.
func (s *MemoryStore) GetAccount(ctx context.Context, username string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneAccount(account)
	return &cp, nil
}

// UpdateAccount applies mutate to the stored account under the write lock
// and returns the updated copy. Username is immutable; mutation of the key
// field is ignored.
func (s *MemoryStore) UpdateAccount(ctx context.Context, username string, mutate func(*models.Account)) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(account)
	account.Username = username
	account.UpdatedAt = time.Now().UTC()
	cp := cloneAccount(account)
	return &cp, nil
}

// AddCheckIn registers the angler for the given tournament day. The insert
// is idempotent; the return value reports whether membership changed.
func (s *MemoryStore) AddCheckIn(ctx context.Context, day, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.checkins[day]
	if !ok {
		set = make(map[string]struct{})
		s.checkins[day] = set
	}
	if _, present := set[username]; present {
		return false
	}
	set[username] = struct{}{}
	return true
}

// IsCheckedIn reports membership in the day's registration set.
func (s *MemoryStore) IsCheckedIn(ctx context.Context, day, username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.checkins[day]
	if !ok {
		return false
	}
	_, present := set[username]
	return present
}

// ListCheckIns returns the day's registered anglers in sorted order.
func (s *MemoryStore) ListCheckIns(ctx context.Context, day string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.checkins[day]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateCatch appends a new catch entry.
func (s *MemoryStore) CreateCatch(ctx context.Context, entry *models.CatchEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catches[entry.ID]; ok {
		return ErrExists
	}
	cp := cloneCatch(entry)
	s.catches[entry.ID] = &cp
	s.catchOrder = append(s.catchOrder, entry.ID)
	return nil
}

// GetCatch returns a copy of the entry.
func (s *MemoryStore) GetCatch(ctx context.Context, id string) (*models.CatchEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.catches[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneCatch(entry)
	return &cp, nil
}

// TransitionCatch moves the entry from one status to another as a single
// compare-and-set. ErrConflict is returned when the entry is no longer in
// the expected state, which makes double-approval impossible.
func (s *MemoryStore) TransitionCatch(ctx context.Context, id string, from, to models.CatchStatus) (*models.CatchEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.catches[id]
	if !ok {
		return nil, ErrNotFound
	}
	if entry.Status != from {
		return nil, ErrConflict
	}
	now := time.Now().UTC()
	entry.Status = to
	entry.DecidedAt = &now
	cp := cloneCatch(entry)
	return &cp, nil
}

// ListCatches returns copies of entries matching the filter in submission
// order.
func (s *MemoryStore) ListCatches(ctx context.Context, filter CatchFilter) []models.CatchEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.CatchEntry, 0, len(s.catchOrder))
	for _, id := range s.catchOrder {
		entry := s.catches[id]
		if filter.Division != nil && entry.Division != *filter.Division {
			continue
		}
		if filter.Status != nil && entry.Status != *filter.Status {
			continue
		}
		if filter.Captain != "" && entry.CertifyingCaptain != filter.Captain {
			continue
		}
		result = append(result, cloneCatch(entry))
	}
	return result
}

// CreateRefreshToken stores a session refresh token.
func (s *MemoryStore) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.refreshTokens[token.Token]; ok {
		return ErrExists
	}
	cp := *token
	s.refreshTokens[token.Token] = &cp
	return nil
}

// GetRefreshToken looks up a refresh token by its opaque value.
func (s *MemoryStore) GetRefreshToken(ctx context.Context, value string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.refreshTokens[value]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *token
	return &cp, nil
}

// RevokeRefreshToken marks the token revoked.
func (s *MemoryStore) RevokeRefreshToken(ctx context.Context, value string, revokedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.refreshTokens[value]
	if !ok {
		return ErrNotFound
	}
	token.Revoked = true
	token.RevokedAt = &revokedAt
	return nil
}

// RevokeAccountRefreshTokens revokes every live token for the username.
func (s *MemoryStore) RevokeAccountRefreshTokens(ctx context.Context, username string, revokedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, token := range s.refreshTokens {
		if token.Username == username && !token.Revoked {
			token.Revoked = true
			ts := revokedAt
			token.RevokedAt = &ts
		}
	}
}

// AppendPost adds a feed post. Posts are append-only.
func (s *MemoryStore) AppendPost(ctx context.Context, post models.SocialPost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, post)
}

// ListPosts returns up to limit posts, newest first.
func (s *MemoryStore) ListPosts(ctx context.Context, limit int) []models.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.posts) {
		limit = len(s.posts)
	}
	result := make([]models.SocialPost, 0, limit)
	for i := len(s.posts) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.posts[i])
	}
	return result
}

// AppendAudit records an audit trail entry.
func (s *MemoryStore) AppendAudit(ctx context.Context, entry models.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit = append(s.audit, entry)
}

// ListAudit returns a copy of the audit trail in insertion order.
func (s *MemoryStore) ListAudit(ctx context.Context) []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.AuditLog, len(s.audit))
	copy(result, s.audit)
	return result
}

// SetWristbandColor records the day's wristband color.
func (s *MemoryStore) SetWristbandColor(ctx context.Context, day, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wristbands[day] = color
}

// WristbandColor returns the day's wristband color, empty when unset.
func (s *MemoryStore) WristbandColor(ctx context.Context, day string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wristbands[day]
}

func cloneAccount(a *models.Account) models.Account {
	cp := *a
	if a.Credentials != nil {
		creds := *a.Credentials
		cp.Credentials = &creds
	}
	if a.LastLogin != nil {
		ts := *a.LastLogin
		cp.LastLogin = &ts
	}
	return cp
}

func cloneCatch(e *models.CatchEntry) models.CatchEntry {
	cp := *e
	cp.BagFish = make([]models.BagFish, len(e.BagFish))
	copy(cp.BagFish, e.BagFish)
	if e.DecidedAt != nil {
		ts := *e.DecidedAt
		cp.DecidedAt = &ts
	}
	return cp
}
