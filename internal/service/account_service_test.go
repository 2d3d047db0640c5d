package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
	"github.com/elpescadoreric/angler-tournament-app/pkg/config"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
)

func newAccountService(st *store.MemoryStore, cfg AccountConfig) *AccountService {
	return NewAccountService(st, validator.New(), zap.NewNop(), cfg)
}

func seedAccount(t *testing.T, st *store.MemoryStore, username string, role models.Role, password string, active bool) *models.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	account := &models.Account{
		ID:           username + "-id",
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
	}
	require.NoError(t, st.CreateAccount(context.Background(), account))
	return account
}

func TestAccountServiceRegisterAngler(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})

	account, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "reeldeal",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            models.RoleAngler,
		Profile:         models.Profile{FullName: "Reel Deal"},
	})
	require.NoError(t, err)
	assert.True(t, account.Active)
	assert.Equal(t, models.RoleAngler, account.Role)
	assert.NotEqual(t, "hook-line-sinker", account.PasswordHash)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("hook-line-sinker")))
}

func TestAccountServiceRegisterPasswordMismatch(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "reeldeal",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-stinker",
		Role:            models.RoleAngler,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPasswordMismatch.Code, appErrors.FromError(err).Code)
}

func TestAccountServiceRegisterDuplicateUsername(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})
	seedAccount(t, st, "reeldeal", models.RoleAngler, "pw", true)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "reeldeal",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            models.RoleAngler,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUsernameTaken.Code, appErrors.FromError(err).Code)
}

func TestAccountServiceRegisterAdminRejected(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "boss",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            models.RoleAdmin,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAccountServicePasswordPolicy(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{EnforcePasswordPolicy: true})

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"passes with all classes", "Ab1!Cd2?", false},
		{"too short", "Ab1!Cd2", true},
		{"missing digits", "Abcd!?EFgh", true},
		{"missing uppercase", "abcd12!?ef", true},
		{"missing lowercase", "ABCD12!?EF", true},
		{"missing punctuation", "Abcd12EFgh", true},
		{"single of each class", "Abcdefg1!", true},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), RegisterRequest{
				Username:        "angler" + string(rune('a'+i)),
				Password:        tc.password,
				ConfirmPassword: tc.password,
				Role:            models.RoleAngler,
			})
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, appErrors.ErrWeakPassword.Code, appErrors.FromError(err).Code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAccountServiceCaptainDeferredGate(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{CredentialGate: config.CredentialGateDeferred})

	account, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "captain_sal",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            models.RoleCaptain,
	})
	require.NoError(t, err)
	assert.False(t, account.Active, "captain without credentials starts inactive")
	assert.Nil(t, account.Credentials)
}

func TestAccountServiceCaptainStrictGate(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{CredentialGate: config.CredentialGateStrict})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "captain_sal",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            models.RoleCaptain,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrMissingCredentials.Code, appErrors.FromError(err).Code)

	account, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "captain_sal",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            models.RoleCaptain,
		MarinerNumber:   "MMC-123456",
		CredentialRef:   "doc-abc",
	})
	require.NoError(t, err)
	assert.True(t, account.Active)
	require.NotNil(t, account.Credentials)
	assert.Equal(t, "MMC-123456", account.Credentials.MarinerNumber)
}

func TestAccountServiceUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})
	account := seedAccount(t, st, "reeldeal", models.RoleAngler, "pw", true)
	_, err := st.UpdateAccount(context.Background(), account.Username, func(a *models.Account) {
		a.Profile = models.Profile{FullName: "Reel Deal", HomePort: "Haulover", BoatName: "Knot Working"}
	})
	require.NoError(t, err)

	boat := "Reel Therapy"
	updated, err := svc.UpdateProfile(context.Background(), "reeldeal", UpdateProfileRequest{
		BoatName: &boat,
	})
	require.NoError(t, err)
	assert.Equal(t, "Reel Therapy", updated.Profile.BoatName)
	assert.Equal(t, "Reel Deal", updated.Profile.FullName)
	assert.Equal(t, "Haulover", updated.Profile.HomePort)
}

func TestAccountServiceUploadCredentialsActivatesCaptain(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})
	seedAccount(t, st, "captain_sal", models.RoleCaptain, "pw", false)

	account, err := svc.UploadCaptainCredentials(context.Background(), "captain_sal", UploadCredentialsRequest{
		MarinerNumber: "MMC-123456",
		DocumentRef:   "doc-abc",
	})
	require.NoError(t, err)
	assert.True(t, account.Active)
	require.NotNil(t, account.Credentials)
	assert.Equal(t, "doc-abc", account.Credentials.DocumentRef)
}

func TestAccountServiceUploadCredentialsAnglerForbidden(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})
	seedAccount(t, st, "reeldeal", models.RoleAngler, "pw", true)

	_, err := svc.UploadCaptainCredentials(context.Background(), "reeldeal", UploadCredentialsRequest{
		MarinerNumber: "MMC-123456",
		DocumentRef:   "doc-abc",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestAccountServiceBootstrapAdmin(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})

	require.NoError(t, svc.BootstrapAdmin(context.Background(), "director", "weigh-master-2026"))

	account, err := st.GetAccount(context.Background(), "director")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.True(t, account.Active)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("weigh-master-2026")))

	// Seeding again on a restart leaves the existing account alone.
	require.NoError(t, svc.BootstrapAdmin(context.Background(), "director", "different-password"))
	account, err = st.GetAccount(context.Background(), "director")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("weigh-master-2026")))
}

func TestAccountServiceBootstrapAdminMissingPassword(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})

	err := svc.BootstrapAdmin(context.Background(), "director", "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAccountServiceBootstrapAdminLogsIn(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})
	auth := newAuthService(st)

	require.NoError(t, svc.BootstrapAdmin(context.Background(), "director", "weigh-master-2026"))

	resp, err := auth.Login(context.Background(), models.LoginRequest{
		Username: "director",
		Password: "weigh-master-2026",
	})
	require.NoError(t, err)

	claims, err := auth.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAccountServiceAuditTrail(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newAccountService(st, AccountConfig{})

	require.NoError(t, svc.BootstrapAdmin(context.Background(), "director", "weigh-master-2026"))
	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "reeldeal",
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            models.RoleAngler,
	})
	require.NoError(t, err)

	trail := svc.AuditTrail(context.Background())
	require.Len(t, trail, 2)
	assert.Equal(t, "director", trail[0].Actor)
	assert.Equal(t, models.AuditActionRegister, trail[1].Action)
	assert.Equal(t, "reeldeal", trail[1].Actor)
}
