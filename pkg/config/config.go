package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Credential gate policies for captain accounts.
const (
	CredentialGateDeferred = "deferred"
	CredentialGateStrict   = "strict"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	JWT        JWTConfig
	CORS       CORSConfig
	Log        LogConfig
	Tournament TournamentConfig
	Evidence   EvidenceConfig
	Exports    ExportsConfig
	Admin      AdminConfig
}

type JWTConfig struct {
	Secret             string
	Expiration         time.Duration
	RefreshExpiration  time.Duration
	ConfirmTokenExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// TournamentConfig carries season-wide policy knobs.
type TournamentConfig struct {
	Year                  int
	RequireCheckIn        bool
	RequireApproval       bool
	EnforcePasswordPolicy bool
	CredentialGate        string
	LeaderboardSize       int
}

// EvidenceConfig controls catch evidence storage and the minimum-size check.
type EvidenceConfig struct {
	StorageDir      string
	MinVideoBytes   int64
	SignedURLSecret string
	SignedURLTTL    time.Duration
	MaxUploadBytes  int64
}

// ExportsConfig toggles leaderboard export formats.
type ExportsConfig struct {
	Enabled bool
}

// AdminConfig seeds the tournament director account at startup. Registration
// never produces an ADMIN, so the only way to get one is through these
// settings. Both fields empty means no admin is seeded.
type AdminConfig struct {
	Username string
	Password string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.JWT = JWTConfig{
		Secret:             v.GetString("JWT_SECRET"),
		Expiration:         parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		RefreshExpiration:  parseDuration(v.GetString("REFRESH_TOKEN_EXPIRATION"), 7*24*time.Hour),
		ConfirmTokenExpiry: parseDuration(v.GetString("CONFIRM_TOKEN_EXPIRATION"), 2*time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	gate := strings.ToLower(v.GetString("CREDENTIAL_GATE"))
	if gate != CredentialGateStrict {
		gate = CredentialGateDeferred
	}

	cfg.Tournament = TournamentConfig{
		Year:                  v.GetInt("TOURNAMENT_YEAR"),
		RequireCheckIn:        v.GetBool("REQUIRE_CHECKIN"),
		RequireApproval:       v.GetBool("REQUIRE_APPROVAL"),
		EnforcePasswordPolicy: v.GetBool("ENFORCE_PASSWORD_POLICY"),
		CredentialGate:        gate,
		LeaderboardSize:       v.GetInt("LEADERBOARD_SIZE"),
	}
	if cfg.Tournament.LeaderboardSize <= 0 {
		cfg.Tournament.LeaderboardSize = 20
	}

	minVideo := v.GetInt64("EVIDENCE_MIN_VIDEO_BYTES")
	if minVideo <= 0 {
		minVideo = 500 * 1024
	}
	maxUpload := v.GetInt64("EVIDENCE_MAX_UPLOAD_BYTES")
	if maxUpload <= 0 {
		maxUpload = 200 * 1024 * 1024
	}
	cfg.Evidence = EvidenceConfig{
		StorageDir:      v.GetString("EVIDENCE_STORAGE_DIR"),
		MinVideoBytes:   minVideo,
		SignedURLSecret: v.GetString("EVIDENCE_SIGNED_URL_SECRET"),
		SignedURLTTL:    parseDuration(v.GetString("EVIDENCE_SIGNED_URL_TTL"), 30*time.Minute),
		MaxUploadBytes:  maxUpload,
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	cfg.Admin = AdminConfig{
		Username: v.GetString("ADMIN_USERNAME"),
		Password: v.GetString("ADMIN_PASSWORD"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("REFRESH_TOKEN_EXPIRATION", "168h")
	v.SetDefault("CONFIRM_TOKEN_EXPIRATION", "2m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("TOURNAMENT_YEAR", 2026)
	v.SetDefault("REQUIRE_CHECKIN", true)
	v.SetDefault("REQUIRE_APPROVAL", true)
	v.SetDefault("ENFORCE_PASSWORD_POLICY", true)
	v.SetDefault("CREDENTIAL_GATE", CredentialGateDeferred)
	v.SetDefault("LEADERBOARD_SIZE", 20)

	v.SetDefault("EVIDENCE_STORAGE_DIR", "./evidence")
	v.SetDefault("EVIDENCE_MIN_VIDEO_BYTES", 500*1024)
	v.SetDefault("EVIDENCE_SIGNED_URL_SECRET", "dev_evidence_secret")
	v.SetDefault("EVIDENCE_SIGNED_URL_TTL", "30m")
	v.SetDefault("EVIDENCE_MAX_UPLOAD_BYTES", 200*1024*1024)

	v.SetDefault("ENABLE_EXPORTS", true)

	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
