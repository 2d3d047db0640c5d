package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/elpescadoreric/angler-tournament-app/api/swagger"
	"github.com/elpescadoreric/angler-tournament-app/internal/handler"
	internalmiddleware "github.com/elpescadoreric/angler-tournament-app/internal/middleware"
	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
	"github.com/elpescadoreric/angler-tournament-app/pkg/config"
	"github.com/elpescadoreric/angler-tournament-app/pkg/logger"
	corsmiddleware "github.com/elpescadoreric/angler-tournament-app/pkg/middleware/cors"
	reqidmiddleware "github.com/elpescadoreric/angler-tournament-app/pkg/middleware/requestid"
	"github.com/elpescadoreric/angler-tournament-app/pkg/storage"
)

// @title Everyday Angler Charter Tournament API
// @version 1.0.0
// @description Registration, daily check-in, catch certification and standings for the charter tournament
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	evidenceStore, err := storage.NewEvidenceStore(cfg.Evidence.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to open evidence store", "error", err)
	}
	linkSigner := storage.NewLinkSigner(cfg.Evidence.SignedURLSecret, cfg.Evidence.SignedURLTTL)

	validate := validator.New()
	memStore := store.NewMemoryStore()
	metricsSvc := service.NewMetricsService()

	authSvc := service.NewAuthService(memStore, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		ConfirmTokenExpiry: cfg.JWT.ConfirmTokenExpiry,
		Issuer:             models.TournamentName,
	})
	accountSvc := service.NewAccountService(memStore, validate, logr, service.AccountConfig{
		EnforcePasswordPolicy: cfg.Tournament.EnforcePasswordPolicy,
		CredentialGate:        cfg.Tournament.CredentialGate,
	})
	if cfg.Admin.Username != "" {
		if err := accountSvc.BootstrapAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
			logr.Sugar().Fatalw("failed to seed admin account", "error", err)
		}
	}
	checkInSvc := service.NewCheckInService(memStore, logr)
	catchSvc := service.NewCatchService(memStore, authSvc, checkInSvc, evidenceStore, validate, logr, service.CatchConfig{
		RequireCheckIn:  cfg.Tournament.RequireCheckIn,
		RequireApproval: cfg.Tournament.RequireApproval,
		MinVideoBytes:   cfg.Evidence.MinVideoBytes,
	}, metricsSvc)
	leaderboardSvc := service.NewLeaderboardService(memStore, logr, cfg.Tournament.LeaderboardSize, cfg.Tournament.Year, metricsSvc)
	feedSvc := service.NewFeedService(memStore, validate, logr)
	tournamentSvc := service.NewTournamentService(memStore, logr, cfg.Tournament.Year)

	authHandler := handler.NewAuthHandler(authSvc)
	accountHandler := handler.NewAccountHandler(accountSvc)
	checkInHandler := handler.NewCheckInHandler(checkInSvc)
	catchHandler := handler.NewCatchHandler(catchSvc)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardSvc, cfg.Exports.Enabled)
	feedHandler := handler.NewFeedHandler(feedSvc)
	tournamentHandler := handler.NewTournamentHandler(tournamentSvc)
	mediaHandler := handler.NewMediaHandler(evidenceStore, linkSigner, cfg.Evidence.MaxUploadBytes)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	// Open endpoints: dock monitors and spectators browse without a wristband.
	api.POST("/accounts", accountHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.GET("/tournament", tournamentHandler.Info)
	api.GET("/leaderboard/:division", leaderboardHandler.Get)
	api.GET("/leaderboard/:division/export", leaderboardHandler.Export)
	api.GET("/feed", feedHandler.List)
	api.GET("/media/download", mediaHandler.Download)

	authed := api.Group("")
	authed.Use(internalmiddleware.JWT(authSvc))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.POST("/auth/confirm", authHandler.Confirm)

		authed.GET("/accounts/me", accountHandler.Me)
		authed.PATCH("/accounts/me/profile", accountHandler.UpdateProfile)
		authed.PUT("/accounts/me/credentials", accountHandler.UploadCredentials)

		authed.GET("/checkins/today", checkInHandler.ListToday)
		authed.POST("/checkins/today", internalmiddleware.RequireRoles(models.RoleAngler), checkInHandler.RegisterForToday)

		authed.POST("/catches", internalmiddleware.RequireRoles(models.RoleCaptain), catchHandler.Submit)
		authed.GET("/catches/pending", internalmiddleware.RequireRoles(models.RoleCaptain, models.RoleAdmin), catchHandler.ListPending)
		authed.GET("/catches/:id", catchHandler.Get)
		authed.POST("/catches/:id/approve", internalmiddleware.RequireRoles(models.RoleCaptain, models.RoleAdmin), catchHandler.Approve)
		authed.POST("/catches/:id/reject", internalmiddleware.RequireRoles(models.RoleCaptain, models.RoleAdmin), catchHandler.Reject)

		authed.POST("/feed", feedHandler.Create)

		authed.POST("/media", mediaHandler.Upload)
		authed.POST("/media/:ref/link", mediaHandler.CreateLink)

		authed.GET("/audit", internalmiddleware.RequireRoles(models.RoleAdmin), accountHandler.AuditTrail)
		authed.PUT("/tournament/wristband", internalmiddleware.RequireRoles(models.RoleAdmin), tournamentHandler.SetWristband)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
