package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
)

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/wristband", func(c *gin.Context) {
		role := models.Role(c.GetHeader("X-Test-Role"))
		if role != "" {
			c.Set(ContextUserKey, &models.JWTClaims{Username: "tester", Role: role})
		}
	}, RequireRoles(models.RoleAdmin), okHandler)

	cases := []struct {
		name string
		role string
		want int
	}{
		{"admin allowed", string(models.RoleAdmin), http.StatusOK},
		{"captain forbidden", string(models.RoleCaptain), http.StatusForbidden},
		{"angler forbidden", string(models.RoleAngler), http.StatusForbidden},
		{"anonymous unauthorized", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/wristband", nil)
			if tc.role != "" {
				req.Header.Set("X-Test-Role", tc.role)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, tc.want, w.Code)
		})
	}
}

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	authSvc := service.NewAuthService(st, validator.New(), zap.NewNop(), service.AuthConfig{
		AccessTokenSecret:  "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "tournament-test",
	})

	router := gin.New()
	router.GET("/protected", JWT(authSvc), func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.JWTClaims)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})

	t.Run("missing header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
