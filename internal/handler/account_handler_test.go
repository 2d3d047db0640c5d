package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/middleware"
	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
)

func newAccountHandler(t *testing.T) (*store.MemoryStore, *AccountHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	svc := service.NewAccountService(st, validator.New(), zap.NewNop(), service.AccountConfig{})
	return st, NewAccountHandler(svc)
}

func registerPayload(username string, role models.Role) []byte {
	payload, _ := json.Marshal(service.RegisterRequest{
		Username:        username,
		Password:        "hook-line-sinker",
		ConfirmPassword: "hook-line-sinker",
		Role:            role,
		Profile:         models.Profile{FullName: "Reel Deal"},
	})
	return payload
}

func TestAccountHandlerRegister(t *testing.T) {
	_, handler := newAccountHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(registerPayload("reeldeal", models.RoleAngler)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Register(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"reeldeal"`)
	// The password hash never leaves the service layer.
	assert.NotContains(t, w.Body.String(), "hook-line-sinker")
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAccountHandlerRegisterDuplicate(t *testing.T) {
	_, handler := newAccountHandler(t)

	for i, wantCode := range []int{http.StatusCreated, http.StatusConflict} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(registerPayload("reeldeal", models.RoleAngler)))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Register(c)
		require.Equal(t, wantCode, w.Code, "attempt %d", i)
	}
}

func TestAccountHandlerRegisterMalformedBody(t *testing.T) {
	_, handler := newAccountHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(`{"username":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Register(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountHandlerMe(t *testing.T) {
	st, handler := newAccountHandler(t)
	require.NoError(t, st.CreateAccount(context.Background(), &models.Account{
		ID: "id-1", Username: "reeldeal", Role: models.RoleAngler, Active: true,
	}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/accounts/me", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Username: "reeldeal", Role: models.RoleAngler})

	handler.Me(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"reeldeal"`)
}

func TestAccountHandlerMeUnauthenticated(t *testing.T) {
	_, handler := newAccountHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/accounts/me", nil)
	c.Request = req

	handler.Me(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
