package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
)

func newLeaderboardFixture(t *testing.T, exportsEnabled bool) (*store.MemoryStore, *LeaderboardHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	svc := service.NewLeaderboardService(st, zap.NewNop(), 20, 2026, nil)
	return st, NewLeaderboardHandler(svc, exportsEnabled)
}

func seedApprovedCatch(t *testing.T, st *store.MemoryStore, id string, division models.Division, weight float64) {
	t.Helper()
	require.NoError(t, st.CreateCatch(context.Background(), &models.CatchEntry{
		ID:                id,
		Division:          division,
		AnglerName:        "angler-" + id,
		CertifyingCaptain: "captain_sal",
		BagFish:           []models.BagFish{{Species: "Wahoo", WeightLbs: weight}},
		TotalWeight:       weight,
		WeighInLocation:   "Haulover Marina",
		Status:            models.CatchApproved,
		SubmittedAt:       time.Now().UTC(),
	}))
}

func TestLeaderboardHandlerGet(t *testing.T) {
	st, handler := newLeaderboardFixture(t, false)
	seedApprovedCatch(t, st, "c1", models.DivisionPelagic, 42.0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/leaderboard/Pelagic", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "division", Value: "Pelagic"}}

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "angler-c1")
	assert.Contains(t, w.Body.String(), `"rank":1`)
}

func TestLeaderboardHandlerGetUnknownDivision(t *testing.T) {
	_, handler := newLeaderboardFixture(t, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/leaderboard/Freshwater", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "division", Value: "Freshwater"}}

	handler.Get(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_DIVISION")
}

func TestLeaderboardHandlerExportCSV(t *testing.T) {
	st, handler := newLeaderboardFixture(t, true)
	seedApprovedCatch(t, st, "c1", models.DivisionReef, 18.25)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/leaderboard/Reef/export?format=csv", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "division", Value: "Reef"}}

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "standings-Reef.csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "Rank,Angler"))
}

func TestLeaderboardHandlerExportPDF(t *testing.T) {
	st, handler := newLeaderboardFixture(t, true)
	seedApprovedCatch(t, st, "c1", models.DivisionReef, 18.25)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/leaderboard/Reef/export?format=pdf", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "division", Value: "Reef"}}

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestLeaderboardHandlerExportDisabled(t *testing.T) {
	_, handler := newLeaderboardFixture(t, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/leaderboard/Reef/export", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "division", Value: "Reef"}}

	handler.Export(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboardHandlerExportBadFormat(t *testing.T) {
	_, handler := newLeaderboardFixture(t, true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/leaderboard/Reef/export?format=xlsx", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "division", Value: "Reef"}}

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
