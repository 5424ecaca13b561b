package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sqv_cleaning/internal/config"
	"sqv_cleaning/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                   "8080",
		AllowedOrigins:         []string{"http://localhost:8000"},
		HandoffStore:           config.HandoffStoreMemory,
		HandoffTTL:             time.Hour,
		SessionCookie:          "sqv_session",
		BusinessTimezone:       "UTC",
		SlotOpenHour:           9,
		SlotCloseHour:          17,
		SlotInterval:           time.Hour,
		SlotLeadTime:           2 * time.Hour,
		EstimateBreakdownOrder: "base_first",
		ScheduleBreakdownOrder: "base_last",
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(context.Background(), testConfig(), logging.Discard(), prometheus.NewRegistry())
	require.NoError(t, err)
	return router
}

func serve(router http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	w := serve(newTestRouter(t), http.MethodGet, "/v1/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_EstimateToScheduleHandoff(t *testing.T) {
	router := newTestRouter(t)
	selection := `{"selection":{"service_id":"standard","option_ids":["ecoFriendly"],"rooms":"3","bathrooms":"2"}}`

	w := serve(router, http.MethodPost, "/v1/estimate/compute", selection, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page struct {
		Estimate struct {
			TotalDisplay string   `json:"total_display"`
			Breakdown    []string `json:"breakdown"`
		} `json:"estimate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "$250.00", page.Estimate.TotalDisplay)
	assert.Equal(t, "Standard Cleaning (Base): $100.00", page.Estimate.Breakdown[0])

	w = serve(router, http.MethodPost, "/v1/handoff", selection, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	w = serve(router, http.MethodGet, "/v1/schedule", "", cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var state struct {
		ChooseService bool `json:"choose_service"`
		Selection     struct {
			ServiceID string   `json:"service_id"`
			OptionIDs []string `json:"option_ids"`
			Rooms     string   `json:"rooms"`
		} `json:"selection"`
		Estimate struct {
			Total     float64  `json:"total"`
			Breakdown []string `json:"breakdown"`
		} `json:"estimate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.ChooseService)
	assert.Equal(t, "standard", state.Selection.ServiceID)
	assert.Equal(t, []string{"ecoFriendly"}, state.Selection.OptionIDs)
	assert.Equal(t, "3", state.Selection.Rooms)
	assert.Equal(t, 250.0, state.Estimate.Total)
	assert.Equal(t, []string{
		"Standard Cleaning (Rooms: 3): $90.00",
		"Standard Cleaning (Bathrooms: 2): $40.00",
		"Standard Cleaning (Base): $100.00",
		"Eco-Friendly Products: $20.00",
	}, state.Estimate.Breakdown)

	// A different session starts cold.
	w = serve(router, http.MethodGet, "/v1/schedule", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.ChooseService)
}

func TestRouter_SubmitBlockedWithoutDate(t *testing.T) {
	w := serve(newTestRouter(t), http.MethodPost, "/v1/schedule/submit", `{"selection":{"service_id":"deep"}}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "DATE_TIME_REQUIRED")
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)
	serve(router, http.MethodPost, "/v1/estimate/compute", `{"selection":{"service_id":"standard"}}`, nil)

	w := serve(router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `sqv_estimate_computed_total{page="estimate"} 1`), w.Body.String())
}

func TestNewServer_CORS(t *testing.T) {
	srv := NewServer(testConfig(), newTestRouter(t))
	assert.Equal(t, ":8080", srv.Addr)

	req := httptest.NewRequest(http.MethodOptions, "/v1/catalog", nil)
	req.Header.Set("Origin", "http://localhost:8000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:8000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestBuildHandoffStore_Unknown(t *testing.T) {
	cfg := testConfig()
	cfg.HandoffStore = "s3"
	_, err := buildHandoffStore(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)
}
