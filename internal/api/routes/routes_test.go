package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskgauge/backend/internal/api/handlers"
	"github.com/riskgauge/backend/internal/config"
)

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	db := handlers.OpenTestDB(t)

	require.NoError(t, Register(router, db, config.Config{}))
	assert.True(t, db.Migrator().HasTable("risks"))

	want := map[string]bool{
		"GET /":              false,
		"POST /assess-risk":  false,
		"GET /risks":         false,
		"GET /api/v1/health": false,
		"GET /metrics":       false,
	}
	for _, r := range router.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, "%s should be registered", route)
	}
}

func TestRegister_MetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	require.NoError(t, Register(router, handlers.OpenTestDB(t), config.Config{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
