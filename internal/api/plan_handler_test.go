package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitforge/plan-generator/internal/catalog"
	"fitforge/plan-generator/internal/config"
	"fitforge/plan-generator/internal/domain"
	"fitforge/plan-generator/internal/generator"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, authCfg config.AuthConfig) *gin.Engine {
	t.Helper()
	cat, err := catalog.NewBuiltinSource().Load(context.Background())
	require.NoError(t, err)

	gen := generator.New(cat,
		generator.WithClock(func() time.Time { return time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) }),
		generator.WithIDSource(func() string { return "plan-test" }),
	)

	router := gin.New()
	SetupRoutes(router, authCfg, NewPlanHandler(gen))
	return router
}

func postPlan(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validRequestBody = `{
	"age": 30,
	"goal": "muscle_gain",
	"experience": "intermediate",
	"sessionsPerWeek": 4,
	"sessionMinutes": 60,
	"equipment": ["dumbbell", "bench", "pull_up_bar"]
}`

func TestGeneratePlan_Success(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{Mode: "none"})

	w := postPlan(router, validRequestBody, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var plan domain.WeeklyPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "plan-test", plan.ID)
	assert.Len(t, plan.Days, 4)
	assert.Len(t, plan.RestDays, 3)
	assert.NotEmpty(t, plan.Title)
	for _, day := range plan.Days {
		assert.NotEmpty(t, day.Main)
	}

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestGeneratePlan_MalformedBody(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{Mode: "none"})

	w := postPlan(router, `{"goal": `, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePlan_MissingRequiredFields(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{Mode: "none"})

	w := postPlan(router, `{"goal": "strength"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePlan_InvalidProfileValues(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{Mode: "none"})

	body := `{
		"goal": "get shredded",
		"experience": "intermediate",
		"sessionsPerWeek": 3,
		"sessionMinutes": 45
	}`
	w := postPlan(router, body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "unknown goal")
}

func TestGeneratePlan_RequestIDEchoed(t *testing.T) {
	router := newTestRouter(t, config.AuthConfig{Mode: "none"})

	w := postPlan(router, validRequestBody, map[string]string{RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestGeneratePlan_APIKeyAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret-key"), bcrypt.MinCost)
	require.NoError(t, err)
	router := newTestRouter(t, config.AuthConfig{Mode: "api_key", APIKeyHash: string(hash)})

	t.Run("missing key", func(t *testing.T) {
		w := postPlan(router, validRequestBody, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		w := postPlan(router, validRequestBody, map[string]string{APIKeyHeader: "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		w := postPlan(router, validRequestBody, map[string]string{APIKeyHeader: "super-secret-key"})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func TestGeneratePlan_JWTAuth(t *testing.T) {
	const secret = "test-jwt-secret"
	router := newTestRouter(t, config.AuthConfig{Mode: "jwt", JWTSecret: secret})

	signToken := func(t *testing.T, claims jwtClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	t.Run("missing header", func(t *testing.T) {
		w := postPlan(router, validRequestBody, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := postPlan(router, validRequestBody, map[string]string{"Authorization": "Token abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwtClaims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		w := postPlan(router, validRequestBody, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwtClaims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		w := postPlan(router, validRequestBody, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
