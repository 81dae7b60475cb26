package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/pkg/metrics"
)

var (
	testSecret = []byte("test-secret")
	testIssuer = "smc-auth"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Info(format string, v ...interface{})  { l.add("INFO", format, v...) }
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.add("WARN", format, v...) }
func (l *recordingLogger) Error(format string, v ...interface{}) { l.add("ERROR", format, v...) }

func principalEcho(t *testing.T, got *domain.Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		require.True(t, ok)
		*got = p
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := IssueToken(testSecret, testIssuer, 7, []string{"ADMIN", "ARCHIVE"}, time.Hour, time.Now())
	require.NoError(t, err)

	var got domain.Principal
	h := Auth(testSecret, testIssuer, &recordingLogger{})(principalEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hearing-requests", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), got.UserID)
	assert.True(t, got.IsAdmin())
	assert.True(t, got.Roles.Has(domain.UserRoleArchive))
}

func TestAuth_Rejects(t *testing.T) {
	now := time.Now()

	valid := func() string {
		s, err := IssueToken(testSecret, testIssuer, 7, nil, time.Hour, now)
		require.NoError(t, err)
		return s
	}
	expired, err := IssueToken(testSecret, testIssuer, 7, nil, time.Hour, now.Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, err := IssueToken([]byte("other"), testIssuer, 7, nil, time.Hour, now)
	require.NoError(t, err)
	wrongIssuer, err := IssueToken(testSecret, "someone-else", 7, nil, time.Hour, now)
	require.NoError(t, err)
	noUser, err := IssueToken(testSecret, testIssuer, 0, []string{"ADMIN"}, time.Hour, now)
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
		{name: "garbage", header: "Bearer not-a-token"},
		{name: "expired", header: "Bearer " + expired},
		{name: "foreign secret", header: "Bearer " + foreign},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer},
		{name: "no user id", header: "Bearer " + noUser},
		{name: "alg none", header: "Bearer " + unsigned},
	}

	called := false
	h := Auth(testSecret, testIssuer, &recordingLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"No autorizado"}`, rec.Body.String())
		})
	}
	assert.False(t, called)

	// контроль: тот же обработчик пропускает валидный токен
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+valid())
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, called)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry("middleware-test", prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/rooms/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms/"+id+"/status", nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/rooms/{id}/status", "404")))
}

func TestLoggingAndRecover(t *testing.T) {
	logger := &recordingLogger{}
	h := RequestID(Logging(logger)(Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/documents", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, logger.lines, 2)
	assert.Contains(t, logger.lines[0], "ERROR POST /api/v1/documents - panic: boom")
	assert.Contains(t, logger.lines[1], "ERROR POST /api/v1/documents - status=500")
}

func TestLogging_LevelByStatus(t *testing.T) {
	logger := &recordingLogger{}
	status := http.StatusOK
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	for _, status = range []int{http.StatusOK, http.StatusConflict, http.StatusBadGateway} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	require.Len(t, logger.lines, 3)
	assert.Contains(t, logger.lines[0], "INFO GET /health - status=200")
	assert.Contains(t, logger.lines[1], "WARN GET /health - status=409")
	assert.Contains(t, logger.lines[2], "ERROR GET /health - status=502")
}
