package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{
			name:           "Origem liberada",
			allowed:        []string{"http://localhost:3000"},
			origin:         "http://localhost:3000",
			method:         http.MethodGet,
			expectedOrigin: "http://localhost:3000",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "Origem não liberada",
			allowed:        []string{"http://localhost:3000"},
			origin:         "http://evil.example",
			method:         http.MethodGet,
			expectedOrigin: "",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "Curinga libera qualquer origem",
			allowed:        []string{"*"},
			origin:         "http://dashboard.example",
			method:         http.MethodGet,
			expectedOrigin: "http://dashboard.example",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "Preflight responde sem chamar o handler",
			allowed:        nil,
			origin:         "http://localhost:5173",
			method:         http.MethodOptions,
			expectedOrigin: "http://localhost:5173",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/summary", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	alice.New(LogPanicMiddleware(), LoggingMiddleware()).Then(panicking).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/trend", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddlewareKeepsStatus(t *testing.T) {
	log.SetupTestLogger()

	rec := httptest.NewRecorder()
	LoggingMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 ms", formatDuration(1500000))
	assert.Equal(t, "1.50 s", formatDuration(1500000000))
}
