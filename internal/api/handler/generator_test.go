package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type fakeRegenerator struct {
	triggerErr error
	triggered  int
}

func (f *fakeRegenerator) TriggerManualSync() error {
	f.triggered++
	return f.triggerErr
}

func (f *fakeRegenerator) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled": false,
		"running":      false,
	}
}

func TestRunDataRegeneration(t *testing.T) {
	tests := []struct {
		name           string
		triggerErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Disparo aceito",
			expectedStatus: http.StatusAccepted,
			expectedBody:   "Regeneração iniciada com sucesso",
		},
		{
			name:           "Regeneração em andamento",
			triggerErr:     scheduler.ErrRegenerationRunning,
			expectedStatus: http.StatusConflict,
			expectedBody:   apiErrors.ErrConflict,
		},
		{
			name:           "Erro inesperado",
			triggerErr:     errors.New("falha"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegenerator{triggerErr: tt.triggerErr}
			rt := router.New(router.WithRoutes(Generator(fake)...))

			rec := serve(t, rt, http.MethodPost, "/v1/generator/run")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.Equal(t, 1, fake.triggered)
		})
	}
}

func TestGetDataRegenerationStatus(t *testing.T) {
	rt := router.New(router.WithRoutes(Generator(&fakeRegenerator{})...))

	rec := serve(t, rt, http.MethodGet, "/v1/generator/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sync_enabled":false,"running":false}`, rec.Body.String())

	rec = serve(t, rt, http.MethodGet, "/v1/generator/run")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGeneratorWithoutService(t *testing.T) {
	rt := router.New(router.WithRoutes(Generator(nil)...))

	rec := serve(t, rt, http.MethodGet, "/v1/generator/status")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrServiceUnavailable)
}
