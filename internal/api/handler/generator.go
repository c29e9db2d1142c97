package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// DataRegenerator é implementado por scheduler.DataRegenerationService
type DataRegenerator interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// RunDataRegeneration dispara a regeneração da tabela de vendas em background
func RunDataRegeneration(service DataRegenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de regeneração não disponível", nil)
			return
		}

		if err := service.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrRegenerationRunning) {
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Regeneração já em andamento", nil)
				return
			}
			logger.WithError(err).Error("generator: erro ao disparar regeneração")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar regeneração", nil)
			return
		}

		logger.Info("generator: regeneração disparada")

		writeJSONWithStatus(w, r, http.StatusAccepted, map[string]any{
			"message": "Regeneração iniciada com sucesso",
		})
	}
}

// GetDataRegenerationStatus retorna o status do agendador de regeneração
func GetDataRegenerationStatus(service DataRegenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de regeneração não disponível", nil)
			return
		}

		writeJSON(w, r, service.GetStatus())
	}
}
