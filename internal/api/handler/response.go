package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DataResponse envelopa listas no formato {"data": [...]}
type DataResponse[T any] struct {
	Data  []T  `json:"data"`
	Count *int `json:"count,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	writeJSONWithStatus(w, r, http.StatusOK, payload)
}

func writeJSONWithStatus(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		http.Error(w, "Erro ao codificar resposta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar resposta")
	}
}
