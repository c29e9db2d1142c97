package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// criteriaFromRequest lê os filtros da query string, respondendo 400 quando inválidos
func criteriaFromRequest(w http.ResponseWriter, r *http.Request) (domain.FilterCriteria, bool) {
	criteria, err := parseFilterCriteria(r.URL.Query())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return criteria, false
	}
	return criteria, true
}

func criteriaFields(criteria domain.FilterCriteria) log.Fields {
	fields := log.Fields{
		"markets":  strings.Join(criteria.Markets, ","),
		"accounts": strings.Join(criteria.Accounts, ","),
	}
	if criteria.ISOWeek != nil {
		fields["week"] = *criteria.ISOWeek
	}
	return fields
}

func writeStorageError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrStorageOperation, message, nil)
}

// GetDashboard retorna KPIs, territórios e tendência para os filtros informados
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria, ok := criteriaFromRequest(w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithFields(criteriaFields(criteria)).Info("dashboard: agregando vendas")

		result, err := service.GetDashboard(criteria)
		if err != nil {
			writeStorageError(w, r, err, "Erro ao agregar vendas")
			return
		}

		writeJSON(w, r, toDashboardResponse(result))
	})
}

// GetSummary retorna os KPIs dos cartões do dashboard
func GetSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria, ok := criteriaFromRequest(w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithFields(criteriaFields(criteria)).Info("summary: calculando KPIs")

		result, err := service.GetSummary(criteria)
		if err != nil {
			writeStorageError(w, r, err, "Erro ao calcular KPIs")
			return
		}

		writeJSON(w, r, toSummaryResponse(result))
	})
}

// GetTerritory retorna o atingimento por mercado para o gráfico de barras
func GetTerritory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria, ok := criteriaFromRequest(w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithFields(criteriaFields(criteria)).Info("territory: agrupando por mercado")

		territory, err := service.GetTerritory(criteria)
		if err != nil {
			writeStorageError(w, r, err, "Erro ao agrupar vendas por mercado")
			return
		}

		writeJSON(w, r, DataResponse[domain.TerritoryItem]{Data: toTerritoryItems(territory)})
	})
}

// GetTrend retorna o total de vendas por dia para o gráfico de linha
func GetTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria, ok := criteriaFromRequest(w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithFields(criteriaFields(criteria)).Info("trend: agrupando por dia")

		trend, err := service.GetTrend(criteria)
		if err != nil {
			writeStorageError(w, r, err, "Erro ao agrupar vendas por dia")
			return
		}

		writeJSON(w, r, DataResponse[domain.TrendItem]{Data: toTrendItems(trend)})
	})
}

// GetSales retorna os registros brutos filtrados
func GetSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria, ok := criteriaFromRequest(w, r)
		if !ok {
			return
		}

		sales, err := service.GetSales(criteria)
		if err != nil {
			writeStorageError(w, r, err, "Erro ao buscar vendas")
			return
		}

		log.ForContext(r.Context()).WithFields(criteriaFields(criteria)).
			WithField("records", len(sales)).Info("sales: registros retornados")

		count := len(sales)
		writeJSON(w, r, DataResponse[domain.SalesRecord]{Data: sales, Count: &count})
	})
}

// DownloadSales exporta os registros filtrados como CSV. O corpo só é enviado
// depois que a exportação termina, para nunca entregar um arquivo parcial.
func DownloadSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria, ok := criteriaFromRequest(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		count, err := service.ExportSales(&buf, criteria)
		if err != nil {
			writeStorageError(w, r, err, "Erro ao exportar vendas")
			return
		}

		fileName := utils.ExportFileName("sales_export", time.Now().Format("20060102"))

		log.ForContext(r.Context()).WithFields(criteriaFields(criteria)).WithFields(log.Fields{
			"records": count,
			"file":    fileName,
		}).Info("download: exportação gerada")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("download: erro ao enviar arquivo")
		}
	})
}

// GetAvailableWeeks retorna as semanas ISO presentes na tabela
func GetAvailableWeeks(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := service.GetAvailableFilters()
		if err != nil {
			writeStorageError(w, r, err, "Erro ao buscar semanas disponíveis")
			return
		}

		writeJSON(w, r, map[string][]int{"weeks": filters.Weeks})
	})
}

// GetAvailableFilters retorna semanas, mercados e contas para popular os filtros
func GetAvailableFilters(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := service.GetAvailableFilters()
		if err != nil {
			writeStorageError(w, r, err, "Erro ao buscar filtros disponíveis")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"weeks":   len(filters.Weeks),
			"markets": len(filters.Markets),
		}).Info("filters: filtros disponíveis recuperados")

		writeJSON(w, r, filters)
	})
}
