package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Sales registra as consultas em /v1 e repete as mesmas rotas em /api, prefixo
// chamado pelo frontend do dashboard.
func Sales(service reporting.Reporter) []router.Route {
	handlers := []struct {
		path    string
		handler http.Handler
	}{
		{"/dashboard", GetDashboard(service)},
		{"/summary", GetSummary(service)},
		{"/territory", GetTerritory(service)},
		{"/trend", GetTrend(service)},
		{"/sales", GetSales(service)},
		{"/download", DownloadSales(service)},
		{"/weeks", GetAvailableWeeks(service)},
		{"/filters", GetAvailableFilters(service)},
	}

	routes := make([]router.Route, 0, 2*len(handlers))
	for _, prefix := range []string{"/v1", "/api"} {
		for _, h := range handlers {
			routes = append(routes, router.Route{
				Path:    prefix + h.path,
				Method:  http.MethodGet,
				Handler: h.handler,
			})
		}
	}

	return routes
}

func Generator(service DataRegenerator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/generator/run",
			Method:  http.MethodPost,
			Handler: RunDataRegeneration(service),
		},
		{
			Path:    "/v1/generator/status",
			Method:  http.MethodGet,
			Handler: GetDataRegenerationStatus(service),
		},
	}
}
