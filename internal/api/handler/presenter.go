package handler

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// A camada de aplicação trabalha com razões; aqui o atingimento vira percentual.

func toSummaryResponse(result *domain.AggregationResult) domain.SummaryResponse {
	return domain.SummaryResponse{
		TotalSales: result.TotalSales,
		TotalGoal:  result.TotalGoal,
		GapToGoal:  result.GapToGoal,
		Attainment: utils.RatioToPercent(result.Attainment),
	}
}

func toTerritoryItems(territory []domain.TerritoryAttainment) []domain.TerritoryItem {
	items := make([]domain.TerritoryItem, 0, len(territory))
	for _, t := range territory {
		items = append(items, domain.TerritoryItem{
			Market:     t.Market,
			Sales:      t.Sales,
			Goal:       t.Goal,
			Attainment: utils.RatioToPercent(t.Attainment),
		})
	}
	return items
}

func toTrendItems(trend []domain.TrendPoint) []domain.TrendItem {
	items := make([]domain.TrendItem, 0, len(trend))
	for _, point := range trend {
		items = append(items, domain.TrendItem{
			Date:  point.Date,
			Sales: point.SalesVolume,
		})
	}
	return items
}

func toDashboardResponse(result *domain.AggregationResult) domain.DashboardResponse {
	return domain.DashboardResponse{
		SummaryResponse: toSummaryResponse(result),
		Territory:       toTerritoryItems(result.Territory),
		Trend:           toTrendItems(result.Trend),
	}
}
