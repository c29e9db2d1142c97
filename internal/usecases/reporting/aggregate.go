// Package reporting agrega a tabela de vendas nos indicadores do dashboard
package reporting

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FilterRecords mantém os registros que satisfazem todos os critérios informados
func FilterRecords(records []domain.SalesRecord, criteria domain.FilterCriteria) []domain.SalesRecord {
	markets := toSet(criteria.Markets)
	accounts := toSet(criteria.Accounts)

	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if criteria.ISOWeek != nil {
			week, ok := ISOWeek(record.Date)
			if !ok || week != *criteria.ISOWeek {
				continue
			}
		}

		if markets != nil && !markets[record.Market] {
			continue
		}

		if accounts != nil && !accounts[record.Account] {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}

// Aggregate filtra os registros e calcula KPIs, ranking de territórios e tendência diária.
// Não altera os registros recebidos.
func Aggregate(records []domain.SalesRecord, criteria domain.FilterCriteria) domain.AggregationResult {
	filtered := FilterRecords(records, criteria)

	result := domain.AggregationResult{
		Territory: territoryBreakdown(filtered),
		Trend:     dailyTrend(filtered),
	}

	for _, record := range filtered {
		result.TotalSales += record.SalesVolume
		result.TotalGoal += record.Goal

		// Apenas déficits positivos acumulam; quem supera a meta contribui com zero
		if shortfall := record.Goal - record.SalesVolume; shortfall > 0 {
			result.GapToGoal += shortfall
		}
	}

	result.Attainment = ratio(result.TotalSales, result.TotalGoal)

	return result
}

// territoryBreakdown agrupa por mercado, ordenando por atingimento decrescente.
// Empates mantêm a ordem em que o mercado apareceu.
func territoryBreakdown(records []domain.SalesRecord) []domain.TerritoryAttainment {
	index := make(map[string]int)
	territory := make([]domain.TerritoryAttainment, 0)

	for _, record := range records {
		i, ok := index[record.Market]
		if !ok {
			i = len(territory)
			index[record.Market] = i
			territory = append(territory, domain.TerritoryAttainment{Market: record.Market})
		}

		territory[i].Sales += record.SalesVolume
		territory[i].Goal += record.Goal
	}

	for i := range territory {
		territory[i].Attainment = ratio(territory[i].Sales, territory[i].Goal)
	}

	sort.SliceStable(territory, func(i, j int) bool {
		return territory[i].Attainment > territory[j].Attainment
	})

	return territory
}

// dailyTrend soma as vendas por data, em ordem crescente de data
func dailyTrend(records []domain.SalesRecord) []domain.TrendPoint {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.Date] += record.SalesVolume
	}

	trend := make([]domain.TrendPoint, 0, len(totals))
	for date, sales := range totals {
		trend = append(trend, domain.TrendPoint{Date: date, SalesVolume: sales})
	}

	// Datas ISO com zero à esquerda ordenam corretamente como texto
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})

	return trend
}

// AvailableFiltersFrom lista semanas, mercados e contas distintos da tabela completa
func AvailableFiltersFrom(records []domain.SalesRecord) *domain.AvailableFilters {
	weeks := make(map[int]bool)
	markets := make(map[string]bool)
	accounts := make(map[string]bool)

	for _, record := range records {
		if week, ok := ISOWeek(record.Date); ok {
			weeks[week] = true
		}
		if record.Market != "" {
			markets[record.Market] = true
		}
		if record.Account != "" {
			accounts[record.Account] = true
		}
	}

	filters := &domain.AvailableFilters{
		Weeks:    make([]int, 0, len(weeks)),
		Markets:  sortedKeys(markets),
		Accounts: sortedKeys(accounts),
	}
	for week := range weeks {
		filters.Weeks = append(filters.Weeks, week)
	}
	sort.Ints(filters.Weeks)

	return filters
}

func ratio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// toSet retorna nil para listas vazias, o que significa "sem restrição"
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
