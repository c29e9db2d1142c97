package reporting

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/generating"
)

func intPtr(i int) *int {
	return &i
}

func exampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{Date: "2024-01-01", Market: "Austin", Account: "Kroger", Goal: 100, SalesVolume: 80},
		{Date: "2024-01-01", Market: "Dallas", Account: "Tom Thumb", Goal: 50, SalesVolume: 60},
	}
}

func generatedRecords(t *testing.T) []domain.SalesRecord {
	t.Helper()

	gen := generating.New(rand.New(rand.NewSource(2024)), generating.DefaultCatalog())
	records, err := gen.Generate(21, time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return records
}

func TestISOWeek(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int
		ok       bool
	}{
		{name: "Segunda-feira 1 de janeiro de 2024", date: "2024-01-01", expected: 1, ok: true},
		{name: "Domingo 7 de janeiro de 2024", date: "2024-01-07", expected: 1, ok: true},
		{name: "Segunda-feira 8 de janeiro de 2024", date: "2024-01-08", expected: 2, ok: true},
		{name: "Sexta 1 de janeiro de 2021 pertence à semana 53 de 2020", date: "2021-01-01", expected: 53, ok: true},
		{name: "Segunda 29 de dezembro de 2025 pertence à semana 1 de 2026", date: "2025-12-29", expected: 1, ok: true},
		{name: "Data inválida", date: "01/08/2024", expected: 0, ok: false},
		{name: "Data vazia", date: "", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, ok := ISOWeek(tt.date)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, week)
		})
	}
}

func TestAggregate_Example(t *testing.T) {
	result := Aggregate(exampleRecords(), domain.FilterCriteria{})

	assert.Equal(t, 140.0, result.TotalSales)
	assert.Equal(t, 150.0, result.TotalGoal)
	// Só o déficit de Austin conta; o excedente de Dallas não compensa
	assert.Equal(t, 20.0, result.GapToGoal)
	assert.InDelta(t, 0.9333, result.Attainment, 0.0001)

	require.Len(t, result.Territory, 2)
	assert.Equal(t, "Dallas", result.Territory[0].Market)
	assert.InDelta(t, 1.2, result.Territory[0].Attainment, 1e-9)
	assert.Equal(t, "Austin", result.Territory[1].Market)
	assert.InDelta(t, 0.8, result.Territory[1].Attainment, 1e-9)

	assert.Equal(t, []domain.TrendPoint{{Date: "2024-01-01", SalesVolume: 140}}, result.Trend)
}

func TestAggregate_MarketFilter(t *testing.T) {
	result := Aggregate(exampleRecords(), domain.FilterCriteria{Markets: []string{"Dallas"}})

	assert.Equal(t, 60.0, result.TotalSales)
	assert.Equal(t, 50.0, result.TotalGoal)
	assert.Equal(t, 0.0, result.GapToGoal)
	assert.InDelta(t, 1.2, result.Attainment, 1e-9)
	require.Len(t, result.Territory, 1)
	assert.Equal(t, "Dallas", result.Territory[0].Market)
}

func TestAggregate_EmptyResults(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SalesRecord
		criteria domain.FilterCriteria
	}{
		{name: "Tabela vazia", records: nil, criteria: domain.FilterCriteria{}},
		{name: "Filtro sem correspondência", records: exampleRecords(), criteria: domain.FilterCriteria{Markets: []string{"El Paso"}}},
		{name: "Semana sem registros", records: exampleRecords(), criteria: domain.FilterCriteria{ISOWeek: intPtr(30)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.records, tt.criteria)

			assert.Zero(t, result.TotalSales)
			assert.Zero(t, result.TotalGoal)
			assert.Zero(t, result.GapToGoal)
			assert.Zero(t, result.Attainment)
			assert.NotNil(t, result.Territory)
			assert.Empty(t, result.Territory)
			assert.NotNil(t, result.Trend)
			assert.Empty(t, result.Trend)
		})
	}
}

func TestAggregate_ZeroGoalNeverNaN(t *testing.T) {
	records := []domain.SalesRecord{
		{Date: "2024-01-02", Market: "Austin", Goal: 0, SalesVolume: 40},
		{Date: "2024-01-02", Market: "Houston", Goal: 0, SalesVolume: 0},
	}

	result := Aggregate(records, domain.FilterCriteria{})

	assert.Equal(t, 0.0, result.Attainment)
	assert.Equal(t, 40.0, result.TotalSales)
	for _, territory := range result.Territory {
		assert.False(t, math.IsNaN(territory.Attainment))
		assert.False(t, math.IsInf(territory.Attainment, 0))
		assert.Equal(t, 0.0, territory.Attainment)
	}
}

func TestAggregate_TerritoryTiesKeepFirstSeenOrder(t *testing.T) {
	records := []domain.SalesRecord{
		{Date: "2024-01-02", Market: "Houston", Goal: 100, SalesVolume: 90},
		{Date: "2024-01-02", Market: "Austin", Goal: 10, SalesVolume: 9},
		{Date: "2024-01-02", Market: "Dallas", Goal: 10, SalesVolume: 12},
	}

	result := Aggregate(records, domain.FilterCriteria{})

	markets := make([]string, 0, len(result.Territory))
	for _, territory := range result.Territory {
		markets = append(markets, territory.Market)
	}
	assert.Equal(t, []string{"Dallas", "Houston", "Austin"}, markets)
}

func TestAggregate_Properties(t *testing.T) {
	records := generatedRecords(t)

	criteriaList := []domain.FilterCriteria{
		{},
		{ISOWeek: intPtr(2)},
		{Markets: []string{"Austin", "Houston"}},
		{Accounts: []string{"Kroger"}},
		{ISOWeek: intPtr(3), Markets: []string{"Dallas"}, Accounts: []string{"Whole Foods", "Kroger"}},
	}

	for _, criteria := range criteriaList {
		result := Aggregate(records, criteria)

		assert.GreaterOrEqual(t, result.GapToGoal, 0.0)
		assert.False(t, math.IsNaN(result.Attainment))

		// Datas estritamente crescentes e sem repetição
		for i := 1; i < len(result.Trend); i++ {
			assert.Less(t, result.Trend[i-1].Date, result.Trend[i].Date)
		}

		// Territórios em ordem decrescente de atingimento
		for i := 1; i < len(result.Territory); i++ {
			assert.GreaterOrEqual(t, result.Territory[i-1].Attainment, result.Territory[i].Attainment)
		}

		// Reagrupar por mercado e por data reproduz o total de vendas
		territorySales := 0.0
		for _, territory := range result.Territory {
			territorySales += territory.Sales
		}
		trendSales := 0.0
		for _, point := range result.Trend {
			trendSales += point.SalesVolume
		}
		assert.InDelta(t, result.TotalSales, territorySales, 1e-6)
		assert.InDelta(t, result.TotalSales, trendSales, 1e-6)

		// Agregar duas vezes produz o mesmo resultado
		assert.Equal(t, result, Aggregate(records, criteria))
	}
}

func TestFilterRecords_Conjunction(t *testing.T) {
	records := generatedRecords(t)
	week := intPtr(2)

	byWeek := FilterRecords(records, domain.FilterCriteria{ISOWeek: week})
	byMarket := FilterRecords(records, domain.FilterCriteria{Markets: []string{"Austin"}})
	both := FilterRecords(records, domain.FilterCriteria{ISOWeek: week, Markets: []string{"Austin"}})

	require.NotEmpty(t, both)

	intersection := FilterRecords(byWeek, domain.FilterCriteria{Markets: []string{"Austin"}})
	assert.Equal(t, intersection, both)
	assert.Equal(t, FilterRecords(byMarket, domain.FilterCriteria{ISOWeek: week}), both)

	for _, record := range both {
		w, _ := ISOWeek(record.Date)
		assert.Equal(t, 2, w)
		assert.Equal(t, "Austin", record.Market)
	}
}

func TestFilterRecords_DoesNotMutateInput(t *testing.T) {
	records := exampleRecords()
	snapshot := exampleRecords()

	_ = Aggregate(records, domain.FilterCriteria{Markets: []string{"Austin"}})

	assert.Equal(t, snapshot, records)
}

func TestAvailableFiltersFrom(t *testing.T) {
	records := []domain.SalesRecord{
		{Date: "2024-01-08", Market: "Houston", Account: "Kroger"},
		{Date: "2024-01-01", Market: "Austin", Account: "Tom Thumb"},
		{Date: "2024-01-07", Market: "Austin", Account: "Kroger"},
		{Date: "corrompida", Market: "", Account: ""},
	}

	filters := AvailableFiltersFrom(records)

	assert.Equal(t, []int{1, 2}, filters.Weeks)
	assert.Equal(t, []string{"Austin", "Houston"}, filters.Markets)
	assert.Equal(t, []string{"Kroger", "Tom Thumb"}, filters.Accounts)
}
