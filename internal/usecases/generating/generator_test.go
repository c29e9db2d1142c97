package generating

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// fixedSource devolve sempre o mesmo valor
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// sequenceSource devolve os valores em ordem, recomeçando ao final
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestDistributions_Uniform(t *testing.T) {
	source := &sequenceSource{values: []float64{0.1, 0.5, 0.9}}
	d := NewDistributions(source)

	assert.Equal(t, 0.1, d.Uniform())
	assert.Equal(t, 2, d.Index(5))
	assert.Equal(t, 0.9, d.Uniform())
	assert.Equal(t, 3, source.next)
}

func TestDistributions_Index(t *testing.T) {
	assert.Equal(t, 0, NewDistributions(fixedSource(0)).Index(5))
	assert.Equal(t, 2, NewDistributions(fixedSource(0.5)).Index(5))
	assert.Equal(t, 4, NewDistributions(fixedSource(0.9999)).Index(5))
	assert.Equal(t, 0, NewDistributions(fixedSource(0.7)).Index(1))
}

func TestDistributions_Normal(t *testing.T) {
	// u1 = 1 - 0.5, u2 = 0.5  =>  z = sqrt(-2 ln 0.5) * cos(pi)
	expectedZ := -math.Sqrt(-2 * math.Log(0.5))
	got := NewDistributions(fixedSource(0.5)).Normal(10, 2)
	assert.InDelta(t, 10+2*expectedZ, got, 1e-9)

	// u1 = 1 - 0 = 1  =>  z = 0
	assert.InDelta(t, 7.0, NewDistributions(fixedSource(0)).Normal(7, 3), 1e-9)
}

func TestDistributions_Poisson(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		lambda   float64
		expected int
	}{
		{name: "Primeiro sorteio abaixo de e^-1", values: []float64{0.1}, lambda: 1, expected: 0},
		{name: "Produto cai abaixo no segundo sorteio", values: []float64{0.5}, lambda: 1, expected: 1},
		{name: "Três sorteios altos antes de cair", values: []float64{0.9, 0.9, 0.9, 0.1}, lambda: 1, expected: 3},
		{name: "Lambda zero", values: []float64{0.5}, lambda: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDistributions(&sequenceSource{values: tt.values})
			assert.Equal(t, tt.expected, d.Poisson(tt.lambda))
		})
	}
}

func TestDistributions_Moments(t *testing.T) {
	d := NewDistributions(rand.New(rand.NewSource(7)))

	const n = 20000
	var normalSum, poissonSum float64
	for i := 0; i < n; i++ {
		normalSum += d.Normal(12, 3)
		poissonSum += float64(d.Poisson(1))
	}

	assert.InDelta(t, 12, normalSum/n, 0.1)
	assert.InDelta(t, 1, poissonSum/n, 0.05)
}

func TestGenerator_FixedSource(t *testing.T) {
	gen := New(fixedSource(0.5), DefaultCatalog())

	records, err := gen.Generate(1, time.Date(2024, 1, 8, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, RecordsPerDay)

	// Com 0.5 todos os sorteios caem no meio das listas:
	// Houston (1.14), Central Market (1.10), Spirits (100)
	expected := domain.SalesRecord{
		Date:        "2024-01-08",
		Market:      "Houston",
		Account:     "Central Market",
		Brand:       "Veuve Clicquot",
		Category:    domain.CategorySpirits,
		Rep:         "Williams, R",
		Goal:        108, // round(125.4 - 15*1.1774)
		SalesVolume: 96,  // round(108 * 1.1 * 0.97 * 0.8323)
		Displays:    1,
		Pods:        8,
		Voids:       1,
	}
	assert.Equal(t, expected, records[0])
	assert.Equal(t, expected, records[RecordsPerDay-1])
}

func TestGenerator_Invariants(t *testing.T) {
	gen := New(NewRandomSource(42), DefaultCatalog())
	endDate := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)

	records, err := gen.Generate(DefaultDays, endDate)
	require.NoError(t, err)
	require.Len(t, records, DefaultDays*RecordsPerDay)

	perDate := make(map[string]int)
	previous := ""
	for _, record := range records {
		assert.GreaterOrEqual(t, record.Goal, 20.0)
		assert.GreaterOrEqual(t, record.SalesVolume, 0.0)
		assert.GreaterOrEqual(t, record.Pods, 1)
		assert.GreaterOrEqual(t, record.Displays, 0)
		assert.GreaterOrEqual(t, record.Voids, 0)
		assert.Equal(t, math.Round(record.Goal), record.Goal)
		assert.Equal(t, math.Round(record.SalesVolume), record.SalesVolume)
		assert.Contains(t, DefaultCatalog().Categories, record.Category)
		assert.GreaterOrEqual(t, record.Date, previous)

		previous = record.Date
		perDate[record.Date]++
	}

	assert.Len(t, perDate, DefaultDays)
	for date, count := range perDate {
		assert.Equal(t, RecordsPerDay, count, date)
	}
	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, "2024-01-30", records[len(records)-1].Date)
}

func TestGenerator_GoalSkewByPosition(t *testing.T) {
	gen := New(NewRandomSource(99), DefaultCatalog())

	records, err := gen.Generate(60, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	goalByMarket := make(map[string][]float64)
	for _, record := range records {
		goalByMarket[record.Market] = append(goalByMarket[record.Market], record.Goal)
	}

	mean := func(values []float64) float64 {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}

	// Mercados mais ao fim da lista recebem metas maiores
	assert.Greater(t, mean(goalByMarket["Fort Worth"]), mean(goalByMarket["Austin"]))
}

func TestGenerator_Errors(t *testing.T) {
	_, err := New(fixedSource(0.5), DefaultCatalog()).Generate(0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidDays)

	_, err = New(fixedSource(0.5), Catalog{}).Generate(1, time.Now())
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
