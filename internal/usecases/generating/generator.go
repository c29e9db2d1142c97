// Package generating produz a tabela de vendas simuladas
package generating

import (
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	DefaultDays     = 30
	RecordsPerDay   = 100
	minDailyGoal    = 20
	minPods         = 1
	goalStdDev      = 15
	defaultBaseGoal = 100
)

var (
	ErrInvalidDays    = errors.New("days must be greater than zero")
	ErrInvalidCatalog = errors.New("catalog must have at least one value per dimension")
)

// SalesGenerator é implementado por quem produz uma tabela de vendas completa
type SalesGenerator interface {
	Generate(days int, endDate time.Time) ([]domain.SalesRecord, error)
}

type Generator struct {
	catalog       Catalog
	distributions *Distributions
}

func New(source RandomSource, catalog Catalog) *Generator {
	return &Generator{
		catalog:       catalog,
		distributions: NewDistributions(source),
	}
}

// Generate produz RecordsPerDay registros para cada um dos `days` dias
// terminados em endDate, do mais antigo para o mais recente.
func (g *Generator) Generate(days int, endDate time.Time) ([]domain.SalesRecord, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}
	if !g.catalog.isValid() {
		return nil, ErrInvalidCatalog
	}

	endDate = time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	records := make([]domain.SalesRecord, 0, days*RecordsPerDay)

	for offset := days - 1; offset >= 0; offset-- {
		date := utils.FormatDate(endDate.AddDate(0, 0, -offset))
		for i := 0; i < RecordsPerDay; i++ {
			records = append(records, g.newRecord(date))
		}
	}

	logrus.WithFields(logrus.Fields{
		"days":    days,
		"records": len(records),
		"from":    records[0].Date,
		"to":      records[len(records)-1].Date,
	}).Info("Tabela de vendas gerada")

	return records, nil
}

func (g *Generator) newRecord(date string) domain.SalesRecord {
	d := g.distributions

	marketIdx := d.Index(len(g.catalog.Markets))
	accountIdx := d.Index(len(g.catalog.Accounts))
	brand := g.catalog.Brands[d.Index(len(g.catalog.Brands))]
	category := g.catalog.Categories[d.Index(len(g.catalog.Categories))]
	rep := g.catalog.Reps[d.Index(len(g.catalog.Reps))]

	baseGoal, ok := g.catalog.BaseGoals[category]
	if !ok {
		baseGoal = defaultBaseGoal
	}

	accountFactor := 1 + 0.05*float64(accountIdx)
	marketFactor := 1 + 0.07*float64(marketIdx)
	dailyGoal := math.Max(minDailyGoal, math.Round(d.Normal(baseGoal*accountFactor*marketFactor, goalStdDev)))

	displays := max(0, d.Poisson(1))
	pods := max(minPods, int(math.Round(d.Normal(12, 3))))
	voids := max(0, d.Poisson(1))

	uplift := 1 + 0.10*float64(displays)
	voidPenalty := 1 - math.Min(float64(voids)*0.03, 0.4)
	noise := d.Normal(0.95, 0.1)

	salesVolume := math.Round(math.Max(0, dailyGoal*uplift*voidPenalty*noise))

	return domain.SalesRecord{
		Date:        date,
		Market:      g.catalog.Markets[marketIdx],
		Account:     g.catalog.Accounts[accountIdx],
		Brand:       brand,
		Category:    category,
		Rep:         rep,
		Goal:        dailyGoal,
		SalesVolume: salesVolume,
		Displays:    displays,
		Pods:        pods,
		Voids:       voids,
	}
}
