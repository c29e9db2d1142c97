package generating

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// Catalog contém as enumerações fixas usadas na geração. A posição de mercados
// e contas na lista influencia a meta (ver accountFactor e marketFactor).
type Catalog struct {
	Markets    []string
	Accounts   []string
	Brands     []string
	Categories []string
	Reps       []string
	BaseGoals  map[string]float64 // meta base por categoria
}

func DefaultCatalog() Catalog {
	return Catalog{
		Markets:    []string{"Austin", "Dallas", "Houston", "San Antonio", "Fort Worth"},
		Accounts:   []string{"Tom Thumb", "Kroger", "Central Market", "Whole Foods", "Market Street"},
		Brands:     []string{"Moët & Chandon", "Hennessy", "Veuve Clicquot", "Dom Pérignon", "Belvedere"},
		Categories: []string{domain.CategoryWine, domain.CategorySpirits, domain.CategoryBeer},
		Reps:       []string{"Martinez, J", "Thompson, K", "Williams, R", "Garcia, M", "Johnson, T"},
		BaseGoals: map[string]float64{
			domain.CategoryWine:    120,
			domain.CategorySpirits: 100,
			domain.CategoryBeer:    150,
		},
	}
}

func (c Catalog) isValid() bool {
	return len(c.Markets) > 0 && len(c.Accounts) > 0 && len(c.Brands) > 0 &&
		len(c.Categories) > 0 && len(c.Reps) > 0
}
