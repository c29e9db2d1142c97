package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// parseFilterCriteria traduz os parâmetros week, markets, market e accounts.
// "market" (único) é aceito junto com "markets" (lista separada por vírgula).
func parseFilterCriteria(query url.Values) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{}

	if raw := strings.TrimSpace(query.Get("week")); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, fmt.Errorf("parâmetro week inválido: %q", raw)
		}
		if week < 1 || week > 53 {
			return criteria, fmt.Errorf("parâmetro week fora do intervalo 1-53: %d", week)
		}
		criteria.ISOWeek = &week
	}

	markets := utils.SplitList(query.Get("markets"))
	if market := strings.TrimSpace(query.Get("market")); market != "" {
		markets = append(markets, market)
	}
	criteria.Markets = markets

	criteria.Accounts = utils.SplitList(query.Get("accounts"))

	return criteria, nil
}
