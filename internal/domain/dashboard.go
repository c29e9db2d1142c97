package domain

// SummaryResponse é o formato dos KPIs devolvidos pela API
type SummaryResponse struct {
	TotalSales float64 `json:"total_sales"`
	TotalGoal  float64 `json:"total_goal"`
	GapToGoal  float64 `json:"gap_to_goal"`
	Attainment float64 `json:"attainment"` // Percentual com uma casa decimal
}

type TerritoryItem struct {
	Market     string  `json:"market"`
	Sales      float64 `json:"sales"`
	Goal       float64 `json:"goal"`
	Attainment float64 `json:"attainment"` // Percentual com uma casa decimal
}

type TrendItem struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

// DashboardResponse reúne KPIs, ranking de territórios e tendência diária numa única resposta
type DashboardResponse struct {
	SummaryResponse
	Territory []TerritoryItem `json:"territory"`
	Trend     []TrendItem     `json:"trend"`
}
