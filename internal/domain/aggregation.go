package domain

// AggregationResult é o resultado da agregação dos registros filtrados.
// Attainment é sempre uma razão (vendas / meta); a conversão para percentual
// acontece na camada HTTP.
type AggregationResult struct {
	TotalSales float64
	TotalGoal  float64
	GapToGoal  float64
	Attainment float64
	Territory  []TerritoryAttainment
	Trend      []TrendPoint
}

// TerritoryAttainment agrupa vendas e meta de um mercado
type TerritoryAttainment struct {
	Market     string
	Sales      float64
	Goal       float64
	Attainment float64
}

// TrendPoint é o total de vendas de um dia
type TrendPoint struct {
	Date        string
	SalesVolume float64
}
