// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// SalesRecord representa uma linha da tabela de vendas simuladas
type SalesRecord struct {
	Date        string  `json:"date"` // Formato yyyy-mm-dd (ex: 2024-01-15)
	Market      string  `json:"market"`
	Account     string  `json:"account"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Rep         string  `json:"rep"`
	Goal        float64 `json:"goal"`
	SalesVolume float64 `json:"sales_volume"`
	Displays    int     `json:"displays"`
	Pods        int     `json:"pods"`
	Voids       int     `json:"voids"`
}

// SalesTableHeader é o cabeçalho do arquivo CSV, na ordem em que as colunas são gravadas
var SalesTableHeader = []string{
	"date",
	"market",
	"account",
	"brand",
	"category",
	"rep",
	"goal",
	"sales_volume",
	"displays",
	"pods",
	"voids",
}

const (
	CategoryWine    = "Wine"
	CategorySpirits = "Spirits"
	CategoryBeer    = "Beer"
)
