package domain

// FilterCriteria restringe os registros considerados numa agregação.
// Campos nil ou vazios não restringem a dimensão correspondente.
// ISOWeek compara só o número da semana, sem o ano ISO; por isso a tabela
// gerada não passa de 358 dias (config.MaxGeneratorDays).
type FilterCriteria struct {
	ISOWeek  *int     `json:"week,omitempty"`
	Markets  []string `json:"markets,omitempty"`
	Accounts []string `json:"accounts,omitempty"`
}

// AvailableFilters representa os valores disponíveis para popular os filtros do dashboard
type AvailableFilters struct {
	Weeks    []int    `json:"weeks"`    // Semanas ISO presentes na tabela, em ordem crescente
	Markets  []string `json:"markets"`  // Mercados em ordem alfabética
	Accounts []string `json:"accounts"` // Contas em ordem alfabética
}
