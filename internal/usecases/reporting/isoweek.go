package reporting

import "github.com/vfg2006/sales-dashboard-api/pkg/utils"

// ISOWeek retorna a semana ISO-8601 de uma data yyyy-mm-dd. O segundo retorno
// é false quando a data não pode ser interpretada.
func ISOWeek(date string) (int, bool) {
	if date == "" {
		return 0, false
	}

	parsed, err := utils.ParseDate(date)
	if err != nil {
		return 0, false
	}

	_, week := parsed.ISOWeek()
	return week, true
}
