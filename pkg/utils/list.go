package utils

import "strings"

// SplitList separa uma lista delimitada por vírgulas, removendo espaços e itens vazios
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
