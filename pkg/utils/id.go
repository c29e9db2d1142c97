package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idCharacters = "abcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(idCharacters, 6)
}

// ExportFileName monta o nome do arquivo de exportação com um sufixo único,
// ex: sales_export_20240115_k3j9x2.csv
func ExportFileName(prefix string, date string) string {
	id, err := GenerateID()
	if err != nil || id == "" {
		return fmt.Sprintf("%s_%s.csv", prefix, date)
	}

	return fmt.Sprintf("%s_%s_%s.csv", prefix, date, id)
}
