package repository

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DecodeResult traz os registros lidos, quantos campos numéricos foram zerados
// por estarem ausentes ou malformados e quantas linhas ilegíveis foram descartadas.
type DecodeResult struct {
	Records       []domain.SalesRecord
	CoercedFields int
	SkippedRows   int
}

// EncodeSalesCSV grava o cabeçalho e os registros no formato da tabela de vendas.
// O cabeçalho é sempre gravado, mesmo sem registros.
func EncodeSalesCSV(w io.Writer, records []domain.SalesRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(domain.SalesTableHeader); err != nil {
		return errors.Wrap(err, "erro ao gravar cabeçalho")
	}

	for _, record := range records {
		row := []string{
			record.Date,
			record.Market,
			record.Account,
			record.Brand,
			record.Category,
			record.Rep,
			formatNumber(record.Goal),
			formatNumber(record.SalesVolume),
			strconv.Itoa(record.Displays),
			strconv.Itoa(record.Pods),
			strconv.Itoa(record.Voids),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "erro ao gravar registro de %s", record.Date)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar CSV")
}

// DecodeSalesCSV lê uma tabela de vendas. As colunas são localizadas pelo nome
// no cabeçalho; uma entrada vazia resulta numa tabela vazia. Uma linha corrompida
// é descartada sem interromper a leitura; só erros de I/O abortam.
func DecodeSalesCSV(r io.Reader) (*DecodeResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return &DecodeResult{Records: []domain.SalesRecord{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	result := &DecodeResult{Records: make([]domain.SalesRecord, 0)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.SkippedRows++
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler registro")
		}

		p := rowParser{row: row, columns: columns}
		record := domain.SalesRecord{
			Date:        p.text("date"),
			Market:      p.text("market"),
			Account:     p.text("account"),
			Brand:       p.text("brand"),
			Category:    p.text("category"),
			Rep:         p.text("rep"),
			Goal:        p.number("goal"),
			SalesVolume: p.number("sales_volume"),
			Displays:    p.count("displays"),
			Pods:        p.count("pods"),
			Voids:       p.count("voids"),
		}

		result.Records = append(result.Records, record)
		result.CoercedFields += p.coerced
	}

	return result, nil
}

// rowParser aplica a política de conversão: campos numéricos inválidos viram zero
type rowParser struct {
	row     []string
	columns map[string]int
	coerced int
}

func (p *rowParser) text(column string) string {
	i, ok := p.columns[column]
	if !ok || i >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[i])
}

func (p *rowParser) number(column string) float64 {
	value, err := strconv.ParseFloat(p.text(column), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		p.coerced++
		return 0
	}
	return value
}

func (p *rowParser) count(column string) int {
	raw := p.text(column)
	value, err := strconv.Atoi(raw)
	if err != nil {
		// aceita "3.0" gravado por outras ferramentas
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			p.coerced++
			return 0
		}
		value = int(f)
	}
	if value < 0 {
		p.coerced++
		return 0
	}
	return value
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
