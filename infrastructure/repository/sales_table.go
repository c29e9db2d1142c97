// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesTableRepository dá acesso à tabela de vendas inteira. Não há leitura
// nem escrita parcial: a tabela é lida por completo e substituída por completo.
type SalesTableRepository interface {
	LoadAll() ([]domain.SalesRecord, error)
	ReplaceAll(records []domain.SalesRecord) error
}

type csvSalesTableRepository struct {
	path string
}

func NewSalesTableRepository(path string) SalesTableRepository {
	return &csvSalesTableRepository{
		path: path,
	}
}

// LoadAll lê o arquivo numa única abertura. Arquivo inexistente é tratado como tabela vazia.
func (r *csvSalesTableRepository) LoadAll() ([]domain.SalesRecord, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.WithField("file", r.path).Warn("Arquivo de vendas não encontrado, usando tabela vazia")
			return []domain.SalesRecord{}, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler arquivo de vendas %s", r.path)
	}

	result, err := DecodeSalesCSV(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar arquivo de vendas %s", r.path)
	}

	if result.CoercedFields > 0 {
		logrus.WithFields(logrus.Fields{
			"file":           r.path,
			"coerced_fields": result.CoercedFields,
		}).Warn("Campos numéricos inválidos foram convertidos para zero")
	}

	if result.SkippedRows > 0 {
		logrus.WithFields(logrus.Fields{
			"file":         r.path,
			"skipped_rows": result.SkippedRows,
		}).Warn("Linhas ilegíveis foram descartadas")
	}

	logrus.WithFields(logrus.Fields{
		"file":    r.path,
		"records": len(result.Records),
	}).Debug("Tabela de vendas carregada")

	return result.Records, nil
}

// ReplaceAll grava a tabela num arquivo temporário no mesmo diretório e o renomeia
// sobre o destino, de forma que leitores nunca vejam um arquivo pela metade.
func (r *csvSalesTableRepository) ReplaceAll(records []domain.SalesRecord) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmpPath := tmp.Name()

	defer func() {
		// no-op quando o rename já aconteceu
		_ = os.Remove(tmpPath)
	}()

	if err := EncodeSalesCSV(tmp, records); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		return errors.Wrapf(err, "erro ao substituir arquivo de vendas %s", r.path)
	}

	logrus.WithFields(logrus.Fields{
		"file":    r.path,
		"records": len(records),
	}).Info("Tabela de vendas substituída")

	return nil
}
