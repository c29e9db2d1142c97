package reporting

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reporter define as consultas do dashboard. Cada chamada lê a tabela completa uma vez.
type Reporter interface {
	// GetDashboard retorna KPIs, territórios e tendência numa única agregação
	GetDashboard(criteria domain.FilterCriteria) (*domain.AggregationResult, error)

	GetSummary(criteria domain.FilterCriteria) (*domain.AggregationResult, error)
	GetTerritory(criteria domain.FilterCriteria) ([]domain.TerritoryAttainment, error)
	GetTrend(criteria domain.FilterCriteria) ([]domain.TrendPoint, error)

	// GetSales retorna os registros brutos que satisfazem os filtros
	GetSales(criteria domain.FilterCriteria) ([]domain.SalesRecord, error)

	// ExportSales grava os registros filtrados em CSV e retorna quantos foram gravados
	ExportSales(w io.Writer, criteria domain.FilterCriteria) (int, error)

	// GetAvailableFilters deriva semanas, mercados e contas da tabela sem filtros
	GetAvailableFilters() (*domain.AvailableFilters, error)
}

type Service struct {
	salesTableRepo repository.SalesTableRepository
}

func NewService(salesTableRepo repository.SalesTableRepository) Reporter {
	return &Service{
		salesTableRepo: salesTableRepo,
	}
}

func (s *Service) load() ([]domain.SalesRecord, error) {
	records, err := s.salesTableRepo.LoadAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar tabela de vendas")
		return nil, fmt.Errorf("%w: %w", ErrLoadSalesTable, err)
	}
	return records, nil
}

func (s *Service) GetDashboard(criteria domain.FilterCriteria) (*domain.AggregationResult, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	result := Aggregate(records, criteria)
	return &result, nil
}

func (s *Service) GetSummary(criteria domain.FilterCriteria) (*domain.AggregationResult, error) {
	return s.GetDashboard(criteria)
}

func (s *Service) GetTerritory(criteria domain.FilterCriteria) ([]domain.TerritoryAttainment, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	return territoryBreakdown(FilterRecords(records, criteria)), nil
}

func (s *Service) GetTrend(criteria domain.FilterCriteria) ([]domain.TrendPoint, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	return dailyTrend(FilterRecords(records, criteria)), nil
}

func (s *Service) GetSales(criteria domain.FilterCriteria) ([]domain.SalesRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	return FilterRecords(records, criteria), nil
}

func (s *Service) ExportSales(w io.Writer, criteria domain.FilterCriteria) (int, error) {
	records, err := s.GetSales(criteria)
	if err != nil {
		return 0, err
	}

	if err := repository.EncodeSalesCSV(w, records); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExportSales, err)
	}

	return len(records), nil
}

func (s *Service) GetAvailableFilters() (*domain.AvailableFilters, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	return AvailableFiltersFrom(records), nil
}
