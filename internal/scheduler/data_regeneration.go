// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/generating"
)

var ErrRegenerationRunning = errors.New("regeneration already running")

type DataRegenerationConfig struct {
	CronSchedule string
	Enabled      bool
	Days         int
}

// DataRegenerationService gera uma nova tabela de vendas e substitui o arquivo inteiro,
// seja pelo cron configurado, seja por disparo manual.
type DataRegenerationService struct {
	scheduler           *gocron.Scheduler
	generator           generating.SalesGenerator
	salesTableRepo      repository.SalesTableRepository
	config              DataRegenerationConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRecordCount     int
	lastError           string
}

func NewDataRegenerationService(
	generator generating.SalesGenerator,
	salesTableRepo repository.SalesTableRepository,
	cfg *config.Config,
) *DataRegenerationService {
	regenerationConfig := DataRegenerationConfig{
		CronSchedule: cfg.Regeneration.CronSchedule,
		Enabled:      cfg.Regeneration.Enabled,
		Days:         cfg.Generator.Days,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": regenerationConfig.CronSchedule,
		"enabled":       regenerationConfig.Enabled,
		"days":          regenerationConfig.Days,
	}).Info("Configuração do agendador de regeneração de dados carregada")

	return &DataRegenerationService{
		scheduler:      gocron.NewScheduler(time.Local),
		generator:      generator,
		salesTableRepo: salesTableRepo,
		config:         regenerationConfig,
		now:            time.Now,
	}
}

func (s *DataRegenerationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de regeneração de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de regeneração de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Regenerate(); err != nil && !errors.Is(err, ErrRegenerationRunning) {
			logrus.WithError(err).Error("Erro na regeneração agendada de dados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeneração de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de regeneração de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// Regenerate gera a tabela completa e substitui o arquivo. Execuções sobrepostas retornam ErrRegenerationRunning.
func (s *DataRegenerationService) Regenerate() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Regeneração de dados já está em execução")
		return ErrRegenerationRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando regeneração de dados")

	count, err := s.regenerate()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastRecordCount = count
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithField("records", count).Info("Regeneração de dados concluída")
	return nil
}

func (s *DataRegenerationService) regenerate() (int, error) {
	records, err := s.generator.Generate(s.config.Days, s.now())
	if err != nil {
		return 0, fmt.Errorf("erro ao gerar dados: %w", err)
	}

	if err := s.salesTableRepo.ReplaceAll(records); err != nil {
		return 0, fmt.Errorf("erro ao gravar dados gerados: %w", err)
	}

	return len(records), nil
}

// TriggerManualSync dispara uma regeneração em background
func (s *DataRegenerationService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Regeneração de dados já em andamento, ignorando solicitação manual")
		return ErrRegenerationRunning
	}

	logrus.Info("Iniciando regeneração manual de dados")
	go func() {
		if err := s.Regenerate(); err != nil && !errors.Is(err, ErrRegenerationRunning) {
			logrus.WithError(err).Error("Erro na regeneração manual de dados")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DataRegenerationService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"days":                   s.config.Days,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_record_count":      s.lastRecordCount,
		"last_error":             s.lastError,
	}
}
