package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/generating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível do log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesTableRepo := repository.NewSalesTableRepository(cfg.Storage.DataFile)

	reportingService := reporting.NewService(salesTableRepo)

	generator := generating.New(
		generating.NewRandomSource(cfg.Generator.Seed),
		generating.DefaultCatalog(),
	)

	dataRegenerationService := scheduler.NewDataRegenerationService(generator, salesTableRepo, cfg)

	if err := dataRegenerationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de regeneração de dados")
	} else {
		logrus.Info("Agendador de regeneração de dados iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, dataRegenerationService)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.WithField("file", cfg.Storage.DataFile).Info("Servindo tabela de vendas")

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
