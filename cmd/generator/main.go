package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/generating"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	if err := newRootCmd(cfg, time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, now func() time.Time) *cobra.Command {
	var (
		days   int
		output string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "generator",
		Short: "Gera a tabela de vendas simulada",
		Long: `Gera registros de vendas simulados (100 por dia) terminando na data atual
e substitui o arquivo CSV lido pela API.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days > config.MaxGeneratorDays {
				return fmt.Errorf("--days deve ser no máximo %d", config.MaxGeneratorDays)
			}

			generator := generating.New(generating.NewRandomSource(seed), generating.DefaultCatalog())

			records, err := generator.Generate(days, now())
			if err != nil {
				return fmt.Errorf("erro ao gerar dados: %w", err)
			}

			if err := repository.NewSalesTableRepository(output).ReplaceAll(records); err != nil {
				return fmt.Errorf("erro ao gravar dados gerados: %w", err)
			}

			log.L.WithFields(log.Fields{
				"records": len(records),
				"file":    output,
			}).Info("Tabela de vendas gerada")

			fmt.Fprintf(cmd.OutOrStdout(), "%d registros gravados em %s\n", len(records), output)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", cfg.Generator.Days, "quantidade de dias gerados")
	cmd.Flags().StringVarP(&output, "output", "o", cfg.Storage.DataFile, "arquivo CSV de saída")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Generator.Seed, "semente do gerador (0 usa o relógio)")

	return cmd
}
