package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	Generator    Generator    `mapstructure:",squash"`
	Regeneration Regeneration `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Storage struct {
	DataFile string `mapstructure:"data_file"`
}

// MaxGeneratorDays impede que um mesmo número de semana ISO apareça em dois anos,
// já que o filtro de semana compara só o número. Com 359 dias, partindo de um
// domingo, a janela alcança a segunda-feira da mesma semana no ano seguinte.
const MaxGeneratorDays = 358

type Generator struct {
	Days int   `mapstructure:"generator_days"`
	Seed int64 `mapstructure:"generator_seed"` // 0 = semente derivada do relógio
}

type Regeneration struct {
	CronSchedule string `mapstructure:"regeneration_cron"`
	Enabled      bool   `mapstructure:"regeneration_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATA_FILE", "data/sales_data.csv")

	viper.SetDefault("GENERATOR_DAYS", 30)
	viper.SetDefault("GENERATOR_SEED", 0)

	viper.SetDefault("REGENERATION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("REGENERATION_ENABLED", false)    // Regeneração agendada desabilitada

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Generator.Days <= 0 {
		logrus.Warnf("GENERATOR_DAYS inválido (%d), usando 30", config.Generator.Days)
		config.Generator.Days = 30
	}

	if config.Generator.Days > MaxGeneratorDays {
		logrus.Warnf("GENERATOR_DAYS acima do limite (%d), usando %d", config.Generator.Days, MaxGeneratorDays)
		config.Generator.Days = MaxGeneratorDays
	}

	return config, nil
}

// loadEnvFile carrega o primeiro .env encontrado no diretório atual ou nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
