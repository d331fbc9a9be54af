package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Storage          Storage          `mapstructure:",squash"`
	CreativeBackfill CreativeBackfill `mapstructure:",squash"`
	StorageMigration StorageMigration `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type Storage struct {
	Region          string `mapstructure:"storage_region"`
	Bucket          string `mapstructure:"storage_bucket"`
	Endpoint        string `mapstructure:"storage_endpoint"`
	AccessKeyID     string `mapstructure:"storage_access_key_id"`
	SecretAccessKey string `mapstructure:"storage_secret_access_key"`
	PublicBaseURL   string `mapstructure:"storage_public_base_url"`
	UsePathStyle    bool   `mapstructure:"storage_use_path_style"`
}

type CreativeBackfill struct {
	CronSchedule            string  `mapstructure:"creative_backfill_cron"`
	Enabled                 bool    `mapstructure:"creative_backfill_enabled"`
	PageSize                int     `mapstructure:"creative_backfill_page_size"`
	BatchDelaySeconds       int     `mapstructure:"creative_backfill_batch_delay_seconds"`
	VideoLookupDelaySeconds int     `mapstructure:"creative_backfill_video_lookup_delay_seconds"`
	RateLimitBackoffSeconds int     `mapstructure:"creative_backfill_rate_limit_backoff_seconds"`
	RequestsPerSecond       float64 `mapstructure:"creative_backfill_requests_per_second"`
}

type StorageMigration struct {
	MinImageBytes    int `mapstructure:"storage_migration_min_image_bytes"`
	ProgressInterval int `mapstructure:"storage_migration_progress_interval"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creative_sync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "") // obrigatório em produção

	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_BUCKET", "ad-creatives")
	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_ACCESS_KEY_ID", "")
	viper.SetDefault("STORAGE_SECRET_ACCESS_KEY", "")
	viper.SetDefault("STORAGE_PUBLIC_BASE_URL", "")
	viper.SetDefault("STORAGE_USE_PATH_STYLE", false)

	// Defaults para o backfill de criativos
	viper.SetDefault("CREATIVE_BACKFILL_CRON", "0 2 * * *")                 // Todos os dias às 2h da manhã
	viper.SetDefault("CREATIVE_BACKFILL_ENABLED", false)                    // Habilitar backfill agendado
	viper.SetDefault("CREATIVE_BACKFILL_PAGE_SIZE", 25)                     // Anúncios por página
	viper.SetDefault("CREATIVE_BACKFILL_BATCH_DELAY_SECONDS", 2)            // 2 segundos entre páginas
	viper.SetDefault("CREATIVE_BACKFILL_VIDEO_LOOKUP_DELAY_SECONDS", 1)     // 1 segundo antes da consulta de vídeo
	viper.SetDefault("CREATIVE_BACKFILL_RATE_LIMIT_BACKOFF_SECONDS", 60)    // Espera após rate limit
	viper.SetDefault("CREATIVE_BACKFILL_REQUESTS_PER_SECOND", 2.0)          // Limite do token bucket

	// Defaults para a migração de armazenamento
	viper.SetDefault("STORAGE_MIGRATION_MIN_IMAGE_BYTES", 1000) // Abaixo disso é página de erro, não imagem
	viper.SetDefault("STORAGE_MIGRATION_PROGRESS_INTERVAL", 10)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
