package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	GoogleAds      GoogleAds      `mapstructure:",squash"`
	TikTok         TikTok         `mapstructure:",squash"`
	LinkedIn       LinkedIn       `mapstructure:",squash"`
	ConnectionSync ConnectionSync `mapstructure:",squash"`
	Distribution   Distribution   `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Meta contém a configuração da Graph API (Facebook/Instagram)
type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"meta_version"`
}

// GoogleAds contém a configuração da API do Google Ads
type GoogleAds struct {
	BaseURL string `mapstructure:"google_ads_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"google_ads_version"`
}

// TikTok contém a configuração da Marketing API do TikTok. Enquanto a
// integração real não existe, o cliente simula as chamadas com o delay
// configurado abaixo.
type TikTok struct {
	BaseURL              string `mapstructure:"tiktok_base_url"`
	SimulatedDelayMillis int    `mapstructure:"tiktok_simulated_delay_millis"`
}

// LinkedIn contém a configuração da Marketing API do LinkedIn. Assim como
// o TikTok, o transporte atual é simulado.
type LinkedIn struct {
	BaseURL              string `mapstructure:"linkedin_base_url"`
	SimulatedDelayMillis int    `mapstructure:"linkedin_simulated_delay_millis"`
}

// ConnectionSync configura o agendador que atualiza o retrato de conexão
// das plataformas a partir do repositório de credenciais
type ConnectionSync struct {
	CronSchedule string `mapstructure:"connection_sync_cron"`
	Enabled      bool   `mapstructure:"connection_sync_enabled"`
}

// Distribution configura o orquestrador de distribuição
type Distribution struct {
	PlatformTimeout time.Duration `mapstructure:"distribution_platform_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaignhub")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_SIMULATED_DELAY_MILLIS", 300)

	viper.SetDefault("LINKEDIN_BASE_URL", "https://api.linkedin.com/rest")
	viper.SetDefault("LINKEDIN_SIMULATED_DELAY_MILLIS", 300)

	// Defaults para o agendador de status de conexão
	viper.SetDefault("CONNECTION_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("CONNECTION_SYNC_ENABLED", false)

	// Timeout por chamada remota, não por distribuição inteira
	viper.SetDefault("DISTRIBUTION_PLATFORM_TIMEOUT", "30s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

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
	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

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
