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
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	TikTok   TikTok   `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	AdsSync  AdsSync  `mapstructure:",squash"`
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

// TikTok guarda as credenciais e o endereço da API de transparência. As
// credenciais vêm do ambiente e são entregues ao cliente na construção: não
// existe estado global de credenciais no processo.
type TikTok struct {
	BaseURL      string `mapstructure:"tiktok_base_url"`
	ClientKey    string `mapstructure:"tiktok_client_key"`
	ClientSecret string `mapstructure:"tiktok_client_secret"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AdsSync configura o agendador que reexecuta a consulta fixa de anúncios e
// persiste as linhas achatadas.
type AdsSync struct {
	CronSchedule        string `mapstructure:"ads_sync_cron"`
	CountryCode         string `mapstructure:"ads_sync_country_code"`
	SearchTerm          string `mapstructure:"ads_sync_search_term"`
	LookbackDays        int    `mapstructure:"ads_sync_lookback_days"`
	MaxPages            int    `mapstructure:"ads_sync_max_pages"`
	RequestDelaySeconds int    `mapstructure:"ads_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"ads_sync_enabled"`
	RetentionDays       int    `mapstructure:"ads_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/transparency")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TIKTOK_BASE_URL", "https://open.tiktokapis.com")
	viper.SetDefault("TIKTOK_CLIENT_KEY", "your_client_key")       // ONLY LOCAL
	viper.SetDefault("TIKTOK_CLIENT_SECRET", "your_client_secret") // ONLY LOCAL

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para a sincronização de anúncios
	viper.SetDefault("ADS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ADS_SYNC_COUNTRY_CODE", "")
	viper.SetDefault("ADS_SYNC_SEARCH_TERM", "")
	viper.SetDefault("ADS_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("ADS_SYNC_MAX_PAGES", 10)            // Teto finito de páginas por sessão
	viper.SetDefault("ADS_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre consultas
	viper.SetDefault("ADS_SYNC_ENABLED", false)
	viper.SetDefault("ADS_SYNC_RETENTION_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
