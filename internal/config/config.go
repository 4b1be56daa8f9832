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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	AdManager  AdManager  `mapstructure:",squash"`
	Fetch      Fetch      `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	Freshness  Freshness  `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Exchange   Exchange   `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
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

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type AdManager struct {
	BaseURL                  string `mapstructure:"gam_base_url"`
	Version                  string `mapstructure:"gam_version"`
	URL                      string `mapstructure:"-"`
	OAuthClientID            string `mapstructure:"gam_oauth_client_id"`
	OAuthClientSecret        string `mapstructure:"gam_oauth_client_secret"`
	OAuthTokenURL            string `mapstructure:"gam_oauth_token_url"`
	RequestTimeoutSeconds    int    `mapstructure:"upstream_request_timeout_seconds"`
	TokenExpiryBufferMinutes int    `mapstructure:"token_expiry_buffer_minutes"`
}

type Fetch struct {
	BatchSize            int `mapstructure:"fetch_batch_size"`
	BatchDelaySeconds    int `mapstructure:"fetch_batch_delay_seconds"`
	MaxRetries           int `mapstructure:"fetch_max_retries"`
	RetryBaseDelayMs     int `mapstructure:"fetch_retry_base_delay_ms"`
	ReportTimeoutSeconds int `mapstructure:"report_timeout_seconds"`
}

type Cache struct {
	HotTTLSeconds    int `mapstructure:"cache_hot_ttl_seconds"`
	ReseedTTLSeconds int `mapstructure:"cache_reseed_ttl_seconds"`
}

type Freshness struct {
	TodayFreshnessMinutes   int `mapstructure:"today_freshness_minutes"`
	YesterdayStalenessHours int `mapstructure:"yesterday_staleness_hours"`
}

type ReportSync struct {
	IntervalMinutes          int  `mapstructure:"sync_interval_minutes"`
	Enabled                  bool `mapstructure:"sync_enabled"`
	OwnerUserID              int  `mapstructure:"sync_owner_user_id"`
	YesterdayWindowStartHour int  `mapstructure:"yesterday_window_start_hour"`
	YesterdayWindowEndHour   int  `mapstructure:"yesterday_window_end_hour"`
	YesterdayGraceSeconds    int  `mapstructure:"yesterday_grace_seconds"`
	RetentionDays            int  `mapstructure:"day_record_retention_days"`
}

type Exchange struct {
	URL          string `mapstructure:"exchange_rate_url"`
	BaseCurrency string `mapstructure:"currency_base"`
	RefreshHours int    `mapstructure:"exchange_refresh_hours"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("GAM_BASE_URL", "https://admanager.googleapis.com")
	viper.SetDefault("GAM_VERSION", "v1")
	viper.SetDefault("GAM_OAUTH_CLIENT_ID", "your_client_id")
	viper.SetDefault("GAM_OAUTH_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GAM_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("UPSTREAM_REQUEST_TIMEOUT_SECONDS", 30) // Prazo total da montagem do relatório em foreground
	viper.SetDefault("TOKEN_EXPIRY_BUFFER_MINUTES", 5)       // Renova o token quando faltar menos que isso para expirar

	// Defaults para busca de relatórios por conta
	viper.SetDefault("FETCH_BATCH_SIZE", 5)             // Contas buscadas em paralelo por lote
	viper.SetDefault("FETCH_BATCH_DELAY_SECONDS", 2)    // 2 segundos entre lotes
	viper.SetDefault("FETCH_MAX_RETRIES", 3)            // Tentativas por conta em caso de rate limit
	viper.SetDefault("FETCH_RETRY_BASE_DELAY_MS", 1000) // Atraso inicial do backoff exponencial
	viper.SetDefault("REPORT_TIMEOUT_SECONDS", 30)      // Espera máxima do usuário por uma busca nova

	viper.SetDefault("CACHE_HOT_TTL_SECONDS", 300)   // TTL da camada quente (Redis)
	viper.SetDefault("CACHE_RESEED_TTL_SECONDS", 60) // TTL curto ao repovoar a camada quente a partir da durável

	viper.SetDefault("TODAY_FRESHNESS_MINUTES", 30)  // Relatório de hoje é considerado fresco por 30 minutos
	viper.SetDefault("YESTERDAY_STALENESS_HOURS", 6) // Ontem incompleto vira obsoleto após 6h do novo dia

	// Defaults para sincronização em background
	viper.SetDefault("SYNC_INTERVAL_MINUTES", 60)      // Intervalo entre execuções do worker
	viper.SetDefault("SYNC_ENABLED", false)            // Habilitar sincronização em background
	viper.SetDefault("SYNC_OWNER_USER_ID", 0)          // Usuário cujos relatórios o worker mantém aquecidos
	viper.SetDefault("YESTERDAY_WINDOW_START_HOUR", 3) // Janela de consolidação do dia anterior
	viper.SetDefault("YESTERDAY_WINDOW_END_HOUR", 6)
	viper.SetDefault("YESTERDAY_GRACE_SECONDS", 120) // Espera antes de consolidar, para ceder a requisições de usuários
	viper.SetDefault("DAY_RECORD_RETENTION_DAYS", 0) // 0 = manter para sempre

	viper.SetDefault("EXCHANGE_RATE_URL", "")
	viper.SetDefault("CURRENCY_BASE", "USD")
	viper.SetDefault("EXCHANGE_REFRESH_HOURS", 24)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

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

	config.AdManager.URL = fmt.Sprintf("%s/%s", config.AdManager.BaseURL, config.AdManager.Version)

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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
