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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Cache         Cache         `mapstructure:",squash"`
	History       History       `mapstructure:",squash"`
	RateLimit     RateLimit     `mapstructure:",squash"`
	Google        Google        `mapstructure:",squash"`
	Mail          Mail          `mapstructure:",squash"`
	HistoryBackup HistoryBackup `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	Path           string `mapstructure:"database_path"`
	ConnectRetries uint   `mapstructure:"database_connect_retries"`
}

type Cache struct {
	Driver        string        `mapstructure:"cache_driver"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	DefaultTTL    time.Duration `mapstructure:"cache_default_ttl"`
	DraftTTL      time.Duration `mapstructure:"draft_ttl"`
}

type History struct {
	MaxEntries int `mapstructure:"history_max_entries"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
}

type Google struct {
	ClientID        string `mapstructure:"google_client_id"`
	ClientSecret    string `mapstructure:"google_client_secret"`
	RedirectURL     string `mapstructure:"google_redirect_url"`
	FrontendBaseURL string `mapstructure:"frontend_base_url"`
	OAuthState      string `mapstructure:"oauth_state"`
}

type Mail struct {
	Provider       string `mapstructure:"mail_provider"`
	MailgunDomain  string `mapstructure:"mailgun_domain"`
	MailgunAPIKey  string `mapstructure:"mailgun_api_key"`
	SenderEmail    string `mapstructure:"sender_email"`
	SenderName     string `mapstructure:"sender_name"`
	RequestTimeout int    `mapstructure:"mail_request_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type HistoryBackup struct {
	CronSchedule      string `mapstructure:"history_backup_cron"`
	MaxConcurrentJobs int    `mapstructure:"history_backup_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"history_backup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("TRUSTED_PROXIES", "") // IPs dos proxies que podem informar X-Forwarded-For

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cet_calculator?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "cet-calculator.db")
	viper.SetDefault("DATABASE_CONNECT_RETRIES", 5)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("CACHE_DRIVER", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_DEFAULT_TTL", "10m")
	viper.SetDefault("DRAFT_TTL", "720h") // 30 dias

	viper.SetDefault("HISTORY_MAX_ENTRIES", 0) // 0 = sem limite

	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:8000/v1/auth/google/callback")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("OAUTH_STATE", "cet-calculator-state")

	viper.SetDefault("MAIL_PROVIDER", "log")
	viper.SetDefault("MAILGUN_DOMAIN", "")
	viper.SetDefault("MAILGUN_API_KEY", "")
	viper.SetDefault("SENDER_EMAIL", "nao-responda@cetcalculator.com.br")
	viper.SetDefault("SENDER_NAME", "CET Calculator")
	viper.SetDefault("MAIL_REQUEST_TIMEOUT_SECONDS", 10)

	// Defaults para o backup do histórico
	viper.SetDefault("HISTORY_BACKUP_CRON", "0 2 * * *")     // Todos os dias às 2h da manhã
	viper.SetDefault("HISTORY_BACKUP_MAX_CONCURRENT_JOBS", 3) // 3 usuários em paralelo
	viper.SetDefault("HISTORY_BACKUP_ENABLED", false)         // Habilitar backup automático
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica as combinações de configuração que impedem a aplicação de subir
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config: driver de banco de dados não suportado: %s", c.Database.Driver)
	}

	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: driver de cache não suportado: %s", c.Cache.Driver)
	}

	if c.HistoryBackup.MaxConcurrentJobs <= 0 {
		c.HistoryBackup.MaxConcurrentJobs = 1
	}

	return nil
}

// BuildDSN monta a string de conexão de acordo com o driver
func BuildDSN(db Database) string {
	if db.Driver == "sqlite" {
		return db.Path
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
