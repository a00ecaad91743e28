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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Worker    Worker    `mapstructure:",squash"`
	ShopAds   ShopAds   `mapstructure:",squash"`
	RateLimit RateLimit `mapstructure:",squash"`
	Retry     Retry     `mapstructure:",squash"`
	Telegram  Telegram  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
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

// Worker concentra a configuração do laço de execução de regras
type Worker struct {
	CheckIntervalSeconds       int  `mapstructure:"worker_check_interval_seconds"`
	MissedScheduleToleranceMin int  `mapstructure:"missed_schedule_tolerance_minutes"`
	DailyCheckCutoffHour       int  `mapstructure:"daily_check_cutoff_hour"`
	MaxConcurrentCampaigns     int  `mapstructure:"max_concurrent_campaigns"`
	Enabled                    bool `mapstructure:"worker_enabled"`
}

// ShopAds configura a integração com a plataforma de anúncios
type ShopAds struct {
	BaseURL          string `mapstructure:"shopads_base_url"`
	TimeoutSeconds   int    `mapstructure:"shopads_timeout_seconds"`
	AdCreditDivisor  int64  `mapstructure:"shopads_ad_credit_divisor"`
	BudgetUnitFactor int64  `mapstructure:"shopads_budget_unit_factor"`
}

// RateLimit configura o limite por loja de requisições à plataforma
type RateLimit struct {
	MaxRequests int `mapstructure:"rate_limit_max_requests"`
	WindowMs    int `mapstructure:"rate_limit_window_ms"`
}

// Retry configura as novas tentativas de chamadas à plataforma
type Retry struct {
	MaxRetries  int `mapstructure:"max_retries"`
	BaseDelayMs int `mapstructure:"retry_base_delay_ms"`
}

type Telegram struct {
	BotToken string `mapstructure:"telegram_bot_token"`
	Enabled  bool   `mapstructure:"telegram_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsautomation")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults do worker de regras
	viper.SetDefault("WORKER_CHECK_INTERVAL_SECONDS", 60)    // Um ciclo por minuto
	viper.SetDefault("MISSED_SCHEDULE_TOLERANCE_MINUTES", 5) // Janela de tolerância para horários perdidos
	viper.SetDefault("DAILY_CHECK_CUTOFF_HOUR", 9)           // Verificação de assinaturas após as 9h
	viper.SetDefault("MAX_CONCURRENT_CAMPAIGNS", 50)         // Teto consultivo por ciclo
	viper.SetDefault("WORKER_ENABLED", true)

	// Defaults da integração com a plataforma de anúncios
	viper.SetDefault("SHOPADS_BASE_URL", "https://ads.shopplatform.com/api/v2")
	viper.SetDefault("SHOPADS_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SHOPADS_AD_CREDIT_DIVISOR", 100000) // A plataforma devolve saldo em micro-unidades
	viper.SetDefault("SHOPADS_BUDGET_UNIT_FACTOR", 100000)

	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 50)
	viper.SetDefault("RATE_LIMIT_WINDOW_MS", 1000)

	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("RETRY_BASE_DELAY_MS", 1000)

	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

// CheckInterval devolve o intervalo do worker como time.Duration
func (w Worker) CheckInterval() time.Duration {
	return time.Duration(w.CheckIntervalSeconds) * time.Second
}

// MissedScheduleTolerance devolve a tolerância como time.Duration
func (w Worker) MissedScheduleTolerance() time.Duration {
	return time.Duration(w.MissedScheduleToleranceMin) * time.Minute
}

// Timeout devolve o timeout por chamada como time.Duration
func (s ShopAds) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Window devolve a janela deslizante como time.Duration
func (r RateLimit) Window() time.Duration {
	return time.Duration(r.WindowMs) * time.Millisecond
}

// BaseDelay devolve o atraso base entre tentativas como time.Duration
func (r Retry) BaseDelay() time.Duration {
	return time.Duration(r.BaseDelayMs) * time.Millisecond
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
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
