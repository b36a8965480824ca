package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CacheDriverMemory   = "memory"
	CacheDriverPostgres = "postgres"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Bitrix     Bitrix     `mapstructure:",squash"`
	Reports    Reports    `mapstructure:",squash"`
	CachePurge CachePurge `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
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

// Bitrix contém os dados de acesso ao webhook REST do Bitrix24
type Bitrix struct {
	WebhookURL string        `mapstructure:"bitrix_webhook_url"`
	Timeout    time.Duration `mapstructure:"bitrix_timeout"`
	MaxPages   int           `mapstructure:"bitrix_max_pages"`
}

// Reports reúne o que os relatórios precisam da configuração
type Reports struct {
	Cache              Cache `mapstructure:",squash"`
	SalesDepartmentIDs []int `mapstructure:"sales_department_ids"`
}

type Cache struct {
	Enabled bool          `mapstructure:"cache_enabled"`
	Expiry  time.Duration `mapstructure:"cache_expiry"`
	Driver  string        `mapstructure:"cache_driver"`
}

type CachePurge struct {
	CronSchedule string `mapstructure:"cache_purge_cron"`
	Enabled      bool   `mapstructure:"cache_purge_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reports?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BITRIX_WEBHOOK_URL", "https://your-portal.bitrix24.com/rest/1/your_webhook_token")
	viper.SetDefault("BITRIX_TIMEOUT", "30s")
	viper.SetDefault("BITRIX_MAX_PAGES", 200) // 200 páginas de 50 registros

	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_EXPIRY", "1h")
	viper.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	viper.SetDefault("SALES_DEPARTMENT_IDS", "")

	viper.SetDefault("CACHE_PURGE_CRON", "15 0 * * *") // Todos os dias às 00:15
	viper.SetDefault("CACHE_PURGE_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
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
			StringToIntSliceHookFunc(","),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
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

// Validate verifica combinações inválidas que só apareceriam em tempo de requisição
func (c *Config) Validate() error {
	if c.Bitrix.WebhookURL == "" {
		return fmt.Errorf("BITRIX_WEBHOOK_URL não configurado")
	}

	switch c.Reports.Cache.Driver {
	case CacheDriverMemory, CacheDriverPostgres:
	default:
		return fmt.Errorf("CACHE_DRIVER inválido: %q (use %s ou %s)", c.Reports.Cache.Driver, CacheDriverMemory, CacheDriverPostgres)
	}

	if len(c.Reports.SalesDepartmentIDs) == 0 {
		logrus.Warn("SALES_DEPARTMENT_IDS vazio, os relatórios não encontrarão agentes")
	}

	return nil
}

// StringToIntSliceHookFunc converte "5,7,9" em []int{5, 7, 9}
func StringToIntSliceHookFunc(sep string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf([]int{}) {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []int{}, nil
		}

		parts := strings.Split(raw, sep)
		ids := make([]int, 0, len(parts))
		for _, part := range parts {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("valor inteiro inválido %q: %w", part, err)
			}
			ids = append(ids, id)
		}

		return ids, nil
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
