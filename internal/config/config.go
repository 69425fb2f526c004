package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/NftDex/marketplace-ledger/internal/log"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Env     string
	Network string
	Index   string
	Debug   bool
	Reindex bool

	LogPath   string
	SentryDsn string

	ApiPort    string
	HealthPort string

	Marketplace   MarketplaceConfig
	Registry      RegistryConfig
	ElasticSearch ElasticSearchConfig
	Aws           AwsConfig
}

type MarketplaceConfig struct {
	// Operator is the account the marketplace acts as when it asks the asset
	// registry for transfer approval.
	Operator string
}

type RegistryConfig struct {
	Url      string
	Timeout  int
	Debug    bool
	CacheTtl int
}

type ElasticSearchConfig struct {
	Hosts            []string
	Sniff            bool
	HealthCheck      bool
	Debug            bool
	Username         string
	Password         string
	MappingDir       string
	BulkPersistCount int
	Refresh          string
}

type AwsConfig struct {
	AccessKey string
	SecretKey string
	Region    string
}

func Init(app string) {
	if err := godotenv.Load(".env"); err != nil {
		zap.L().With(zap.Error(err)).Warn("Unable to load .env")
	}

	initLogger(app)
}

func initLogger(app string) {
	logPath := Get().LogPath
	if logPath == "" {
		logPath = fmt.Sprintf("./var/%s.log", app)
	}

	log.NewLogger(logPath, Get().Debug, Get().SentryDsn)
}

func Get() *Config {
	return &Config{
		Env:        getString("ENV", ""),
		Network:    getString("NETWORK", "mainnet"),
		Index:      getString("INDEX_NAME", "marketplace"),
		Debug:      getBool("DEBUG", false),
		Reindex:    getBool("REINDEX", false),
		LogPath:    getString("LOG_PATH", ""),
		SentryDsn:  getString("SENTRY_DSN", ""),
		ApiPort:    getString("API_PORT", "8080"),
		HealthPort: getString("HEALTH_PORT", "8081"),
		Marketplace: MarketplaceConfig{
			Operator: getString("MARKETPLACE_OPERATOR", "marketplace"),
		},
		Registry: RegistryConfig{
			Url:      getString("REGISTRY_URL", ""),
			Timeout:  getInt("REGISTRY_TIMEOUT", 30),
			Debug:    getBool("REGISTRY_DEBUG", false),
			CacheTtl: getInt("REGISTRY_CACHE_TTL", 5),
		},
		ElasticSearch: ElasticSearchConfig{
			Hosts:            getSlice("ELASTIC_SEARCH_HOSTS", make([]string, 0), ","),
			Sniff:            getBool("ELASTIC_SEARCH_SNIFF", true),
			HealthCheck:      getBool("ELASTIC_SEARCH_HEALTH_CHECK", true),
			Debug:            getBool("ELASTIC_SEARCH_DEBUG", false),
			Username:         getString("ELASTIC_SEARCH_USERNAME", ""),
			Password:         getString("ELASTIC_SEARCH_PASSWORD", ""),
			MappingDir:       getString("ELASTIC_SEARCH_MAPPING_DIR", "./data/mappings"),
			BulkPersistCount: getInt("ELASTIC_SEARCH_BULK_PERSIST_COUNT", 300),
			Refresh:          getString("ELASTIC_SEARCH_REFRESH", "wait_for"),
		},
		Aws: AwsConfig{
			AccessKey: getString("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getString("AWS_SECRET_KEY_ID", ""),
			Region:    getString("AWS_REGION", ""),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}

	return val
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}

func getSlice(key string, defaultVal []string, sep string) []string {
	valStr := getString(key, "")
	if valStr == "" {
		return defaultVal
	}

	return strings.Split(valStr, sep)
}
