package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	config     *Config
	configOnce sync.Once
)

// Store drivers understood by STORE_DRIVER.
const (
	StoreMySQL  = "mysql"
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Store selection
	StoreDriver string

	// Relational database (mysql)
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // "auto"(default) or "drop"

	// Embedded database (sqlite)
	SQLitePath string

	// Document database (mongo)
	MongoURI      string
	MongoDatabase string

	// Server
	ServerPort       string
	PublicBaseURL    string
	CORSAllowOrigins []string

	// Redis
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// MQTT scan event publishing, disabled when the broker URL is empty
	MQTTBrokerURL string
	MQTTClientID  string
	MQTTUsername  string
	MQTTPassword  string
	MQTTQoS       int
	MQTTScanTopic string

	// JWT Authentication
	JWTSecretKey string
	SessionTTL   time.Duration

	// QR tokens
	QRTokenTTL         time.Duration
	QRTokenRetention   time.Duration
	TokenSweepInterval time.Duration

	// Admin seeding, skipped when the password is empty
	DefaultAdminEmail    string
	DefaultAdminPassword string

	// Sentry
	SentryDSN         string
	SentryEnvironment string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	envType := strings.ToUpper(getEnv("ENV_TYPE", "LOCAL"))
	if envType != "LOCAL" && envType != "SERVER" {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	cfg := &Config{
		EnvType: envType,

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreMySQL)),

		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "residents_db"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBMigrationMode: getEnv("DB_MIGRATION_MODE", "auto"),

		SQLitePath: getEnv("SQLITE_PATH", "residents.db"),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "residentsDB"),

		ServerPort:       getEnv("SERVER_PORT", "5000"),
		PublicBaseURL:    strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:5000"), "/"),
		CORSAllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),

		RedisEnabled:  getEnvAsBool("REDIS_ENABLED", false),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		MQTTBrokerURL: getEnv("MQTT_BROKER_URL", ""),
		MQTTClientID:  getEnv("MQTT_CLIENT_ID", "resident_records_server"),
		MQTTUsername:  getEnv("MQTT_USERNAME", ""),
		MQTTPassword:  getEnv("MQTT_PASSWORD", ""),
		MQTTQoS:       getEnvAsInt("MQTT_QOS", 1),
		MQTTScanTopic: getEnv("MQTT_SCAN_TOPIC", "residents/scans"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "resident-records-secret-change-in-production"),
		SessionTTL:   getEnvAsDuration("SESSION_TTL", 24*time.Hour),

		QRTokenTTL:         getEnvAsDuration("QR_TOKEN_TTL", 24*time.Hour),
		QRTokenRetention:   getEnvAsDuration("QR_TOKEN_RETENTION", 7*24*time.Hour),
		TokenSweepInterval: getEnvAsDuration("TOKEN_SWEEP_INTERVAL", time.Hour),

		DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", "admin@localhost"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),

		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", strings.ToLower(envType)),
	}

	if envType == "SERVER" {
		cfg.JWTSecretKey = getEnvRequired("JWT_SECRET_KEY")
		if cfg.StoreDriver == StoreMySQL {
			cfg.DBPassword = getEnvRequired("DB_PASSWORD")
		}
	}

	return cfg
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the mysql connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go duration syntax, e.g. "24h" or "90m".
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}
