package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	AppPort         int
	DbHost          string
	DbUser          string
	DbPassword      string
	DbName          string
	DbPort          int
	DbSSLMode       string
	GoogleAPIKey    string
	JwtSecret       string
	UpstreamTimeout int // seconds, applies to every upstream provider call
}

var (
	lock      = &sync.Mutex{}
	appConfig *AppConfig
)

func GetConfig() (*AppConfig, error) {
	if appConfig != nil {
		return appConfig, nil
	}

	lock.Lock()
	defer lock.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	appConfig, err := initConfig()
	return appConfig, err
}

func initConfig() (*AppConfig, error) {
	var finalConfig AppConfig

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetConfigName("app.config")
	viper.SetConfigType("json")
	err := viper.ReadInConfig()
	if err != nil {
		finalConfig.AppPort = getEnvIntOrDefault("APP_PORT", 8080)
		finalConfig.DbHost = getEnvOrDefault("DB_HOST", "postgres")
		finalConfig.DbPort = getEnvIntOrDefault("DB_PORT", 5432)
		finalConfig.DbUser = getEnvOrDefault("DB_USER", "postgres")
		finalConfig.DbPassword = getEnvOrDefault("DB_PASSWORD", "1")
		finalConfig.DbName = getEnvOrDefault("DB_NAME", "pinpoint")
		finalConfig.DbSSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
		finalConfig.GoogleAPIKey = getEnvOrDefault("GOOGLE_PLACES_API_KEY", "")
		finalConfig.JwtSecret = getEnvOrDefault("JWT_SECRET", "")
		finalConfig.UpstreamTimeout = getEnvIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
		return &finalConfig, nil
	}

	finalConfig.AppPort = viper.GetInt("server.port")
	finalConfig.DbHost = viper.GetString("database.host")
	finalConfig.DbPort = viper.GetInt("database.port")
	finalConfig.DbUser = viper.GetString("database.username")
	finalConfig.DbPassword = viper.GetString("database.password")
	finalConfig.DbName = viper.GetString("database.dbname")
	finalConfig.DbSSLMode = viper.GetString("database.sslmode")
	finalConfig.GoogleAPIKey = viper.GetString("google.apikey")
	finalConfig.JwtSecret = viper.GetString("auth.jwtsecret")
	finalConfig.UpstreamTimeout = viper.GetInt("upstream.timeoutseconds")
	if finalConfig.UpstreamTimeout == 0 {
		finalConfig.UpstreamTimeout = 10
	}

	fmt.Printf("Using config file: %s\n\n", viper.ConfigFileUsed())

	return &finalConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
