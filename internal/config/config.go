package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию калькулятора
type Config struct {
	MaxPrincipal float64
	// MaxAssetValue - верхняя граница стоимости актива для амортизации
	MaxAssetValue float64
	MaxMonths     int
	// MaxYears - максимальный срок амортизации актива в годах
	MaxYears int
	// MaxRate - годовая ставка в процентах
	MaxRate         float64
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	// MetricsTextfile - файл для выгрузки метрик после прогона CLI,
	// пусто - метрики не сохраняются
	MetricsTextfile string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxAssetValue:   getEnvFloat("MAX_ASSET_VALUE", 1e9),
		MaxMonths:       getEnvInt("MAX_MONTHS", 600),
		MaxYears:        getEnvInt("MAX_YEARS", 100),
		MaxRate:         getEnvFloat("MAX_RATE", 200),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "fincalc"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		MetricsTextfile: getEnvString("METRICS_TEXTFILE", ""),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
