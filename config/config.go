package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv   string
	Port     string
	DataFile string
	LogLevel string
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig membaca .env (bila ada) lalu environment variables. Hanya lokasi
// file data, port, dan level log yang bisa diatur; tidak ada konfigurasi lain.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg("File .env tidak ditemukan, memakai environment variables")
		}
		cfg = &Config{
			AppEnv:   getEnvOrDefault("APP_ENV", "development"),
			Port:     getEnvOrDefault("PORT", "8080"),
			DataFile: getEnvOrDefault("DATA_FILE", "patients_data.json"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		}
	})
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
