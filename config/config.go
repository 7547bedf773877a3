package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DatabasePath string
	StaticDir    string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GeocoderUserAgent string

	OpenMeteoGeocodingURL string
	NominatimURL          string
	ForecastURL           string
	ArchiveURL            string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weathertrack")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PATH", "weather.db")
	v.SetDefault("STATIC_DIR", "web")
	v.SetDefault("HTTP_TIMEOUT", 60)
	v.SetDefault("GEOCODER_USER_AGENT", "weathertrack/1.0")

	v.SetDefault("OPENMETEO_GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("ARCHIVE_URL", "https://archive-api.open-meteo.com/v1/archive")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		DatabasePath:          v.GetString("DATABASE_PATH"),
		StaticDir:             v.GetString("STATIC_DIR"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		GeocoderUserAgent:     v.GetString("GEOCODER_USER_AGENT"),
		OpenMeteoGeocodingURL: v.GetString("OPENMETEO_GEOCODING_URL"),
		NominatimURL:          v.GetString("NOMINATIM_URL"),
		ForecastURL:           v.GetString("FORECAST_URL"),
		ArchiveURL:            v.GetString("ARCHIVE_URL"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
