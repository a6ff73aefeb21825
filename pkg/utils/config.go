package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	TMDB     TMDBConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type TMDBConfig struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
	// Settle period before a queued search fires, in milliseconds
	SearchDebounceMs int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TMDB_SEARCH_DEBOUNCE_MS", 300)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		TMDB: TMDBConfig{
			APIKey:           viper.GetString("TMDB_API_KEY"),
			BaseURL:          viper.GetString("TMDB_BASE_URL"),
			TimeoutSeconds:   viper.GetInt("TMDB_TIMEOUT_SECONDS"),
			SearchDebounceMs: viper.GetInt("TMDB_SEARCH_DEBOUNCE_MS"),
		},
	}

	return config, nil
}
