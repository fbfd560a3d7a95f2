package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv        string `mapstructure:"APP_ENV"`
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	TokenTTLHours int    `mapstructure:"TOKEN_TTL_HOURS"`
	UploadDir     string `mapstructure:"UPLOAD_DIR"`
	StaticDir     string `mapstructure:"STATIC_DIR"`
}

func LoadConfig() (config Config, err error) {
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "sqlite://vrmhub.db")
	// No default: the signing secret must come from the environment.
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("STATIC_DIR", "web/static")

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Printf("unable to decode into struct, %v", err)
		return
	}

	if config.JWTSecret == "" {
		return config, errors.New("JWT_SECRET environment variable is not set")
	}

	return
}
