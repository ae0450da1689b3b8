package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Storage  Storage
	Events   Events
	LogLevel string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret   string `json:"-"`
	JWTTTLHours int
	AdminEmail  string
}

type Storage struct {
	CourseFileBudget int
	MaxUploadBytes   int64
}

type Events struct {
	AMQPURL  string `json:"-"`
	Exchange string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("JWT_TTL_HOURS", 24)
	viper.SetDefault("COURSE_FILE_BUDGET", 500000)
	viper.SetDefault("MAX_UPLOAD_BYTES", 50*1024*1024)
	viper.SetDefault("AMQP_EXCHANGE", "atcprep-events")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.JWTTTLHours = viper.GetInt("JWT_TTL_HOURS")
	config.Auth.AdminEmail = viper.GetString("ADMIN_EMAIL")

	config.Storage.CourseFileBudget = viper.GetInt("COURSE_FILE_BUDGET")
	config.Storage.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")

	config.Events.AMQPURL = viper.GetString("AMQP_URL")
	config.Events.Exchange = viper.GetString("AMQP_EXCHANGE")

	config.LogLevel = viper.GetString("LOG_LEVEL")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, using an insecure development secret")
		config.Auth.JWTSecret = "dev-secret-change-me"
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
