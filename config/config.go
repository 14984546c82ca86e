package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults DefaultsConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	JWTSecret   string
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL  string
	Name string
}

type DefaultsConfig struct {
	ManagerPassword string
	ProjectName     string
}

var AppConfig *Config

// LoadConfig reads configuration from the environment. godotenv has already
// populated the process env from .env by the time this runs.
func LoadConfig() {
	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT")
	viper.BindEnv("SERVER_ENV")
	viper.BindEnv("SECRET_KEY")
	viper.BindEnv("CORS_ORIGINS")
	viper.BindEnv("MONGODB_URL")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("MANAGER_PASSWORD")
	viper.BindEnv("PROJECT_NAME")

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("MONGODB_URL", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "restaurant-pos")
	viper.SetDefault("MANAGER_PASSWORD", "1234")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:9000")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Env:         viper.GetString("SERVER_ENV"),
			JWTSecret:   viper.GetString("SECRET_KEY"),
			CORSOrigins: viper.GetStringSlice("CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			URL:  viper.GetString("MONGODB_URL"),
			Name: viper.GetString("DB_NAME"),
		},
		Defaults: DefaultsConfig{
			ManagerPassword: viper.GetString("MANAGER_PASSWORD"),
			ProjectName:     viper.GetString("PROJECT_NAME"),
		},
	}

	log.Printf("Configuration loaded:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Database Name: %s", AppConfig.Database.Name)
	log.Printf("- JWT Secret: %s", func() string {
		if AppConfig.Server.JWTSecret != "" {
			return "SET"
		}
		return "NOT SET"
	}())
}
