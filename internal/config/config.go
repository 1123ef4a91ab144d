package config

import (
	"os"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	CORSOrigins string
}

func LoadConfig() *Config {
	cfg := &Config{
		Env:         os.Getenv("APP_ENV"),
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		CORSOrigins: os.Getenv("CORS_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "http://localhost:5173"
	}

	return cfg
}
