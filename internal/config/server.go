package config

import (
	"os"
	"strconv"
)

type ServerConfig struct {
	Port           int
	AuthEnabled    bool
	MaxConcurrency int
}

func NewServerConfig() *ServerConfig {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		port = 8082
	}
	maxConcurrency, err := strconv.Atoi(os.Getenv("SERVER_MAX_CONCURRENT_EVALUATIONS"))
	if err != nil || maxConcurrency <= 0 {
		maxConcurrency = 4
	}
	return &ServerConfig{
		Port:           port,
		AuthEnabled:    os.Getenv("SERVER_AUTH_ENABLED") == "true",
		MaxConcurrency: maxConcurrency,
	}
}
