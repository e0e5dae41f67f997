package config

import "os"

type AppConfig struct {
	DebugMode       bool
	EvaluatorConfig *EvaluatorConfig
	ServerConfig    *ServerConfig
	RedisConfig     *RedisConfig
	PostgresConfig  *PostgresConfig
	JwtConfig       *JwtConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:       os.Getenv("DEBUG_MODE") == "true",
		EvaluatorConfig: NewEvaluatorConfig(),
		ServerConfig:    NewServerConfig(),
		RedisConfig:     NewRedisConfig(),
		PostgresConfig:  NewPostgresConfig(),
		JwtConfig:       NewJwtConfig(),
	}
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
