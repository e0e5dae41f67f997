package config

import (
	"os"
	"strconv"
)

type EvaluatorConfig struct {
	ScratchRoot         string
	DefaultTimeLimitMs  int64
	LanguageCatalogPath string
}

func NewEvaluatorConfig() *EvaluatorConfig {
	limit, err := strconv.ParseInt(os.Getenv("EVAL_DEFAULT_TIME_LIMIT_MS"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 5000
	}
	return &EvaluatorConfig{
		ScratchRoot:         getEnv("EVAL_SCRATCH_ROOT", os.TempDir()),
		DefaultTimeLimitMs:  limit,
		LanguageCatalogPath: os.Getenv("EVAL_LANGUAGE_CATALOG"),
	}
}
