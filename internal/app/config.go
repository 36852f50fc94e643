package app

import (
	"strings"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/utils"
)

type Config struct {
	ServiceName      string
	Environment      string
	Version          string
	Port             string
	AllowOrigins     []string
	CategorySeedPath string
}

func LoadConfig(log *logger.Logger) Config {
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	return Config{
		ServiceName:      utils.GetEnv("SERVICE_NAME", "institution-backend", log),
		Environment:      utils.GetEnv("ENVIRONMENT", "development", log),
		Version:          utils.GetEnv("SERVICE_VERSION", "dev", log),
		Port:             utils.GetEnv("PORT", "8080", log),
		AllowOrigins:     splitOrigins(origins),
		CategorySeedPath: utils.GetEnv("CATEGORY_SEED_PATH", "categories.yaml", log),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
