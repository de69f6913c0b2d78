package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	BoardWidth     int
	BoardHeight    int
	AllowedOrigins []string
	FrontendURL    string
	LogLevel       string
	LogFile        string
	GinMode        string
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Board dimensions are fixed for the lifetime of the process;
	// a restart always reuses them.
	boardWidth := GetEnvAsInt("BOARD_WIDTH", domain.DefaultWidth)
	boardHeight := GetEnvAsInt("BOARD_HEIGHT", domain.DefaultHeight)
	if boardWidth <= 0 || boardHeight <= 0 {
		log.Warn().Int("width", boardWidth).Int("height", boardHeight).
			Msg("Invalid board size, falling back to defaults")
		boardWidth, boardHeight = domain.DefaultWidth, domain.DefaultHeight
	}

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:"+port)
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + Localhost + CSV values)
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// gin.SetMode panics on anything else
	ginMode := GetEnv("GIN_MODE", gin.ReleaseMode)
	switch ginMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		log.Warn().Str("value", ginMode).Msg("Invalid GIN_MODE, using release")
		ginMode = gin.ReleaseMode
	}

	return &Config{
		Port:           port,
		BoardWidth:     boardWidth,
		BoardHeight:    boardHeight,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogFile:        GetEnv("LOG_FILE", ""),
		GinMode:        ginMode,
	}
}

// IsOriginAllowed reports whether origin is in the configured list.
func (c *Config) IsOriginAllowed(origin string) bool {
	for _, allowedOrigin := range c.AllowedOrigins {
		if allowedOrigin == origin {
			return true
		}
	}
	return false
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("Invalid integer value, using default")
		return defaultValue
	}
	return value
}
