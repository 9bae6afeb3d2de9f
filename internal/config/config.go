package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/afuste/dueltrack/internal/domain"
)

// AppConfig is read once from the environment at startup. Nothing is
// required: defaults match the LinkedIn export sizes the tool is built for.
type AppConfig struct {
	// Upload-style limits applied before parsing, in megabytes. Personal
	// LinkedIn exports are typically under 5 MB.
	ExportSizeLimitMB     int
	TranscriptSizeLimitMB int

	// Games is the recognized game set; the default four can be replaced
	// with DUELTRACK_GAMES (comma-separated labels).
	Games []domain.Game

	// MessagesDir optionally overrides embedded catalog strings.
	MessagesDir string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ExportSizeLimitMB:     50,
		TranscriptSizeLimitMB: 2,
		Games:                 domain.DefaultGames(),
	}

	if v := strings.TrimSpace(os.Getenv("DUELTRACK_EXPORT_LIMIT_MB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ExportSizeLimitMB = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("DUELTRACK_TRANSCRIPT_LIMIT_MB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TranscriptSizeLimitMB = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("DUELTRACK_GAMES")); v != "" {
		var games []domain.Game
		for _, p := range strings.Split(v, ",") {
			if s := strings.TrimSpace(p); s != "" {
				games = append(games, domain.Game(s))
			}
		}
		if len(games) > 0 {
			cfg.Games = games
		}
	}
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("DUELTRACK_MESSAGES_DIR"))

	return cfg, nil
}

// ExportLimitBytes returns the export cap in bytes.
func (c *AppConfig) ExportLimitBytes() int64 {
	return int64(c.ExportSizeLimitMB) * 1024 * 1024
}

// TranscriptLimitBytes returns the transcript cap in bytes.
func (c *AppConfig) TranscriptLimitBytes() int64 {
	return int64(c.TranscriptSizeLimitMB) * 1024 * 1024
}
