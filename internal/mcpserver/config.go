package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// RowLimit is the page size used when a describe call sets no limit.
	RowLimit int
	// MaxLimit caps any requested page size.
	MaxLimit int
	// MaxInlineSize is the largest inline schema accepted, in bytes.
	MaxInlineSize int64
	// AllowPrivateIPs lets url inputs reach loopback and private networks.
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from JSONSCHEMADOC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		RowLimit:        envInt("JSONSCHEMADOC_ROW_LIMIT", 100),
		MaxLimit:        envInt("JSONSCHEMADOC_MAX_LIMIT", 1000),
		MaxInlineSize:   int64(envInt("JSONSCHEMADOC_MAX_INLINE_SIZE", 10*1024*1024)),
		AllowPrivateIPs: envBool("JSONSCHEMADOC_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
