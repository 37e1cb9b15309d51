package cli

import (
	"os"
	"strconv"
	"strings"

	"test-grid/src/core/config"
)

// ApplyEnvironment applies GRID_NODE_* environment variable overrides to the
// configuration. Unset variables leave the current values alone; numeric
// variables that do not parse are ignored.
func ApplyEnvironment(cfg *config.NodeConfig) {
	if v := os.Getenv("GRID_NODE_HUB"); v != "" {
		cfg.Hub = &v
	}
	if v := os.Getenv("GRID_NODE_HUB_HOST"); v != "" {
		cfg.HubHost = &v
	}
	if v := os.Getenv("GRID_NODE_HUB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port <= 65535 {
			cfg.HubPort = &port
		}
	}
	if v := os.Getenv("GRID_NODE_HOST"); v != "" {
		cfg.Host = &v
	}
	if v := os.Getenv("GRID_NODE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port <= 65535 {
			cfg.Port = &port
		}
	}
	if v := os.Getenv("GRID_NODE_ID"); v != "" {
		cfg.ID = &v
	}
	if v := os.Getenv("GRID_NODE_MAX_SESSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSession = &n
		}
	}
	if v := os.Getenv("GRID_NODE_PROXY"); v != "" {
		cfg.Proxy = &v
	}
	if v := os.Getenv("GRID_NODE_REGISTER"); v != "" {
		b := parseBoolEnv(v)
		cfg.Register = &b
	}
	if v := os.Getenv("GRID_NODE_ENABLE_PLATFORM_VERIFICATION"); v != "" {
		cfg.EnablePlatformVerification = parseBoolEnv(v)
	}
}

// parseBoolEnv parses boolean values from environment variables
func parseBoolEnv(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes", "on", "t", "y":
		return true
	default:
		return false
	}
}
