package cli

import (
	"github.com/spf13/cobra"

	"test-grid/src/core/config"
	"test-grid/src/core/logger"
)

// newLogger builds a logger from the root command's persistent flags.
func newLogger(cmd *cobra.Command) *logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	debug, _ := cmd.Flags().GetBool("debug")
	return logger.New(level, debug)
}

// loadNodeConfig assembles the node configuration from its sources in
// precedence order: built-in defaults, then the --node-config file, then
// GRID_NODE_* environment variables, then explicitly set CLI flags.
func loadNodeConfig(cmd *cobra.Command) (*config.NodeConfig, error) {
	var cfg *config.NodeConfig
	path, _ := cmd.Flags().GetString("node-config")
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.NewNodeConfig()
	}

	ApplyEnvironment(cfg)
	ApplyFlagOverrides(cfg, cmd.Flags())
	return cfg, nil
}

// finalizeNodeConfig runs the fix-up pipeline after all merges are done:
// capabilities are normalized and filtered, the node host sentinels are
// resolved, and the hub endpoint and advertised address are computed.
func finalizeNodeConfig(cfg *config.NodeConfig, log *logger.Logger) (config.HostPort, error) {
	cfg.FixUpCapabilities()
	cfg.DropIncompatibleCapabilities()

	if err := cfg.FixUpHost(); err != nil {
		return config.HostPort{}, err
	}

	hub, err := cfg.HubEndpoint()
	if err != nil {
		return config.HostPort{}, err
	}

	log.Info("hub endpoint: %s", hub)
	log.Info("advertised address: %s", cfg.AdvertisedAddress())
	log.Debug("capabilities after fix-up: %d", len(cfg.Capabilities))
	return hub, nil
}
