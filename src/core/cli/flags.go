package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"test-grid/src/core/config"
)

// addNodeFlags registers the node override flags shared by gridctl commands.
func addNodeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("node-config", "", "node config file to load (JSON or YAML)")
	flags.String("hub", "", "hub URL; wins over --hub-host/--hub-port")
	flags.String("hub-host", "", "hub host name or IP")
	flags.Int("hub-port", 0, "hub port")
	flags.String("host", "", `node host, or "ip"/"host" to resolve dynamically`)
	flags.Int("port", 0, "node port")
	flags.String("id", "", "node identifier")
	flags.String("remote-host", "", "address to report to the hub instead of the derived http://host:port")
	flags.Int("max-session", 0, "maximum concurrent sessions")
	flags.String("proxy", "", "proxy strategy name")
	flags.Bool("register", true, "register this node with the hub")
	flags.Int("register-cycle", 0, "re-registration interval in ms")
	flags.Int("node-polling", 0, "hub polling interval in ms")
	flags.Int("node-status-check-timeout", 0, "node status check timeout in ms")
	flags.Int("unregister-if-still-down-after", 0, "how long a node may stay down before unregistering, in ms")
	flags.Int("down-polling-limit", 0, "failed polls before marking the node down")
	flags.Bool("enable-platform-verification", false, "drop capabilities that cannot run on this machine")
}

// ApplyFlagOverrides copies flags the user explicitly set onto the
// configuration. Flags left at their defaults never override.
func ApplyFlagOverrides(cfg *config.NodeConfig, flags *pflag.FlagSet) {
	if flags.Changed("hub") {
		if v, err := flags.GetString("hub"); err == nil {
			cfg.Hub = &v
		}
	}
	if flags.Changed("hub-host") {
		if v, err := flags.GetString("hub-host"); err == nil {
			cfg.HubHost = &v
		}
	}
	if flags.Changed("hub-port") {
		if v, err := flags.GetInt("hub-port"); err == nil {
			cfg.HubPort = &v
		}
	}
	if flags.Changed("host") {
		if v, err := flags.GetString("host"); err == nil {
			cfg.Host = &v
		}
	}
	if flags.Changed("port") {
		if v, err := flags.GetInt("port"); err == nil {
			cfg.Port = &v
		}
	}
	if flags.Changed("id") {
		if v, err := flags.GetString("id"); err == nil {
			cfg.ID = &v
		}
	}
	if flags.Changed("remote-host") {
		if v, err := flags.GetString("remote-host"); err == nil {
			cfg.RemoteHost = &v
		}
	}
	if flags.Changed("max-session") {
		if v, err := flags.GetInt("max-session"); err == nil {
			cfg.MaxSession = &v
		}
	}
	if flags.Changed("proxy") {
		if v, err := flags.GetString("proxy"); err == nil {
			cfg.Proxy = &v
		}
	}
	if flags.Changed("register") {
		if v, err := flags.GetBool("register"); err == nil {
			cfg.Register = &v
		}
	}
	if flags.Changed("register-cycle") {
		if v, err := flags.GetInt("register-cycle"); err == nil {
			cfg.RegisterCycle = &v
		}
	}
	if flags.Changed("node-polling") {
		if v, err := flags.GetInt("node-polling"); err == nil {
			cfg.NodePolling = &v
		}
	}
	if flags.Changed("node-status-check-timeout") {
		if v, err := flags.GetInt("node-status-check-timeout"); err == nil {
			cfg.NodeStatusCheckTimeout = &v
		}
	}
	if flags.Changed("unregister-if-still-down-after") {
		if v, err := flags.GetInt("unregister-if-still-down-after"); err == nil {
			cfg.UnregisterIfStillDownAfter = &v
		}
	}
	if flags.Changed("down-polling-limit") {
		if v, err := flags.GetInt("down-polling-limit"); err == nil {
			cfg.DownPollingLimit = &v
		}
	}
	if flags.Changed("enable-platform-verification") {
		if v, err := flags.GetBool("enable-platform-verification"); err == nil {
			cfg.EnablePlatformVerification = v
		}
	}
}
