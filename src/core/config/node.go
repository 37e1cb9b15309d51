package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// RoleNode tags a configuration as belonging to a node process, as opposed
// to a hub.
const RoleNode = "node"

// GridConfig holds the fields shared by every grid process configuration.
// All fields except Role are optional; nil means the value is unset and a
// later merge or default may fill it.
type GridConfig struct {
	// Role identifies the process kind ("node" or "hub").
	Role string `json:"role,omitempty"`

	// Host is the address this process advertises. For nodes the sentinels
	// "ip" and "host" request dynamic resolution from the machine's
	// non-loopback address.
	Host *string `json:"host,omitempty"`

	// Port is the port this process listens on.
	Port *int `json:"port,omitempty"`

	// MaxSession caps the number of concurrent sessions.
	MaxSession *int `json:"maxSession,omitempty"`

	// Timeout is the session idle timeout in seconds.
	Timeout *int `json:"timeout,omitempty"`

	// Debug enables debug logging.
	Debug *bool `json:"debug,omitempty"`

	// Log is the log file path.
	Log *string `json:"log,omitempty"`
}

// Merge folds the set fields of other into g. Role is fixed at construction
// and never merged.
func (g *GridConfig) Merge(other *GridConfig) {
	if other == nil {
		return
	}
	if mergeable(other.Host, g.Host) {
		g.Host = other.Host
	}
	if mergeable(other.Port, g.Port) {
		g.Port = other.Port
	}
	if mergeable(other.MaxSession, g.MaxSession) {
		g.MaxSession = other.MaxSession
	}
	if mergeable(other.Timeout, g.Timeout) {
		g.Timeout = other.Timeout
	}
	if mergeable(other.Debug, g.Debug) {
		g.Debug = other.Debug
	}
	if mergeable(other.Log, g.Log) {
		g.Log = other.Log
	}
}

func (g *GridConfig) appendFields(m map[string]interface{}) {
	put(m, "role", &g.Role)
	put(m, "host", g.Host)
	put(m, "port", g.Port)
	put(m, "maxSession", g.MaxSession)
	put(m, "timeout", g.Timeout)
	put(m, "debug", g.Debug)
	put(m, "log", g.Log)
}

// NodeConfig is the resolved configuration for one node process: where the
// hub is, what this node advertises, and which capabilities it offers.
type NodeConfig struct {
	GridConfig

	// Hub is the hub URL. Takes precedence over HubHost/HubPort.
	Hub *string `json:"hub,omitempty"`

	// HubHost and HubPort locate the hub when no URL is given; they must be
	// set together.
	HubHost *string `json:"hubHost,omitempty"`
	HubPort *int    `json:"hubPort,omitempty"`

	// ID identifies this node; generated by the owning process when unset.
	ID *string `json:"id,omitempty"`

	// Capabilities lists the environments this node can run, in declaration
	// order. The node owns this slice exclusively.
	Capabilities []Capability `json:"capabilities,omitempty"`

	// RemoteHost overrides the derived advertised address
	// ("http://{host}:{port}"). Not read from config files.
	RemoteHost *string `json:"-"`

	// Tunables. Unset means the default applies.
	DownPollingLimit           *int    `json:"downPollingLimit,omitempty"`
	NodePolling                *int    `json:"nodePolling,omitempty"`
	NodeStatusCheckTimeout     *int    `json:"nodeStatusCheckTimeout,omitempty"`
	Proxy                      *string `json:"proxy,omitempty"`
	Register                   *bool   `json:"register,omitempty"`
	RegisterCycle              *int    `json:"registerCycle,omitempty"`
	UnregisterIfStillDownAfter *int    `json:"unregisterIfStillDownAfter,omitempty"`

	// EnablePlatformVerification gates dropping capabilities that cannot run
	// on this machine's platform family.
	EnablePlatformVerification bool `json:"enablePlatformVerification,omitempty"`

	// LegacyConfiguration catches the retired flat config shape so parsing
	// can reject it with a pointed error. It is never merged and never set on
	// a valid configuration.
	LegacyConfiguration json.RawMessage `json:"configuration,omitempty"`

	hubOnce     sync.Once
	hubEndpoint HostPort
	hubErr      error

	advertisedOnce sync.Once
	advertised     string
}

// Merge folds the set fields of other into c, per the override rules in
// mergeable. The legacy configuration payload is exempt and stays absent.
func (c *NodeConfig) Merge(other *NodeConfig) {
	if other == nil {
		return
	}
	c.GridConfig.Merge(&other.GridConfig)

	if mergeableList(other.Capabilities) {
		c.Capabilities = other.Capabilities
	}
	if mergeable(other.DownPollingLimit, c.DownPollingLimit) {
		c.DownPollingLimit = other.DownPollingLimit
	}
	if mergeable(other.Hub, c.Hub) {
		c.Hub = other.Hub
	}
	if mergeable(other.HubHost, c.HubHost) {
		c.HubHost = other.HubHost
	}
	if mergeable(other.HubPort, c.HubPort) {
		c.HubPort = other.HubPort
	}
	if mergeable(other.ID, c.ID) {
		c.ID = other.ID
	}
	if mergeable(other.NodePolling, c.NodePolling) {
		c.NodePolling = other.NodePolling
	}
	if mergeable(other.NodeStatusCheckTimeout, c.NodeStatusCheckTimeout) {
		c.NodeStatusCheckTimeout = other.NodeStatusCheckTimeout
	}
	if mergeable(other.Proxy, c.Proxy) {
		c.Proxy = other.Proxy
	}
	if mergeable(other.Register, c.Register) {
		c.Register = other.Register
	}
	if mergeable(other.RegisterCycle, c.RegisterCycle) {
		c.RegisterCycle = other.RegisterCycle
	}
	if mergeable(other.RemoteHost, c.RemoteHost) {
		c.RemoteHost = other.RemoteHost
	}
	if mergeable(other.UnregisterIfStillDownAfter, c.UnregisterIfStillDownAfter) {
		c.UnregisterIfStillDownAfter = other.UnregisterIfStillDownAfter
	}

	// never merge LegacyConfiguration. it should always be absent.
}

// RegistersWithHub reports whether this node should register with the hub.
// Unset means yes.
func (c *NodeConfig) RegistersWithHub() bool {
	return c.Register == nil || *c.Register
}

// nodeFieldOrder fixes the key order of ToMap-backed output.
var nodeFieldOrder = []string{
	"role", "host", "port", "maxSession", "timeout", "debug", "log",
	"remoteHost", "hubHost", "hubPort", "id", "capabilities",
	"downPollingLimit", "hub", "nodePolling", "nodeStatusCheckTimeout",
	"proxy", "register", "registerCycle", "unregisterIfStillDownAfter",
	"enablePlatformVerification",
}

// ToMap serializes the full field set for diagnostics and re-emission.
// Unset fields are present with a nil value.
func (c *NodeConfig) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, len(nodeFieldOrder))
	c.GridConfig.appendFields(m)

	put(m, "remoteHost", c.RemoteHost)
	put(m, "hubHost", c.HubHost)
	put(m, "hubPort", c.HubPort)
	put(m, "id", c.ID)
	if c.Capabilities != nil {
		m["capabilities"] = c.Capabilities
	} else {
		m["capabilities"] = nil
	}
	put(m, "downPollingLimit", c.DownPollingLimit)
	put(m, "hub", c.Hub)
	put(m, "nodePolling", c.NodePolling)
	put(m, "nodeStatusCheckTimeout", c.NodeStatusCheckTimeout)
	put(m, "proxy", c.Proxy)
	put(m, "register", c.Register)
	put(m, "registerCycle", c.RegisterCycle)
	put(m, "unregisterIfStillDownAfter", c.UnregisterIfStillDownAfter)
	m["enablePlatformVerification"] = c.EnablePlatformVerification
	return m
}

// String renders the set fields as CLI-style "-key value" pairs.
func (c *NodeConfig) String() string {
	m := c.ToMap()
	var sb strings.Builder
	for _, key := range nodeFieldOrder {
		value, ok := m[key]
		if !ok || value == nil {
			continue
		}
		fmt.Fprintf(&sb, " -%s %v", key, value)
	}
	return strings.TrimSpace(sb.String())
}

// put stores the dereferenced value, or nil for an unset field.
func put[T any](m map[string]interface{}, key string, value *T) {
	if value == nil {
		m[key] = nil
		return
	}
	m[key] = *value
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
