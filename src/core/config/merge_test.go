package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullNodeConfig() *NodeConfig {
	cfg := &NodeConfig{
		GridConfig: GridConfig{
			Role:       RoleNode,
			Host:       strPtr("node-1.grid.internal"),
			Port:       intPtr(5557),
			MaxSession: intPtr(3),
			Timeout:    intPtr(30),
		},
		Hub:                        strPtr("http://hub.grid.internal:4444"),
		HubHost:                    strPtr("hub.grid.internal"),
		HubPort:                    intPtr(4444),
		ID:                         strPtr("node-1"),
		Capabilities:               []Capability{{"browserName": "chrome"}},
		DownPollingLimit:           intPtr(2),
		NodePolling:                intPtr(5000),
		NodeStatusCheckTimeout:     intPtr(5000),
		Proxy:                      strPtr("grid.proxy.DefaultNodeProxy"),
		Register:                   boolPtr(true),
		RegisterCycle:              intPtr(5000),
		UnregisterIfStillDownAfter: intPtr(60000),
	}
	return cfg
}

func boolPtr(b bool) *bool { return &b }

func TestMergeAbsentOverrideNeverDowngrades(t *testing.T) {
	cfg := fullNodeConfig()
	cfg.Merge(&NodeConfig{})

	assert.Equal(t, "node-1.grid.internal", *cfg.Host)
	assert.Equal(t, 5557, *cfg.Port)
	assert.Equal(t, 3, *cfg.MaxSession)
	assert.Equal(t, "http://hub.grid.internal:4444", *cfg.Hub)
	assert.Equal(t, "hub.grid.internal", *cfg.HubHost)
	assert.Equal(t, 4444, *cfg.HubPort)
	assert.Equal(t, "node-1", *cfg.ID)
	assert.Len(t, cfg.Capabilities, 1)
	assert.Equal(t, 2, *cfg.DownPollingLimit)
	assert.Equal(t, 5000, *cfg.NodePolling)
	assert.Equal(t, 5000, *cfg.NodeStatusCheckTimeout)
	assert.Equal(t, "grid.proxy.DefaultNodeProxy", *cfg.Proxy)
	assert.True(t, *cfg.Register)
	assert.Equal(t, 5000, *cfg.RegisterCycle)
	assert.Equal(t, 60000, *cfg.UnregisterIfStillDownAfter)
}

func TestMergeIncomingWins(t *testing.T) {
	cfg := fullNodeConfig()
	cfg.Merge(&NodeConfig{
		GridConfig: GridConfig{MaxSession: intPtr(10)},
		Hub:        strPtr("http://other-hub:4445"),
		Register:   boolPtr(false),
		ID:         strPtr("node-2"),
	})

	assert.Equal(t, 10, *cfg.MaxSession)
	assert.Equal(t, "http://other-hub:4445", *cfg.Hub)
	assert.False(t, *cfg.Register)
	assert.Equal(t, "node-2", *cfg.ID)
	// untouched fields keep their values
	assert.Equal(t, 5000, *cfg.NodePolling)
}

func TestMergeCapabilitiesReplaceWholesale(t *testing.T) {
	cfg := fullNodeConfig()

	// a present empty list still replaces
	cfg.Merge(&NodeConfig{Capabilities: []Capability{}})
	require.NotNil(t, cfg.Capabilities)
	assert.Empty(t, cfg.Capabilities)

	incoming := []Capability{{"browserName": "firefox"}, {"browserName": "chrome"}}
	cfg.Merge(&NodeConfig{Capabilities: incoming})
	assert.Len(t, cfg.Capabilities, 2)

	// an absent list never clears a present one
	cfg.Merge(&NodeConfig{})
	assert.Len(t, cfg.Capabilities, 2)
}

func TestMergeNilOtherIsNoOp(t *testing.T) {
	cfg := fullNodeConfig()
	cfg.Merge(nil)
	assert.Equal(t, "node-1", *cfg.ID)
}

func TestMergeNeverCarriesLegacyPayload(t *testing.T) {
	cfg := fullNodeConfig()
	cfg.Merge(&NodeConfig{LegacyConfiguration: []byte(`{"old": true}`)})
	assert.Nil(t, cfg.LegacyConfiguration)
}

func TestMergeRoleIsFixed(t *testing.T) {
	cfg := fullNodeConfig()
	cfg.Merge(&NodeConfig{GridConfig: GridConfig{Role: "hub"}})
	assert.Equal(t, RoleNode, cfg.Role)
}
