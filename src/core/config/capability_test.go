package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"test-grid/src/core/platform"
)

// otherFamilyPlatform returns a platform guaranteed not to match the current
// machine's family.
func otherFamilyPlatform() string {
	if platform.Current().Is(platform.Windows) {
		return string(platform.Linux)
	}
	return string(platform.Win10)
}

func TestFixUpCapabilitiesPlatformTwins(t *testing.T) {
	current := string(platform.Current())

	cfg := &NodeConfig{Capabilities: []Capability{
		{"browserName": "chrome", CapabilityPlatform: "WIN10"},
		{"browserName": "firefox", CapabilityPlatformName: "LINUX"},
		{"browserName": "MicrosoftEdge"},
	}}
	cfg.FixUpCapabilities()

	// only platform set: both twins take it
	assert.Equal(t, "WIN10", cfg.Capabilities[0][CapabilityPlatform])
	assert.Equal(t, "WIN10", cfg.Capabilities[0][CapabilityPlatformName])

	// only platformName set: it wins for both
	assert.Equal(t, "LINUX", cfg.Capabilities[1][CapabilityPlatform])
	assert.Equal(t, "LINUX", cfg.Capabilities[1][CapabilityPlatformName])

	// neither set: both take the detected platform
	assert.Equal(t, current, cfg.Capabilities[2][CapabilityPlatform])
	assert.Equal(t, current, cfg.Capabilities[2][CapabilityPlatformName])
}

func TestFixUpCapabilitiesPlatformNameWinsOverPlatform(t *testing.T) {
	cfg := &NodeConfig{Capabilities: []Capability{
		{CapabilityPlatform: "WIN10", CapabilityPlatformName: "LINUX"},
	}}
	cfg.FixUpCapabilities()

	assert.Equal(t, "LINUX", cfg.Capabilities[0][CapabilityPlatform])
	assert.Equal(t, "LINUX", cfg.Capabilities[0][CapabilityPlatformName])
}

func TestFixUpCapabilitiesProtocol(t *testing.T) {
	cfg := &NodeConfig{Capabilities: []Capability{
		{"browserName": "chrome"},
		{"browserName": "firefox", CapabilityProtocol: "CustomWire"},
	}}
	cfg.FixUpCapabilities()

	assert.Equal(t, DefaultProtocol, cfg.Capabilities[0][CapabilityProtocol])
	assert.Equal(t, "CustomWire", cfg.Capabilities[1][CapabilityProtocol])
}

func TestFixUpCapabilitiesAlwaysRegeneratesUUID(t *testing.T) {
	cfg := &NodeConfig{Capabilities: []Capability{{"browserName": "chrome"}}}
	cfg.FixUpCapabilities()

	first, ok := cfg.Capabilities[0][ConfigUUIDCapability].(string)
	require.True(t, ok)
	require.NotEmpty(t, first)

	cfg.FixUpCapabilities()
	second := cfg.Capabilities[0][ConfigUUIDCapability].(string)
	assert.NotEqual(t, first, second)
}

func TestFixUpCapabilitiesNilListIsNoOp(t *testing.T) {
	cfg := &NodeConfig{}
	cfg.FixUpCapabilities()
	assert.Nil(t, cfg.Capabilities)
}

func TestDropCapabilitiesDisabledIsNoOp(t *testing.T) {
	caps := []Capability{
		{"browserName": "chrome", CapabilityPlatform: otherFamilyPlatform()},
		{"browserName": "firefox"},
	}
	cfg := &NodeConfig{Capabilities: caps}
	cfg.DropIncompatibleCapabilities()

	// round-trip: descriptors with no platform survive too
	assert.Equal(t, caps, cfg.Capabilities)
}

func TestDropCapabilitiesEnabled(t *testing.T) {
	cfg := &NodeConfig{
		EnablePlatformVerification: true,
		Capabilities: []Capability{
			{"browserName": "chrome", CapabilityPlatform: "ANY"},
			{"browserName": "firefox", CapabilityPlatform: string(platform.Current())},
			{"browserName": "MicrosoftEdge", CapabilityPlatform: otherFamilyPlatform()},
			{"browserName": "safari"},
		},
	}
	cfg.DropIncompatibleCapabilities()

	require.Len(t, cfg.Capabilities, 2)
	// ANY always survives, order is preserved
	assert.Equal(t, "chrome", cfg.Capabilities[0]["browserName"])
	assert.Equal(t, "firefox", cfg.Capabilities[1]["browserName"])
}

func TestDropCapabilitiesNoPlatformIsDropped(t *testing.T) {
	cfg := &NodeConfig{
		EnablePlatformVerification: true,
		Capabilities:               []Capability{{"browserName": "chrome"}},
	}
	cfg.DropIncompatibleCapabilities()
	assert.Empty(t, cfg.Capabilities)
}

func TestDropCapabilitiesFamilyMatch(t *testing.T) {
	current := platform.Current()
	family := current.Family()
	if family == "" {
		family = current
	}

	cfg := &NodeConfig{
		EnablePlatformVerification: true,
		Capabilities:               []Capability{{CapabilityPlatform: string(family)}},
	}
	cfg.DropIncompatibleCapabilities()
	assert.Len(t, cfg.Capabilities, 1)
}

func TestDropCapabilitiesNilListIsNoOp(t *testing.T) {
	cfg := &NodeConfig{EnablePlatformVerification: true}
	cfg.DropIncompatibleCapabilities()
	assert.Nil(t, cfg.Capabilities)
}
