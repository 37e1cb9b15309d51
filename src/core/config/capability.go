package config

import (
	"github.com/google/uuid"

	"test-grid/src/core/platform"
)

// Distinguished capability keys.
const (
	// CapabilityPlatform and CapabilityPlatformName are kept in sync by
	// FixUpCapabilities.
	CapabilityPlatform     = "platform"
	CapabilityPlatformName = "platformName"

	// CapabilityProtocol tags the protocol a capability is served over.
	CapabilityProtocol = "protocol"

	// ConfigUUIDCapability carries the identifier assigned to each
	// capability at normalization time.
	ConfigUUIDCapability = "grid:CONFIG_UUID"
)

// DefaultProtocol is assumed when a capability declares no protocol.
const DefaultProtocol = "WebDriver"

// Capability declares one environment a node can run, as free-form key/value
// pairs (browser name, version, platform, instance limits).
type Capability map[string]interface{}

// Platform returns the capability's declared platform, or ok == false when
// none is set or the value is unrecognized.
func (c Capability) Platform() (platform.Platform, bool) {
	switch v := c[CapabilityPlatform].(type) {
	case platform.Platform:
		return v, true
	case string:
		return platform.FromString(v)
	default:
		return "", false
	}
}

// FixUpCapabilities fills the platform twins, the protocol tag and a fresh
// config UUID on every capability. The platform resolution prefers an
// explicit platformName, then an explicit platform, then this machine's
// platform; both twins end up equal whenever only one was set. The UUID is
// always regenerated. A nil capability list is left alone.
func (c *NodeConfig) FixUpCapabilities() {
	if c.Capabilities == nil {
		return // assumes the caller set it/wants it this way
	}

	current := string(platform.Current())
	for _, cap := range c.Capabilities {
		resolved := firstSet(cap[CapabilityPlatformName], cap[CapabilityPlatform], current)
		cap[CapabilityPlatform] = resolved
		cap[CapabilityPlatformName] = resolved

		if cap[CapabilityProtocol] == nil {
			cap[CapabilityProtocol] = DefaultProtocol
		}

		cap[ConfigUUIDCapability] = uuid.NewString()
	}
}

// DropIncompatibleCapabilities removes capabilities that cannot run on this
// machine's platform family. Disabled unless platform verification is on; a
// capability survives when its platform is ANY or belongs to the current
// family. Declaration order is preserved.
func (c *NodeConfig) DropIncompatibleCapabilities() {
	if !c.EnablePlatformVerification {
		return
	}
	if c.Capabilities == nil {
		return // assumes the caller set it/wants it this way
	}

	current := platform.Current()
	family := current.Family()
	if family == "" {
		family = current
	}

	kept := make([]Capability, 0, len(c.Capabilities))
	for _, cap := range c.Capabilities {
		p, ok := cap.Platform()
		if !ok {
			continue
		}
		if p == platform.Any || p.Is(family) {
			kept = append(kept, cap)
		}
	}
	c.Capabilities = kept
}

// firstSet returns the first non-nil value.
func firstSet(values ...interface{}) interface{} {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
