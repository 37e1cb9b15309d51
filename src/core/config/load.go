package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultNodeConfig is the built-in defaults resource every node
// configuration starts from.
//
//go:embed default_node_config.json
var defaultNodeConfig []byte

// NewNodeConfig creates a node configuration populated from the built-in
// defaults. The defaults resource ships with the binary; if it is broken the
// process cannot start, so this panics rather than returning an error.
func NewNodeConfig() *NodeConfig {
	cfg, err := parseNodeConfig(defaultNodeConfig)
	if err != nil {
		panic(fmt.Sprintf("built-in node config defaults are unreadable: %v", err))
	}
	cfg.Role = RoleNode
	return cfg
}

// LoadFromFile loads a node configuration from a JSON or YAML file (by
// extension), merged over the built-in defaults.
func LoadFromFile(path string) (*NodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigParseError{Err: fmt.Errorf("failed to read config file %s: %w", path, err)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, &ConfigParseError{Err: fmt.Errorf("failed to parse config YAML %s: %w", path, err)}
		}
	}

	return LoadFromJSON(data)
}

// LoadFromJSON builds a node configuration from a JSON document: the
// document is validated (a hub URL or a complete hubHost/hubPort pair must
// be present), merged over the defaults, and the hub and self-address fields
// are then re-applied verbatim so they reflect the document exactly rather
// than merge semantics.
func LoadFromJSON(data []byte) (*NodeConfig, error) {
	parsed, err := parseNodeConfig(data)
	if err != nil {
		var legacy *LegacyConfigShapeError
		if errors.As(err, &legacy) {
			return nil, err
		}
		return nil, &ConfigParseError{Err: err}
	}

	// endpoint completeness is checked before any merge happens
	if parsed.Hub == nil {
		if parsed.HubHost == nil {
			return nil, &IncompleteEndpointError{Missing: "hubHost"}
		}
		if parsed.HubPort == nil {
			return nil, &IncompleteEndpointError{Missing: "hubPort"}
		}
	}

	cfg := NewNodeConfig()
	cfg.Merge(parsed)

	// copy non-mergeable fields
	if parsed.Hub != nil {
		cfg.Hub = parsed.Hub
	} else {
		cfg.Hub = strPtr(fmt.Sprintf("http://%s:%d", *parsed.HubHost, *parsed.HubPort))
	}
	if parsed.HubHost != nil {
		cfg.HubHost = parsed.HubHost
	}
	if parsed.HubPort != nil {
		cfg.HubPort = parsed.HubPort
	}
	if parsed.Host != nil {
		cfg.Host = parsed.Host
	}
	if parsed.Port != nil {
		cfg.Port = parsed.Port
	}
	cfg.EnablePlatformVerification = parsed.EnablePlatformVerification

	return cfg, nil
}

// parseNodeConfig decodes a JSON document into a NodeConfig, rejecting the
// legacy flat shape. Unknown keys are ignored.
func parseNodeConfig(data []byte) (*NodeConfig, error) {
	var cfg NodeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.LegacyConfiguration) > 0 && !bytes.Equal(cfg.LegacyConfiguration, []byte("null")) {
		return nil, &LegacyConfigShapeError{}
	}
	cfg.LegacyConfiguration = nil
	return &cfg, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one
// decode path and one set of field names.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
