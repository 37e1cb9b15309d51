package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"test-grid/src/core/netutil"
)

// DefaultNodeHost and DefaultNodePort fill the advertised address when the
// node's own host/port were never set.
const (
	DefaultNodeHost = "localhost"
	DefaultNodePort = 5555
)

// HostPort is a resolved hub endpoint. Port is -1 when the hub URL carried
// no explicit port.
type HostPort struct {
	Host string
	Port int
}

func (hp HostPort) String() string {
	return fmt.Sprintf("%s:%d", hp.Host, hp.Port)
}

// HubEndpoint resolves the hub's host and port from whichever of the hub
// fields was supplied. The result is computed once per instance and cached
// for its lifetime; concurrent callers share the single resolution.
func (c *NodeConfig) HubEndpoint() (HostPort, error) {
	c.hubOnce.Do(func() {
		c.hubEndpoint, c.hubErr = c.resolveHubEndpoint()
	})
	return c.hubEndpoint, c.hubErr
}

// resolveHubEndpoint applies the precedence: explicit hub URL, then the
// hubHost/hubPort pair, then a terminal re-parse of the raw hub value, which
// only succeeds when a default was pre-populated.
func (c *NodeConfig) resolveHubEndpoint() (HostPort, error) {
	if c.Hub != nil {
		return parseHubURL(*c.Hub)
	}

	if c.HubHost != nil || c.HubPort != nil {
		if c.HubHost == nil {
			return HostPort{}, &IncompleteEndpointError{Missing: "hubHost"}
		}
		if c.HubPort == nil {
			return HostPort{}, &IncompleteEndpointError{Missing: "hubPort"}
		}
		return HostPort{Host: *c.HubHost, Port: *c.HubPort}, nil
	}

	raw := ""
	if c.Hub != nil {
		raw = *c.Hub
	}
	return parseHubURL(raw)
}

// parseHubURL extracts host and port from a hub URL. A value without scheme
// or host is rejected; a missing port yields -1.
func parseHubURL(raw string) (HostPort, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return HostPort{}, &InvalidEndpointError{Raw: raw, Err: err}
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return HostPort{}, &InvalidEndpointError{Raw: raw}
	}

	port := -1
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return HostPort{}, &InvalidEndpointError{Raw: raw, Err: err}
		}
	}
	return HostPort{Host: u.Hostname(), Port: port}, nil
}

// AdvertisedAddress returns the address this node reports to the hub. An
// explicit RemoteHost wins; otherwise host and port are defaulted and the
// address is derived as "http://{host}:{port}". Computed once and cached;
// later field changes do not recompute it.
func (c *NodeConfig) AdvertisedAddress() string {
	c.advertisedOnce.Do(func() {
		if c.RemoteHost != nil {
			c.advertised = *c.RemoteHost
			return
		}
		if c.Host == nil {
			c.Host = strPtr(DefaultNodeHost)
		}
		if c.Port == nil {
			c.Port = intPtr(DefaultNodePort)
		}
		c.advertised = fmt.Sprintf("http://%s:%d", *c.Host, *c.Port)
	})
	return c.advertised
}

// FixUpHost replaces the "ip" and "host" sentinels (and an unset host) with
// this machine's non-loopback address or host name.
func (c *NodeConfig) FixUpHost() error {
	switch {
	case c.Host == nil || strings.EqualFold(*c.Host, "ip"):
		ip, err := netutil.NonLoopbackIP()
		if err != nil {
			return fmt.Errorf("failed to resolve node host: %w", err)
		}
		c.Host = &ip
	case strings.EqualFold(*c.Host, "host"):
		name, err := netutil.NonLoopbackHostname()
		if err != nil {
			return fmt.Errorf("failed to resolve node host name: %w", err)
		}
		c.Host = &name
	}
	return nil
}
