package netutil

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// NonLoopbackIP returns the first IPv4 address of this machine that is not a
// loopback address, preferring interfaces that are up.
func NonLoopbackIP() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to list network interfaces: %w", err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil || ip.IsLoopback() {
				continue
			}
			if ip4 := ip.To4(); ip4 != nil {
				return ip4.String(), nil
			}
		}
	}

	return "", fmt.Errorf("no non-loopback IPv4 address found on this machine")
}

// NonLoopbackHostname returns the host name behind the machine's non-loopback
// address, falling back to the OS host name when reverse lookup fails.
func NonLoopbackHostname() (string, error) {
	ip, err := NonLoopbackIP()
	if err != nil {
		return "", err
	}

	if names, err := net.LookupAddr(ip); err == nil && len(names) > 0 {
		return strings.TrimSuffix(names[0], "."), nil
	}

	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to determine host name: %w", err)
	}
	return name, nil
}
