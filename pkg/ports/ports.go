// Package ports resolves exposed port numbers from router listen addresses.
//
// Router configuration carries listen addresses as free-form "host:port"
// strings. The manifest only needs the port, and the configuration is
// untrusted: the field may be missing, empty, or mangled. Every lookup
// therefore resolves to a usable port, falling back to a documented
// default instead of failing.
package ports

import (
	"strconv"
	"strings"
)

// Fallback ports substituted when the corresponding listen address is
// absent from configuration or carries no usable port.
const (
	DefaultHealthPort  = 8088
	DefaultMetricsPort = 9090
)

// Parse extracts the port number from a host:port listen address.
//
// The address is split on ':' and the last segment is taken as the port
// candidate. A bracketed IPv6 address without an explicit port therefore
// yields its final address group, not a port; this truncation matches the
// upstream chart and is kept intentionally.
//
// The second return is false when the address has no ':' at all, or when
// the trailing segment is not a non-negative integer. That is the normal
// signal for "no port here", not an error.
func Parse(address string) (int, bool) {
	segments := strings.Split(address, ":")
	if len(segments) < 2 {
		return 0, false
	}

	port, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil || port < 0 {
		return 0, false
	}

	return port, true
}

// Resolve returns the exposed port for a listen address read from
// configuration. present reports whether the field existed at all; an
// absent field resolves to the fallback without inspecting the address.
// A present but unparseable address also resolves to the fallback.
func Resolve(address string, present bool, fallback int) int {
	if !present {
		return fallback
	}

	if port, ok := Parse(address); ok {
		return port
	}

	return fallback
}
