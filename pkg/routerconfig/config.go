// Package routerconfig holds the router's own runtime configuration.
//
// The configuration schema belongs to the router process; this package
// treats the document as an opaque nested mapping and only offers the
// lookups the manifest generator needs. The document is untrusted and
// partial: any field may be absent or carry an unexpected type, and a
// lookup reports that as "absent" rather than failing.
package routerconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a parsed router configuration document.
type Config map[string]any

// Parse parses a router configuration from YAML bytes. Environment
// variables referenced as ${VAR} are expanded first, mirroring how the
// router expands its own configuration file.
func Parse(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse router configuration: %w", err)
	}

	return cfg, nil
}

// ParseFile parses a router configuration from a YAML file.
func ParseFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read router configuration: %w", err)
	}

	return Parse(data)
}

// Lookup walks the nested mapping along path. The second return is false
// when any step is missing or is not itself a mapping.
func (c Config) Lookup(path ...string) (any, bool) {
	var current any = map[string]any(c)

	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// StringAt returns the string value at path. A value of any other type
// reports as absent; nothing is coerced.
func (c Config) StringAt(path ...string) (string, bool) {
	value, ok := c.Lookup(path...)
	if !ok {
		return "", false
	}

	s, ok := value.(string)
	return s, ok
}

// Set writes a string value at path, creating intermediate mappings as
// needed. An existing non-mapping intermediate is replaced. Used by the
// --set override machinery; path must be non-empty.
func (c Config) Set(path []string, value string) {
	m := map[string]any(c)

	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[key] = next
		}
		m = next
	}

	m[path[len(path)-1]] = value
}
