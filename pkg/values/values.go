// Package values models the deployment values a Service manifest is
// rendered from: the identity of the router instance, how it is exposed,
// and the router's own runtime configuration passed through verbatim.
package values

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dragonbear-os/router/pkg/routerconfig"
)

// Values is the full set of deployment values for one router instance.
// Mappings in a values file are merged over the defaults key by key;
// scalars replace their defaults outright.
type Values struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`

	Service  ServiceValues     `yaml:"service"`
	Selector map[string]string `yaml:"selector"`

	// Labels and annotations are attached to the manifest verbatim.
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`

	Metrics MetricsValues `yaml:"metrics"`

	Router RouterValues `yaml:"router"`
}

// ServiceValues describes the Service resource itself.
type ServiceValues struct {
	Type string `yaml:"type"`

	// Port is the externally exposed port for the router's primary
	// traffic endpoint. It is never derived from a listen address.
	Port int `yaml:"port"`
}

// MetricsValues gates the optional metrics endpoint. The toggle is
// independent of whether the router configuration carries a telemetry
// section.
type MetricsValues struct {
	Enabled bool `yaml:"enabled"`
}

// RouterValues carries the router's runtime configuration. The generator
// only reads listen addresses out of it; everything else is opaque.
type RouterValues struct {
	Configuration routerconfig.Config `yaml:"configuration,omitempty"`
}

// DefaultValues returns the values used when no file is supplied.
func DefaultValues() *Values {
	return &Values{
		Name:      "router",
		Namespace: "default",
		Service: ServiceValues{
			Type: "ClusterIP",
			Port: 80,
		},
		Selector: map[string]string{
			"app": "router",
		},
	}
}

// Load loads values from a YAML file, layered over DefaultValues. A
// missing file is not an error; the defaults are returned as-is.
// Environment variables in the file body are expanded before parsing.
func Load(path string) (*Values, error) {
	v := DefaultValues()

	if path == "" {
		path = "values.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return v, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, v); err != nil {
		return nil, fmt.Errorf("failed to parse values file: %w", err)
	}

	return v, nil
}

// Save writes values to a YAML file.
func (v *Values) Save(path string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal values: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write values file: %w", err)
	}

	return nil
}
