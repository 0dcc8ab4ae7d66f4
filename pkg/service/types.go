// Package service assembles the Service manifest exposing a router
// deployment: an ordered list of named, typed ports plus pass-through
// metadata, ready for YAML rendering.
package service

// ProtocolTCP tags every exposed port. The router speaks nothing else.
const ProtocolTCP = "TCP"

// Well-known endpoint names. targetPort always references the container
// port by its symbolic name, so an exposed port number may differ from
// the port the router actually listens on.
const (
	PortNameHTTP    = "http"
	PortNameHealth  = "health"
	PortNameMetrics = "metrics"
)

// Port is one named, typed endpoint exposed by the Service.
type Port struct {
	Name       string `yaml:"name"`
	Port       int    `yaml:"port"`
	TargetPort string `yaml:"targetPort"`
	Protocol   string `yaml:"protocol"`
}

// Metadata identifies the Service and carries pass-through labels and
// annotations.
type Metadata struct {
	Name        string            `yaml:"name"`
	Namespace   string            `yaml:"namespace,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// Spec is the Service specification.
type Spec struct {
	Type     string            `yaml:"type"`
	Selector map[string]string `yaml:"selector"`
	Ports    []Port            `yaml:"ports"`
}

// Manifest is a complete Service document.
type Manifest struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}
