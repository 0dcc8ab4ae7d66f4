package values

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dragonbear-os/router/pkg/ports"
)

// nameRegex matches DNS-1123 labels, the format the orchestrator requires
// for resource names.
var nameRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

// serviceTypes are the Service types the generator knows how to expose.
var serviceTypes = []string{"ClusterIP", "NodePort", "LoadBalancer"}

// Validator validates deployment values before rendering.
type Validator struct {
	// Warnings are non-fatal issues
	Warnings []string

	// Errors are fatal issues
	Errors []string
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{
		Warnings: make([]string, 0),
		Errors:   make([]string, 0),
	}
}

// Validate validates a set of deployment values.
func (va *Validator) Validate(v *Values) error {
	va.Warnings = make([]string, 0)
	va.Errors = make([]string, 0)

	va.validateMetadata(v)
	va.validateService(v)
	va.validateSelector(v)
	va.validateRouter(v)

	if len(va.Errors) > 0 {
		return fmt.Errorf("validation failed with %d errors", len(va.Errors))
	}

	return nil
}

// HasWarnings returns true if there are warnings
func (va *Validator) HasWarnings() bool {
	return len(va.Warnings) > 0
}

// HasErrors returns true if there are errors
func (va *Validator) HasErrors() bool {
	return len(va.Errors) > 0
}

// Report returns a formatted validation report
func (va *Validator) Report() string {
	var sb strings.Builder

	if len(va.Errors) > 0 {
		sb.WriteString("ERRORS:\n")
		for _, err := range va.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err))
		}
	}

	if len(va.Warnings) > 0 {
		sb.WriteString("\nWARNINGS:\n")
		for _, warn := range va.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn))
		}
	}

	if len(va.Errors) == 0 && len(va.Warnings) == 0 {
		sb.WriteString("Validation passed with no issues.\n")
	}

	return sb.String()
}

func (va *Validator) validateMetadata(v *Values) {
	if v.Name == "" {
		va.Errors = append(va.Errors, "name is required")
	} else if !nameRegex.MatchString(v.Name) {
		va.Errors = append(va.Errors, "name must be lowercase alphanumeric with hyphens")
	}

	if v.Namespace != "" && !nameRegex.MatchString(v.Namespace) {
		va.Errors = append(va.Errors, "namespace must be lowercase alphanumeric with hyphens")
	}
}

func (va *Validator) validateService(v *Values) {
	valid := false
	for _, t := range serviceTypes {
		if v.Service.Type == t {
			valid = true
			break
		}
	}
	if !valid {
		va.Errors = append(va.Errors, fmt.Sprintf("service.type '%s' is invalid (must be one of: %s)", v.Service.Type, strings.Join(serviceTypes, ", ")))
	}

	if v.Service.Port < 1 || v.Service.Port > 65535 {
		va.Errors = append(va.Errors, fmt.Sprintf("service.port %d is out of range (must be 1-65535)", v.Service.Port))
	}
}

func (va *Validator) validateSelector(v *Values) {
	if len(v.Selector) == 0 {
		va.Errors = append(va.Errors, "selector must have at least one label")
		return
	}

	for key, value := range v.Selector {
		if key == "" || value == "" {
			va.Errors = append(va.Errors, "selector keys and values must be non-empty")
			return
		}
	}
}

// validateRouter only warns. Missing or malformed listen addresses are
// resolved with fallback ports at render time, never rejected.
func (va *Validator) validateRouter(v *Values) {
	cfg := v.Router.Configuration

	if _, ok := cfg.StringAt("health_check", "listen"); !ok {
		va.Warnings = append(va.Warnings, fmt.Sprintf("router.configuration.health_check.listen is not set; health port defaults to %d", ports.DefaultHealthPort))
	}

	metricsListen, metricsListenSet := cfg.StringAt("telemetry", "metrics", "prometheus", "listen")

	if v.Metrics.Enabled && !metricsListenSet {
		va.Warnings = append(va.Warnings, fmt.Sprintf("metrics.enabled is true but router.configuration.telemetry.metrics.prometheus.listen is not set; metrics port defaults to %d", ports.DefaultMetricsPort))
	}

	if !v.Metrics.Enabled && metricsListenSet && metricsListen != "" {
		va.Warnings = append(va.Warnings, "router exposes a Prometheus listen address but metrics.enabled is false; no metrics port will be exposed")
	}
}
