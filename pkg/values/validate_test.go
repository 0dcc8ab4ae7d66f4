package values

import (
	"strings"
	"testing"

	"github.com/dragonbear-os/router/pkg/routerconfig"
)

func validValues() *Values {
	v := DefaultValues()
	v.Service.Port = 8080
	v.Router.Configuration = routerconfig.Config{
		"health_check": map[string]any{"listen": ":8088"},
	}
	return v
}

func TestValidateAcceptsGoodValues(t *testing.T) {
	va := NewValidator()
	if err := va.Validate(validValues()); err != nil {
		t.Fatalf("validate: %v\n%s", err, va.Report())
	}
	if va.HasErrors() {
		t.Fatalf("unexpected errors: %v", va.Errors)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Values)
		want   string
	}{
		{"missing name", func(v *Values) { v.Name = "" }, "name is required"},
		{"uppercase name", func(v *Values) { v.Name = "Router" }, "lowercase"},
		{"bad namespace", func(v *Values) { v.Namespace = "Default!" }, "namespace"},
		{"unknown service type", func(v *Values) { v.Service.Type = "External" }, "service.type"},
		{"port zero", func(v *Values) { v.Service.Port = 0 }, "out of range"},
		{"port too large", func(v *Values) { v.Service.Port = 70000 }, "out of range"},
		{"empty selector", func(v *Values) { v.Selector = nil }, "selector"},
		{"empty selector value", func(v *Values) { v.Selector = map[string]string{"app": ""} }, "non-empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validValues()
			tt.mutate(v)

			va := NewValidator()
			if err := va.Validate(v); err == nil {
				t.Fatal("expected validation to fail")
			}

			found := false
			for _, e := range va.Errors {
				if strings.Contains(e, tt.want) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("no error mentioning %q in %v", tt.want, va.Errors)
			}
		})
	}
}

func TestValidateWarnsOnMissingListenAddresses(t *testing.T) {
	v := validValues()
	v.Router.Configuration = nil
	v.Metrics.Enabled = true

	va := NewValidator()
	if err := va.Validate(v); err != nil {
		t.Fatalf("warnings must not fail validation: %v", err)
	}
	if len(va.Warnings) != 2 {
		t.Fatalf("expected health and metrics warnings, got %v", va.Warnings)
	}
}

func TestValidateWarnsOnUnexposedMetrics(t *testing.T) {
	v := validValues()
	v.Router.Configuration.Set([]string{"telemetry", "metrics", "prometheus", "listen"}, ":9090")
	v.Metrics.Enabled = false

	va := NewValidator()
	if err := va.Validate(v); err != nil {
		t.Fatalf("validate: %v", err)
	}

	found := false
	for _, w := range va.Warnings {
		if strings.Contains(w, "metrics.enabled is false") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unexposed-metrics warning, got %v", va.Warnings)
	}
}

func TestReport(t *testing.T) {
	va := NewValidator()
	v := validValues()
	v.Name = ""
	_ = va.Validate(v)

	report := va.Report()
	if !strings.Contains(report, "ERRORS:") || !strings.Contains(report, "name is required") {
		t.Fatalf("unexpected report:\n%s", report)
	}
}
