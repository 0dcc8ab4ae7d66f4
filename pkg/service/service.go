package service

import (
	"github.com/dragonbear-os/router/pkg/ports"
	"github.com/dragonbear-os/router/pkg/routerconfig"
	"github.com/dragonbear-os/router/pkg/values"
)

// AssemblePorts builds the ordered port list for one router instance.
//
// The order is part of the contract and consumers may depend on it:
// http first, health second, metrics last and only when enabled.
//
// primary is the exposed port for router traffic and is taken as given;
// the loader is responsible for rejecting values without one. The health
// and metrics ports come from the router's own listen addresses, falling
// back to the documented defaults when the configuration omits or
// mangles them.
func AssemblePorts(primary int, cfg routerconfig.Config, metricsEnabled bool) []Port {
	out := []Port{{
		Name:       PortNameHTTP,
		Port:       primary,
		TargetPort: PortNameHTTP,
		Protocol:   ProtocolTCP,
	}}

	health, present := cfg.StringAt("health_check", "listen")
	out = append(out, Port{
		Name:       PortNameHealth,
		Port:       ports.Resolve(health, present, ports.DefaultHealthPort),
		TargetPort: PortNameHealth,
		Protocol:   ProtocolTCP,
	})

	if metricsEnabled {
		listen, present := cfg.StringAt("telemetry", "metrics", "prometheus", "listen")
		out = append(out, Port{
			Name:       PortNameMetrics,
			Port:       ports.Resolve(listen, present, ports.DefaultMetricsPort),
			TargetPort: PortNameMetrics,
			Protocol:   ProtocolTCP,
		})
	}

	return out
}

// Build packages the assembled ports with the pass-through service type,
// selector, labels and annotations into a renderable manifest. It does
// no resolution of its own.
func Build(v *values.Values) *Manifest {
	return &Manifest{
		APIVersion: "v1",
		Kind:       "Service",
		Metadata: Metadata{
			Name:        v.Name,
			Namespace:   v.Namespace,
			Labels:      v.Labels,
			Annotations: v.Annotations,
		},
		Spec: Spec{
			Type:     v.Service.Type,
			Selector: v.Selector,
			Ports:    AssemblePorts(v.Service.Port, v.Router.Configuration, v.Metrics.Enabled),
		},
	}
}
