package service_test

import (
	"fmt"

	"github.com/dragonbear-os/router/pkg/routerconfig"
	"github.com/dragonbear-os/router/pkg/service"
)

// Example demonstrates assembling the exposed ports for a router whose
// health endpoint listens on a non-default port and whose metrics
// endpoint is left at its default.
func Example() {
	cfg, err := routerconfig.Parse([]byte(`
health_check:
  listen: 127.0.0.1:8090
telemetry:
  metrics:
    prometheus:
      enabled: true
`))
	if err != nil {
		fmt.Printf("parse configuration: %v\n", err)
		return
	}

	for _, p := range service.AssemblePorts(8080, cfg, true) {
		fmt.Printf("%s %d -> %s/%s\n", p.Name, p.Port, p.TargetPort, p.Protocol)
	}

	// Output:
	// http 8080 -> http/TCP
	// health 8090 -> health/TCP
	// metrics 9090 -> metrics/TCP
}
