package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dragonbear-os/router/pkg/routerconfig"
)

// ParseOverrides parses CLI override strings (--set key=value).
func ParseOverrides(pairs []string) (map[string]string, error) {
	result := make(map[string]string)

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid override format: %s (expected key=value)", pair)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if key == "" {
			return nil, fmt.Errorf("empty key in override: %s", pair)
		}

		result[key] = value
	}

	return result, nil
}

// Apply applies dotted-path overrides on top of the loaded values.
func (v *Values) Apply(overrides map[string]string) error {
	for key, value := range overrides {
		if err := v.applyOne(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (v *Values) applyOne(key, value string) error {
	switch key {
	case "name":
		v.Name = value
		return nil
	case "namespace":
		v.Namespace = value
		return nil
	case "service.type":
		v.Service.Type = value
		return nil
	case "service.port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid service.port override %q: %w", value, err)
		}
		v.Service.Port = port
		return nil
	case "metrics.enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid metrics.enabled override %q: %w", value, err)
		}
		v.Metrics.Enabled = enabled
		return nil
	}

	if rest, ok := cutPrefix(key, "selector."); ok {
		if v.Selector == nil {
			v.Selector = make(map[string]string)
		}
		v.Selector[rest] = value
		return nil
	}

	if rest, ok := cutPrefix(key, "labels."); ok {
		if v.Labels == nil {
			v.Labels = make(map[string]string)
		}
		v.Labels[rest] = value
		return nil
	}

	if rest, ok := cutPrefix(key, "annotations."); ok {
		if v.Annotations == nil {
			v.Annotations = make(map[string]string)
		}
		v.Annotations[rest] = value
		return nil
	}

	if rest, ok := cutPrefix(key, "router.configuration."); ok {
		if v.Router.Configuration == nil {
			v.Router.Configuration = make(routerconfig.Config)
		}
		v.Router.Configuration.Set(strings.Split(rest, "."), value)
		return nil
	}

	return fmt.Errorf("unknown override key: %s", key)
}

// cutPrefix is strings.CutPrefix with an extra guard against empty
// remainders ("selector." with nothing after it).
func cutPrefix(key, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}
