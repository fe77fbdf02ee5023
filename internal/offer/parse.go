package offer

import (
	"encoding/json"
	"strings"
)

// ParseOrderConfig decodes the raw order-level configuration blob. Absent,
// blank, malformed, or wrong-shaped input yields an empty record; it never
// returns an error and never a partially populated record.
func ParseOrderConfig(raw *string) OrderConfig {
	value := trimmed(raw)
	if value == "" {
		return OrderConfig{}
	}
	var bundles []BundleOffer
	if err := json.Unmarshal([]byte(value), &bundles); err != nil {
		return OrderConfig{}
	}
	return OrderConfig{Bundles: bundles}
}

// ParseLineConfig decodes the raw line-level configuration blob with the
// same fail-safe contract as ParseOrderConfig.
func ParseLineConfig(raw *string) LineConfig {
	value := trimmed(raw)
	if value == "" {
		return LineConfig{}
	}
	var cfg LineConfig
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return LineConfig{}
	}
	return cfg
}

func trimmed(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}
