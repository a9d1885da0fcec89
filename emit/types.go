package emit

import "errors"

// ErrUnsupportedRange is returned when a PRV's range cannot be translated
// to a concrete type in the target model syntax.
var ErrUnsupportedRange = errors.New("emit: unsupported range")

// Options configures Emit. The zero value is the only supported
// configuration today; it exists so callers (and future range mappings)
// have a stable extension point without breaking Emit's signature.
type Options struct{}

var booleanRange = []string{"true", "false"}

func rangeToType(rng []string) (string, error) {
	if len(rng) == len(booleanRange) {
		match := true
		for i, v := range booleanRange {
			if rng[i] != v {
				match = false

				break
			}
		}
		if match {
			return "Boolean", nil
		}
	}

	return "", ErrUnsupportedRange
}
