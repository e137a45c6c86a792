package commuteroutes

import "strconv"

// max_offset clamp bounds, minutes.
const (
	offsetFloor = 0
	offsetCeil  = 60
)

// effectiveMaxOffset resolves the max_offset query parameter. A missing
// parameter takes the configured default and a non-integer one the
// configured fallback; the result is clamped to [offsetFloor, offsetCeil].
// Out-of-range values are clamped rather than rejected, so the endpoint
// never fails on a bad offset.
func effectiveMaxOffset(raw string, present bool, def, fallback int) int {
	offset := def
	if present {
		if v, err := strconv.Atoi(raw); err != nil {
			offset = fallback
		} else {
			offset = v
		}
	}
	if offset < offsetFloor {
		offset = offsetFloor
	}
	if offset > offsetCeil {
		offset = offsetCeil
	}
	return offset
}
