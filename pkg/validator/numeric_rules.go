package validator

// Min fails when a numeric value is below Params["min"].
// Numeric strings are compared by value.
func Min(value any, rule Rule) bool {
	return compareNumber(value, rule, "min", func(v, limit float64) bool { return v < limit })
}

// Max fails when a numeric value is above Params["max"].
func Max(value any, rule Rule) bool {
	return compareNumber(value, rule, "max", func(v, limit float64) bool { return v > limit })
}

func compareNumber(value any, rule Rule, param string, fails func(v, limit float64) bool) bool {
	if IsEmpty(value) {
		return false
	}
	limit, err := FloatParam(rule, param)
	if err != nil {
		return false
	}
	v, ok := toFloat(value)
	if !ok {
		// Not a number at all; a "numeric" rule is the place to reject that.
		return false
	}
	return fails(v, limit)
}
