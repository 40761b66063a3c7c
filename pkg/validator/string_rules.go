package validator

// Required fails when the value is empty as defined by IsEmpty.
func Required(value any, _ Rule) bool {
	return IsEmpty(value)
}

// MinLength fails when the value is shorter than Params["min"].
func MinLength(value any, rule Rule) bool {
	return compareLength(value, rule, "min", func(n, limit int) bool { return n < limit })
}

// MaxLength fails when the value is longer than Params["max"].
func MaxLength(value any, rule Rule) bool {
	return compareLength(value, rule, "max", func(n, limit int) bool { return n > limit })
}

// ExactLength fails when the value length differs from Params["len"].
func ExactLength(value any, rule Rule) bool {
	return compareLength(value, rule, "len", func(n, limit int) bool { return n != limit })
}

func compareLength(value any, rule Rule, param string, fails func(n, limit int) bool) bool {
	if IsEmpty(value) {
		return false
	}
	limit, err := IntParam(rule, param)
	if err != nil {
		return false
	}
	n, ok := Length(value)
	if !ok {
		return false
	}
	return fails(n, limit)
}
