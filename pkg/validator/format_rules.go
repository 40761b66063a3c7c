package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// International format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// formatCheck adapts a string predicate into a CheckFunc that skips empty
// values and non-string inputs.
func formatCheck(valid func(string) bool) CheckFunc {
	return func(value any, _ Rule) bool {
		if IsEmpty(value) {
			return false
		}
		s, ok := toString(value)
		if !ok {
			return true
		}
		return !valid(s)
	}
}

// Email fails for addresses that are not a plain addr-spec with a dotted domain.
func Email(value any, rule Rule) bool {
	return formatCheck(validEmail)(value, rule)
}

// URL fails unless the value parses as an absolute URL with scheme and host.
// Params["schemes"] optionally restricts the allowed schemes.
func URL(value any, rule Rule) bool {
	schemes, _ := ListParam(rule, "schemes")
	return formatCheck(func(s string) bool {
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		if len(schemes) == 0 {
			return true
		}
		for _, scheme := range schemes {
			if allowed, ok := scheme.(string); ok && strings.EqualFold(allowed, u.Scheme) {
				return true
			}
		}
		return false
	})(value, rule)
}

// Phone fails for values that are not E.164-like numbers.
func Phone(value any, rule Rule) bool {
	return formatCheck(func(s string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
		return phoneRegex.MatchString(cleaned)
	})(value, rule)
}

// IP fails for values that are not IPv4 or IPv6 addresses.
func IP(value any, rule Rule) bool {
	return formatCheck(func(s string) bool { return net.ParseIP(s) != nil })(value, rule)
}

func Alpha(value any, rule Rule) bool {
	return formatCheck(alphaRegex.MatchString)(value, rule)
}

func Alphanumeric(value any, rule Rule) bool {
	return formatCheck(alphanumericRegex.MatchString)(value, rule)
}

// NumericString fails when the value is neither a number nor a string of digits.
func NumericString(value any, rule Rule) bool {
	if _, ok := value.(string); !ok {
		if _, isNumber := toFloat(value); isNumber {
			return false
		}
	}
	return formatCheck(numericStringRegex.MatchString)(value, rule)
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Bob <bob@example.com>"
	if addr.Address != strings.TrimSpace(value) {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
