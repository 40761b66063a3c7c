package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// patternCacheSize bounds the compiled expressions kept across all forms.
const patternCacheSize = 256

var patternCache = cache.NewLRUCache[string, *regexp.Regexp](patternCacheSize)

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Put(pattern, re)
	return re, nil
}

// Pattern fails when the string value does not match Params["pattern"].
// An invalid expression never fails.
func Pattern(value any, rule Rule) bool {
	if IsEmpty(value) {
		return false
	}
	pattern, err := StringParam(rule, "pattern")
	if err != nil {
		return false
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return false
	}
	s, ok := toString(value)
	if !ok {
		return false
	}
	return !re.MatchString(s)
}

// NoWhitespace fails when the string contains any whitespace.
func NoWhitespace(value any, _ Rule) bool {
	s, ok := toString(value)
	if !ok || s == "" {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// ASCIIOnly fails when the string contains characters outside ASCII.
func ASCIIOnly(value any, _ Rule) bool {
	s, ok := toString(value)
	if !ok {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
