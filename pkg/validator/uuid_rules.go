package validator

import (
	"github.com/google/uuid"
)

// UUID fails unless the value is a canonical 36-character UUID. When
// Params["version"] is set, the UUID version must match as well.
// The nil UUID fails unless Params["allowNil"] is true.
func UUID(value any, rule Rule) bool {
	if IsEmpty(value) {
		return false
	}

	var id uuid.UUID
	switch v := value.(type) {
	case uuid.UUID:
		id = v
	case string:
		// Fast rejection before parsing; uuid.Parse also accepts urn and braced forms
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return true
		}
		parsed, err := uuid.Parse(v)
		if err != nil {
			return true
		}
		id = parsed
	default:
		return true
	}

	if id == uuid.Nil {
		allowNil, _ := rule.Param("allowNil")
		return allowNil != true
	}

	if version, err := IntParam(rule, "version"); err == nil {
		return int(id.Version()) != version
	}
	return false
}
