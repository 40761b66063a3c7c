package cli

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// normalizeErrors turns nil lists into empty ones so valid fields print as [].
func normalizeErrors(errs map[string][]string) map[string][]string {
	out := make(map[string][]string, len(errs))
	for code, msgs := range errs {
		if msgs == nil {
			msgs = []string{}
		}
		out[code] = msgs
	}
	return out
}
