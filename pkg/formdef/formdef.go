package formdef

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Format selects the document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Definition is a parsed form document.
type Definition struct {
	Display       form.Display
	InitialValues map[string]any
	Fields        []validator.Field
}

// document mirrors the on-disk shape. Pointers distinguish omitted display
// options from explicit false values.
type document struct {
	Colon            *bool              `json:"colon" yaml:"colon"`
	Layout           *string            `json:"layout" yaml:"layout"`
	HideRequiredMark *bool              `json:"hideRequiredMark" yaml:"hideRequiredMark"`
	InitialValues    map[string]any     `json:"initialValues" yaml:"initialValues"`
	Fields           []*validator.Field `json:"fields" yaml:"fields"`
}

// FormatFromPath picks JSON for .json files and YAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFile reads and parses the definition at path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form definition: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Load parses a definition from r.
func Load(r io.Reader, format Format) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read form definition: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data, applies display defaults, drops null field entries and
// rejects unknown keys, empty field codes, duplicate field codes and unknown
// layouts.
func Parse(data []byte, format Format) (*Definition, error) {
	var doc document
	if err := decode(data, format, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}

	def := &Definition{
		Display:       form.DefaultDisplay(),
		InitialValues: doc.InitialValues,
		Fields:        make([]validator.Field, 0, len(doc.Fields)),
	}
	if doc.Colon != nil {
		def.Display.Colon = *doc.Colon
	}
	if doc.HideRequiredMark != nil {
		def.Display.HideRequiredMark = *doc.HideRequiredMark
	}
	if doc.Layout != nil {
		switch *doc.Layout {
		case form.LayoutHorizontal, form.LayoutVertical:
			def.Display.Layout = *doc.Layout
		default:
			return nil, fmt.Errorf("%w: unknown layout %q", ErrInvalidDefinition, *doc.Layout)
		}
	}
	if def.InitialValues == nil {
		def.InitialValues = map[string]any{}
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for i, f := range doc.Fields {
		if f == nil {
			continue
		}
		if f.Code == "" {
			return nil, fmt.Errorf("%w: field #%d has no fieldCode", ErrInvalidDefinition, i)
		}
		if _, dup := seen[f.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate field code %q", ErrInvalidDefinition, f.Code)
		}
		for j, r := range f.Rules {
			if r.Kind == "" {
				return nil, fmt.Errorf("%w: field %q rule #%d has no kind", ErrInvalidDefinition, f.Code, j)
			}
		}
		seen[f.Code] = struct{}{}
		def.Fields = append(def.Fields, *f)
	}

	return def, nil
}

// LoadValuesFile reads a flat code-to-value document, such as the values a
// client submitted.
func LoadValuesFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	return ParseValues(data, FormatFromPath(path))
}

// ParseValues decodes a flat code-to-value document. An empty document yields
// an empty map.
func ParseValues(data []byte, format Format) (map[string]any, error) {
	values := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return values, nil
	}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, errors.Join(ErrInvalidValues, err)
		}
	default:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.Join(ErrInvalidValues, err)
		}
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

func decode(data []byte, format Format, doc *document) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
