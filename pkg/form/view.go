package form

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Layout values understood by renderers. The engine never interprets them.
const (
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
)

// Display holds cosmetic options passed through untouched to the renderer.
type Display struct {
	Colon            bool   `json:"colon" yaml:"colon"`
	Layout           string `json:"layout" yaml:"layout"`
	HideRequiredMark bool   `json:"hideRequiredMark" yaml:"hideRequiredMark"`
}

// DefaultDisplay returns colon on, horizontal layout, required marks shown.
func DefaultDisplay() Display {
	return Display{Colon: true, Layout: LayoutHorizontal}
}

// FieldView is the per-field tuple handed to the rendering collaborator.
type FieldView struct {
	Field  validator.Field
	Value  any
	Errors []string
}

// Valid reports whether the field currently has no error messages.
func (v FieldView) Valid() bool {
	return len(v.Errors) == 0
}

// Renderer presents field views. Render is called after every state mutation,
// including from the goroutines that apply asynchronous validation results.
type Renderer interface {
	Render(display Display, fields []FieldView)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(display Display, fields []FieldView)

func (f RendererFunc) Render(display Display, fields []FieldView) {
	f(display, fields)
}

func buildView(fields []validator.Field, values map[string]any, errs map[string][]string) []FieldView {
	view := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		if f.Code == "" {
			continue
		}
		view = append(view, FieldView{
			Field:  f,
			Value:  values[f.Code],
			Errors: slices.Clone(errs[f.Code]),
		})
	}
	return view
}
