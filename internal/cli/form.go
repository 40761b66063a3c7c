package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formdef"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// formFlags are shared by submit and validate.
type formFlags struct {
	formPath   string
	valuesPath string
}

// session is a loaded definition bound to a ready controller.
type session struct {
	rt         *Runtime
	controller *form.Controller
}

func openSession(ctx context.Context, rootOpts *RootOptions, flags formFlags, logOut io.Writer) (*session, error) {
	def, err := formdef.LoadFile(flags.formPath)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	if flags.valuesPath != "" {
		if values, err = formdef.LoadValuesFile(flags.valuesPath); err != nil {
			return nil, err
		}
	}

	settings, err := LoadSettings(rootOpts)
	if err != nil {
		return nil, err
	}
	rt, err := NewRuntime(ctx, settings, rootOpts.Verbose, logOut)
	if err != nil {
		return nil, err
	}

	log := rt.Log
	ctrl := form.New(def.Fields,
		form.WithRegistry(rt.Registry),
		form.WithLogger(log),
		form.WithDisplay(def.Display),
	)
	if err := ctrl.Initialize(def.InitialValues); err != nil {
		rt.Close()
		return nil, fmt.Errorf("initialize form: %w", err)
	}
	ctrl.SetFieldsValue(values, nil)

	codes := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		codes = append(codes, f.Code)
	}
	log.Debug("form loaded", logger.Fields(codes))
	return &session{rt: rt, controller: ctrl}, nil
}

func (s *session) Close() {
	s.rt.Close()
}
