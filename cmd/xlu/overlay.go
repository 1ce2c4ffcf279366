package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/xlkit/debug"
	"github.com/signadot/xlkit/format"
	"github.com/signadot/xlkit/overlay"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func overlayCmd(cfg *OverlayConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Overlay.Parse(cc, args)
	if err != nil {
		cfg.Overlay.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: overlay requires one base file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	base, err := loadBase(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	var patch []byte
	if cfg.Patch != "" {
		patch, err = os.ReadFile(cfg.Patch)
		if err != nil {
			return err
		}
	}
	view, err := buildView(base, patch, cfg.Overrides)
	if err != nil {
		return err
	}
	return writeView(cc.Out, view, cfg.outFormat())
}

func setOptTypeFunc(overrides map[string]overlay.Entry[any]) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		key, val, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
		}
		var v any
		if err := yaml.Unmarshal([]byte(val), &v); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", cli.ErrUsage, key, err)
		}
		overrides[key] = overlay.Set(v)
		return 0, nil
	}
}

func delOptTypeFunc(overrides map[string]overlay.Entry[any]) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if a == "" {
			return nil, fmt.Errorf("%w: empty key", cli.ErrUsage)
		}
		overrides[a] = overlay.Deleted[any]()
		return 0, nil
	}
}

func loadBase(d []byte) (overlay.Map[string, any], error) {
	var m map[string]any
	if err := yaml.Unmarshal(d, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return overlay.Map[string, any](m), nil
}

// buildView applies patch, if any, then overrides on top of it.
func buildView(base overlay.Map[string, any], patch []byte, overrides map[string]overlay.Entry[any]) (*overlay.View[string, any], error) {
	var under overlay.Base[string, any] = base
	if len(patch) != 0 {
		pv, err := overlay.FromMergePatch(base, patch)
		if err != nil {
			return nil, err
		}
		under = pv
	}
	if debug.Overlay() {
		debug.Logf("overlay with %d overrides\n", len(overrides))
	}
	return overlay.New(under, overrides), nil
}

func writeView(w io.Writer, view *overlay.View[string, any], f format.Format) error {
	flat := overlay.Flatten(view)
	var (
		d   []byte
		err error
	)
	if f.IsJSON() {
		d, err = json.MarshalIndent(flat, "", "  ")
		d = append(d, '\n')
	} else {
		d, err = yaml.Marshal(flat)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", f, err)
	}
	_, err = w.Write(d)
	return err
}
