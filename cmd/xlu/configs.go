package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/xlkit/dttm"
	"github.com/signadot/xlkit/format"
	"github.com/signadot/xlkit/overlay"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color output'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		var f format.Format
		if err := f.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func unitFunc(up *dttm.Unit) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		if err := up.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return *up, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.YAMLFormat
}

// useColor honours an explicit -color and otherwise colors only terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return cfg.Color
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type RGBConfig struct {
	*MainConfig
	RGB *cli.Command
}

type IntConfig struct {
	*MainConfig
	Int *cli.Command
}

type DupesConfig struct {
	*MainConfig
	Trim bool `cli:"name=t aliases=trim desc='trim surrounding space from lines'"`

	Dupes *cli.Command
}

type TSConfig struct {
	*MainConfig
	Unit dttm.Unit

	TS *cli.Command
}

type UDFConfig struct {
	*MainConfig
	VBName string `cli:"name=n aliases=name desc='VBA module name'"`
	Check  string `cli:"name=check desc='existing module file to compare against'"`
	Spaces int    `cli:"name=spaces desc='indent with this many spaces instead of a tab'"`

	UDF *cli.Command
}

type OverlayConfig struct {
	*MainConfig
	Patch string `cli:"name=p aliases=patch desc='JSON merge patch file applied first'"`

	Overrides map[string]overlay.Entry[any]

	Overlay *cli.Command
}
