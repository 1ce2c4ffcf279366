package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/xlkit/rgb"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func rgbCmd(cfg *RGBConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RGB.Parse(cc, args)
	if err != nil {
		cfg.RGB.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rgb requires at least one color integer", cli.ErrUsage)
	}
	color.NoColor = !cfg.useColor(cc.Out)
	return writeRGB(cc.Out, args, !color.NoColor)
}

func writeRGB(w io.Writer, args []string, swatch bool) error {
	for _, arg := range args {
		c, err := parseColor(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		line := fmt.Sprintf("%d %d %d %s", c.R, c.G, c.B, c.Hex())
		if swatch {
			line += " " + c.Swatch("      ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// parseColor accepts integers in any Go literal base and decimals, which
// are truncated toward zero.
func parseColor(s string) (rgb.Color, error) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return rgb.FromPacked(int(i)), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return rgb.Color{}, fmt.Errorf("not a number: %q", s)
	}
	return rgb.FromPacked(rgb.ToInt(rgb.FromFloat(f))), nil
}

func intCmd(cfg *IntConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Int.Parse(cc, args)
	if err != nil {
		cfg.Int.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	n, err := packArgs(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, n)
	return err
}

func packArgs(args []string) (int, error) {
	switch len(args) {
	case 1:
		if !strings.HasPrefix(args[0], "#") {
			return 0, fmt.Errorf("%w: expected #rrggbb, got %q", cli.ErrUsage, args[0])
		}
		c, err := rgb.ParseHex(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return c.Int(), nil
	case 3:
		var ch [3]int
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return 0, fmt.Errorf("%w: channel %q is not an integer", cli.ErrUsage, arg)
			}
			ch[i] = v
		}
		return rgb.ToInt(ch[0], ch[1], ch[2]), nil
	default:
		return 0, fmt.Errorf("%w: int requires r g b or #rrggbb", cli.ErrUsage)
	}
}
