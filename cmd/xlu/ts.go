package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/signadot/xlkit/dttm"

	"github.com/scott-cotton/cli"
)

const (
	tsLayout      = "2006-01-02T15:04:05"
	tsMicroLayout = "2006-01-02T15:04:05.000000"
)

func tsCmd(cfg *TSConfig, cc *cli.Context, args []string) error {
	args, err := cfg.TS.Parse(cc, args)
	if err != nil {
		cfg.TS.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: ts requires at least one value", cli.ErrUsage)
	}
	return writeTimestamps(cc.Out, cfg.Unit, args)
}

func writeTimestamps(w io.Writer, unit dttm.Unit, args []string) error {
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a 64-bit integer", cli.ErrUsage, arg)
		}
		t, err := dttm.ToTime(dttm.Datetime64{Value: v, Unit: unit})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, isoFormat(t)); err != nil {
			return err
		}
	}
	return nil
}

// isoFormat prints microseconds only when present.
func isoFormat(t time.Time) string {
	if t.Nanosecond() == 0 {
		return t.Format(tsLayout)
	}
	return t.Format(tsMicroLayout)
}
