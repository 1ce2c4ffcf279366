package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/xlkit/debug"

	"github.com/scott-cotton/cli"
)

func xluMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	if debug.CLI() {
		debug.Logf("xlu %s %v\n", args[0], args[1:])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// openArgs returns readers for files, with "-" or no files meaning in.
func openArgs(in io.Reader, files []string) ([]io.Reader, func(), error) {
	if len(files) == 0 {
		return []io.Reader{in}, func() {}, nil
	}
	var (
		rs      []io.Reader
		closers []io.Closer
	)
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	for _, file := range files {
		if file == "-" {
			rs = append(rs, in)
			continue
		}
		f, err := os.Open(file)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("error opening %s: %w", file, err)
		}
		rs = append(rs, f)
		closers = append(closers, f)
	}
	return rs, closeAll, nil
}
