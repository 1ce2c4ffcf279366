package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/xlkit/libdiff"
	"github.com/signadot/xlkit/vba"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func udfCmd(cfg *UDFConfig, cc *cli.Context, args []string) error {
	args, err := cfg.UDF.Parse(cc, args)
	if err != nil {
		cfg.UDF.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: udf requires one definitions file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	m, err := loadUDFModule(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	if cfg.VBName != "" {
		m.VBName = cfg.VBName
	}
	var opts []vba.Option
	if cfg.Spaces > 0 {
		opts = append(opts, vba.WithIndent(strings.Repeat(" ", cfg.Spaces)))
	}
	buf := bytes.NewBuffer(nil)
	if err := vba.WriteUDFModule(vba.NewWriter(buf, opts...), m); err != nil {
		return err
	}
	if cfg.Check == "" {
		_, err := cc.Out.Write(buf.Bytes())
		return err
	}
	existing, err := os.ReadFile(cfg.Check)
	if err != nil {
		return err
	}
	if !checkModule(cc.Out, string(existing), buf.String()) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func loadUDFModule(d []byte) (*vba.UDFModule, error) {
	m := &vba.UDFModule{}
	if err := yaml.Unmarshal(d, m); err != nil {
		return nil, err
	}
	return m, nil
}

// checkModule reports whether existing matches generated, writing the
// difference to w when it does not. VBA editors export with CRLF line
// endings, which are ignored.
func checkModule(w io.Writer, existing, generated string) bool {
	existing = strings.ReplaceAll(existing, "\r\n", "\n")
	diff := libdiff.Lines(existing, generated)
	if !libdiff.Changed(diff) {
		return true
	}
	fmt.Fprint(w, diff)
	return false
}
