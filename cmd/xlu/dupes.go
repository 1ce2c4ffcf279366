package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/xlkit/dupes"

	"github.com/scott-cotton/cli"
)

func dupesCmd(cfg *DupesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dupes.Parse(cc, args)
	if err != nil {
		cfg.Dupes.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	rs, closeAll, err := openArgs(cc.In, args)
	if err != nil {
		return err
	}
	defer closeAll()
	return writeDupes(cc.Out, rs, cfg.Trim)
}

// maxLineSize bounds the length of a single input line.
const maxLineSize = 64 << 20

func writeDupes(w io.Writer, rs []io.Reader, trim bool) error {
	var lines []string
	for _, r := range rs {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for scanner.Scan() {
			ln := scanner.Text()
			if trim {
				ln = strings.TrimSpace(ln)
			}
			lines = append(lines, ln)
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	for _, ln := range dupes.Sorted(dupes.Of(lines)) {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}
