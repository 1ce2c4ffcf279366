package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Template bool
	Overlay  bool
	CLI      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Template = boolEnv("XLU_DEBUG_TEMPLATE")
	d.Overlay = boolEnv("XLU_DEBUG_OVERLAY")
	d.CLI = boolEnv("XLU_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Template() bool {
	return d.Template
}
func Overlay() bool {
	return d.Overlay
}
func CLI() bool {
	return d.CLI
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
