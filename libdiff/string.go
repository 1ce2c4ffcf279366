package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	DeletePrefix = "-"
	InsertPrefix = "+"
	EqualPrefix  = " "
)

// Lines diffs from and to line by line. Each line of the result carries
// DeletePrefix, InsertPrefix or EqualPrefix. The result is empty when the
// texts are equal.
func Lines(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var buf strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := EqualPrefix
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = InsertPrefix
		case diffpatch.DiffDelete:
			prefix = DeletePrefix
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}

// Changed reports whether a diff produced by Lines has any insertions or
// deletions.
func Changed(diff string) bool {
	for _, ln := range strings.Split(diff, "\n") {
		if strings.HasPrefix(ln, DeletePrefix) || strings.HasPrefix(ln, InsertPrefix) {
			return true
		}
	}
	return false
}
