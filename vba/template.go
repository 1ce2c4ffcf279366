package vba

import (
	"fmt"
	"strings"

	"github.com/signadot/xlkit/debug"

	"github.com/expr-lang/expr"
)

// Env holds the named values available to template placeholders.
type Env map[string]any

// Expand replaces each {expr} in template with the value of expr evaluated
// against env. {{ and }} stand for literal braces. Unbalanced braces, empty
// placeholders and failing expressions are reported as ErrFormat.
func Expand(template string, env Env) (string, error) {
	var buf strings.Builder
	n := len(template)
	for i := 0; i < n; i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < n && template[i+1] == '{' {
				buf.WriteByte('{')
				i++
				continue
			}
			j := strings.IndexByte(template[i+1:], '}')
			if j == -1 {
				return "", fmt.Errorf("%w: unmatched '{' at offset %d in %q", ErrFormat, i, template)
			}
			key := strings.TrimSpace(template[i+1 : i+1+j])
			if key == "" {
				return "", fmt.Errorf("%w: empty placeholder at offset %d in %q", ErrFormat, i, template)
			}
			if strings.IndexByte(key, '{') != -1 {
				return "", fmt.Errorf("%w: nested '{' in placeholder %q", ErrFormat, key)
			}
			x, err := eval(key, env)
			if err != nil {
				return "", err
			}
			if debug.Template() {
				debug.Logf("template %q gave %#v\n", key, x)
			}
			buf.WriteString(literal(x))
			i += j + 1
		case '}':
			if i+1 < n && template[i+1] == '}' {
				buf.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d in %q", ErrFormat, i, template)
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String(), nil
}

// eval checks key against the names in env, so a placeholder naming a
// missing value fails rather than expanding to nothing.
func eval(key string, env Env) (any, error) {
	m := map[string]any(env)
	prg, err := expr.Compile(key, expr.Env(m))
	if err != nil {
		return nil, fmt.Errorf("%w: error compiling %q: %w", ErrFormat, key, err)
	}
	x, err := expr.Run(prg, m)
	if err != nil {
		return nil, fmt.Errorf("%w: error evaluating %q: %w", ErrFormat, key, err)
	}
	return x, nil
}

func literal(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		// VBA spelling
		if x {
			return "True"
		}
		return "False"
	case nil:
		return "Nothing"
	default:
		return fmt.Sprint(x)
	}
}
