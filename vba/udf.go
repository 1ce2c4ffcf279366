package vba

import (
	"fmt"
	"strings"
)

// Arg is a worksheet function argument. In YAML an argument may be given
// as its bare name.
type Arg struct {
	Name     string `yaml:"name"`
	Optional bool   `yaml:"optional,omitempty"`
	Vararg   bool   `yaml:"vararg,omitempty"`
}

// UDF describes one user defined worksheet function.
type UDF struct {
	Name         string `yaml:"name"`
	Args         []Arg  `yaml:"args,omitempty"`
	Volatile     bool   `yaml:"volatile,omitempty"`
	CallInWizard bool   `yaml:"callInWizard,omitempty"`
}

// UDFModule is a VBA module of wrappers, each calling Module.Name through
// Py.CallUDF.
type UDFModule struct {
	// VBName is the VBA module name. Defaults to "xlkit_udfs".
	VBName    string `yaml:"vbName,omitempty"`
	Module    string `yaml:"module"`
	Functions []UDF  `yaml:"functions"`
}

func (a *Arg) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	if s, ok := v.(string); ok {
		*a = Arg{Name: s}
		return nil
	}
	type plain Arg
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*a = Arg(p)
	return nil
}

func (m *UDFModule) Validate() error {
	if m.Module == "" {
		return fmt.Errorf("%w: module is required", ErrUDF)
	}
	seen := map[string]bool{}
	for i := range m.Functions {
		f := &m.Functions[i]
		if !isIdent(f.Name) {
			return fmt.Errorf("%w: function %d: bad name %q", ErrUDF, i, f.Name)
		}
		key := strings.ToLower(f.Name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate function %q", ErrUDF, f.Name)
		}
		seen[key] = true
		for j, a := range f.Args {
			if !isIdent(a.Name) {
				return fmt.Errorf("%w: %s: arg %d: bad name %q", ErrUDF, f.Name, j, a.Name)
			}
			if a.Vararg && j != len(f.Args)-1 {
				return fmt.Errorf("%w: %s: only the last argument may be a vararg", ErrUDF, f.Name)
			}
			if a.Vararg && a.Optional {
				return fmt.Errorf("%w: %s: vararg %q cannot be optional", ErrUDF, f.Name, a.Name)
			}
		}
	}
	return nil
}

// WriteUDFModule writes the wrappers for m. Identifiers are case
// insensitive in VBA, so function names must differ ignoring case.
func WriteUDFModule(w *Writer, m *UDFModule) error {
	if err := m.Validate(); err != nil {
		return err
	}
	vbName := m.VBName
	if vbName == "" {
		vbName = "xlkit_udfs"
	}
	if err := w.WriteLine(`Attribute VB_Name = "{name}"`, Env{"name": vbName}); err != nil {
		return err
	}
	if err := w.WriteLine("'Autogenerated code - changes will be lost with next import!", nil); err != nil {
		return err
	}
	for i := range m.Functions {
		if err := w.WriteLine("", nil); err != nil {
			return err
		}
		if err := writeUDF(w, m.Module, &m.Functions[i]); err != nil {
			return fmt.Errorf("error writing %s: %w", m.Functions[i].Name, err)
		}
	}
	return nil
}

func writeUDF(w *Writer, module string, f *UDF) error {
	env := Env{
		"module": module,
		"fn":     f,
	}
	var fixed []string
	vararg := ""
	for _, a := range f.Args {
		if a.Vararg {
			vararg = a.Name
			continue
		}
		fixed = append(fixed, a.Name)
	}
	env["args"] = "Array(" + strings.Join(fixed, ", ") + ")"
	if vararg != "" {
		env["args"] = "argsArray"
	}
	return w.Block("Function "+signature(f), "End Function", func() error {
		if !f.CallInWizard {
			if err := w.WriteLine(`If (Not Application.CommandBars("Standard").Controls(1).Enabled) Then Exit Function`, nil); err != nil {
				return err
			}
		}
		if f.Volatile {
			if err := w.WriteLine("Application.Volatile", nil); err != nil {
				return err
			}
		}
		if vararg != "" {
			if err := writeVarargs(w, fixed, vararg); err != nil {
				return err
			}
		}
		lines := []string{
			"If TypeOf Application.Caller Is Range Then On Error GoTo failed",
			`{fn.Name} = Py.CallUDF("{module}", "{fn.Name}", {args}, ThisWorkbook, Application.Caller)`,
			"Exit Function",
		}
		for _, ln := range lines {
			if err := w.WriteLine(ln, env); err != nil {
				return err
			}
		}
		if err := w.WriteLabel("failed"); err != nil {
			return err
		}
		return w.WriteLine("{fn.Name} = Err.Description", env)
	})
}

func writeVarargs(w *Writer, fixed []string, vararg string) error {
	env := Env{"rest": vararg, "n": len(fixed)}
	if err := w.WriteLine("Dim argsArray() As Variant", nil); err != nil {
		return err
	}
	if err := w.WriteLine("Dim k As Long", nil); err != nil {
		return err
	}
	if err := w.WriteLine("ReDim argsArray(1 To UBound({rest}) - LBound({rest}) + {n + 1})", env); err != nil {
		return err
	}
	for i, a := range fixed {
		if err := w.WriteLine("argsArray({i}) = {a}", Env{"i": i + 1, "a": a}); err != nil {
			return err
		}
	}
	loop := "For k = LBound(" + vararg + ") To UBound(" + vararg + ")"
	return w.Block(loop, "Next k", func() error {
		return w.WriteLine("argsArray({n + 1} + k - LBound({rest})) = {rest}(k)", env)
	})
}

func signature(f *UDF) string {
	parts := make([]string, 0, len(f.Args))
	for _, a := range f.Args {
		switch {
		case a.Optional:
			parts = append(parts, "Optional "+a.Name)
		case a.Vararg:
			parts = append(parts, "ParamArray "+a.Name+"()")
		default:
			parts = append(parts, a.Name)
		}
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c == '_' || (c >= '0' && c <= '9')):
		default:
			return false
		}
	}
	return true
}
