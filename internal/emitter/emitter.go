// Package emitter plans and writes the generated C artifacts. It derives
// the output paths and symbol names for a conversion request, decides how
// many artifacts to produce from the requested scope, and streams the
// encoded array body into the artifact that carries the definition.
package emitter

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/template"

	"github.com/bin2c/bin2c/internal/encoder"
	"github.com/bin2c/bin2c/internal/pathname"
	"github.com/bin2c/bin2c/internal/symbol"
	"github.com/bin2c/bin2c/internal/templates"
)

// Scope is the visibility of the generated symbol.
type Scope int

const (
	// Local restricts the symbol to the compiling unit. A single header
	// artifact carries a static-scope definition that doubles as the
	// declaration.
	Local Scope = iota

	// Global makes the symbol visible across compiled units. A source
	// artifact carries the definition and a header artifact carries the
	// extern declaration, a header guard, and a length macro.
	Global
)

func (s Scope) String() string {
	if s == Global {
		return "global"
	}
	return "local"
}

// DefaultElementType is the C element type used when none is configured.
const DefaultElementType = "unsigned char const"

// Request describes one conversion run.
type Request struct {
	// InputPath is the path of the binary input file. Its base name,
	// stripped of its extension, becomes the core of the symbol name and
	// the stem of the artifact paths.
	InputPath string

	// Prefix and Suffix optionally wrap the symbol core.
	Prefix string
	Suffix string

	// LengthSuffix is appended to prefix+core to form the length macro.
	// Only consulted for Global scope.
	LengthSuffix string

	Scope Scope

	// ElementType overrides DefaultElementType when non-empty.
	ElementType string

	// BlockSize is the encoder read block size; zero selects the default.
	BlockSize int

	// Atomic writes each artifact to a temporary path and renames it onto
	// the target only on success.
	Atomic bool
}

// Result reports what a successful run produced.
type Result struct {
	// Definition is the path of the artifact carrying the array body:
	// the .c file for Global scope, the sole .h file for Local scope.
	Definition string

	// Declaration is the path of the header artifact. Empty for Local
	// scope, where Definition is the only artifact.
	Declaration string

	// Elements is the number of array elements emitted.
	Elements int64
}

// names holds the derived identifiers shared by both artifacts.
type names struct {
	core        string
	sym         string
	elementType string
}

// Emit runs the conversion: it reads the input stream once and produces one
// artifact (Local) or two (Global). The input stream remains owned by the
// caller. On failure the remaining artifacts are skipped; unless atomic
// mode is on, a partially written artifact is left on disk.
func Emit(in io.Reader, req Request) (*Result, error) {
	if err := pathname.Validate(req.InputPath); err != nil {
		return nil, err
	}

	core, _, _ := pathname.SplitExt(pathname.BaseName(req.InputPath))
	sym, err := symbol.Build(req.Prefix, core, req.Suffix)
	if err != nil {
		return nil, err
	}

	n := names{core: core, sym: sym, elementType: req.ElementType}
	if n.elementType == "" {
		n.elementType = DefaultElementType
	}

	headerPath, err := pathname.ReplaceExt(req.InputPath, "h")
	if err != nil {
		return nil, err
	}
	definitionPath := headerPath
	if req.Scope == Global {
		definitionPath, err = pathname.ReplaceExt(req.InputPath, "c")
		if err != nil {
			return nil, err
		}
	}

	enc, err := encoder.New(req.BlockSize)
	if err != nil {
		return nil, err
	}

	def, err := createArtifact(definitionPath, req.Atomic)
	if err != nil {
		return nil, err
	}
	count, emitErr := writeDefinition(def, in, enc, req.Scope, n)
	if err := def.finish(emitErr); err != nil {
		return nil, err
	}
	slog.Debug("wrote definition artifact", "path", definitionPath, "elements", count)

	res := &Result{Definition: definitionPath, Elements: count}
	if req.Scope != Global {
		return res, nil
	}

	decl, err := createArtifact(headerPath, req.Atomic)
	if err != nil {
		return nil, err
	}
	declErr := writeDeclaration(decl, req, n, count)
	if err := decl.finish(declErr); err != nil {
		return nil, err
	}
	slog.Debug("wrote declaration artifact", "path", headerPath)

	res.Declaration = headerPath
	return res, nil
}

// writeDefinition emits the artifact carrying the array body. For Global
// scope it opens with an include of the declaration header, referenced by
// core name just as the declaration's own include would spell it; for Local
// scope the definition gets a static qualifier instead.
func writeDefinition(a *artifact, in io.Reader, enc *encoder.Encoder, scope Scope, n names) (int64, error) {
	var preamble string
	if scope == Global {
		preamble = fmt.Sprintf("#include \"%s.h\"\n\n", n.core)
	} else {
		preamble = "static "
	}

	if _, err := fmt.Fprintf(a.w, "%s%s %s[] = ", preamble, n.elementType, n.sym); err != nil {
		return 0, &WriteError{Path: a.path, Err: err}
	}

	count, err := enc.Encode(a.w, in)
	if err != nil {
		return count, err
	}

	if _, err := io.WriteString(a.w, ";\n"); err != nil {
		return count, &WriteError{Path: a.path, Err: err}
	}
	return count, nil
}

// writeDeclaration emits the Global-scope header: an idempotency guard
// built from the core name alone, the extern declaration, and the length
// macro rendered at the narrowest literal width that holds the count.
func writeDeclaration(a *artifact, req Request, n names, count int64) error {
	guard, err := symbol.Macro("", n.core, "")
	if err != nil {
		return err
	}
	lengthMacro, err := symbol.Macro(req.Prefix, n.core, req.LengthSuffix)
	if err != nil {
		return err
	}

	content, err := templates.Get("decl.h.tmpl")
	if err != nil {
		return err
	}
	t, err := template.New("decl.h.tmpl").Parse(content)
	if err != nil {
		return err
	}

	data := struct {
		Guard         string
		ElementType   string
		Symbol        string
		LengthMacro   string
		LengthLiteral string
	}{
		Guard:         guard,
		ElementType:   n.elementType,
		Symbol:        n.sym,
		LengthMacro:   lengthMacro,
		LengthLiteral: lengthLiteral(count),
	}

	if err := t.Execute(a.w, data); err != nil {
		return &WriteError{Path: a.path, Err: err}
	}
	return nil
}

// literalWidths orders the length-literal renderings by increasing width.
// C spells the narrow decimal literals identically; only the wide form
// needs the long suffix.
var literalWidths = []struct {
	max    int64
	format string
}{
	{max: math.MaxInt8, format: "%d"},
	{max: math.MaxInt16, format: "%d"},
	{max: math.MaxInt32, format: "%d"},
	{max: math.MaxInt64, format: "%dl"},
}

// lengthLiteral renders n at the narrowest integer literal width that
// losslessly holds it; first match wins.
func lengthLiteral(n int64) string {
	for _, w := range literalWidths {
		if n <= w.max {
			return fmt.Sprintf(w.format, n)
		}
	}
	return fmt.Sprintf("%dl", n)
}
