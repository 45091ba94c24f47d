package validate

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// placeholderName is the subject used whenever the caller's source cannot
// be recovered or parsed. Resolution is cosmetic only: it never changes a
// validation outcome and never produces an error of its own.
const placeholderName = "value"

// internalPkgPrefix identifies this package's own frames on the call stack,
// so the resolver can skip the engine's internal call chain and land on the
// first genuine caller.
const internalPkgPrefix = "github.com/gergdev/valguard/pkg/validate."

// entryPointNames are the public validation operations the resolver looks
// for on the caller's source line.
var entryPointNames = map[string]bool{
	"AssertType":           true,
	"AssertNotNil":         true,
	"AssertNumeric":        true,
	"AssertStringLike":     true,
	"AssertSequence":       true,
	"AssertMapping":        true,
	"AssertPath":           true,
	"AssertRange":          true,
	"AssertLength":         true,
	"AssertEmail":          true,
	"AssertURL":            true,
	"AssertUUID":           true,
	"AssertPositive":       true,
	"AssertNonNegative":    true,
	"AssertPercentage":     true,
	"AssertNonEmptyString": true,
	"ValidateType":         true,
	"ValidateRange":        true,
	"ValidateLength":       true,
	"ValidatePath":         true,
	"IsType":               true,
	"IsNotNil":             true,
}

var subjectPatterns = buildSubjectPatterns()

func buildSubjectPatterns() []*regexp.Regexp {
	names := make([]string, 0, len(entryPointNames))
	for name := range entryPointNames {
		names = append(names, name)
	}
	sort.Strings(names)
	alt := `(?:` + strings.Join(names, "|") + `)`

	// Ordered from most to least specific, mirroring the structural parse:
	// dotted identifier with optional subscripts, bare identifier, then any
	// first-argument text.
	return []*regexp.Regexp{
		regexp.MustCompile(alt + `\s*\(\s*([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*(?:\[[^\]]*\])*)`),
		regexp.MustCompile(alt + `\s*\(\s*([A-Za-z_][A-Za-z0-9_]*)`),
		regexp.MustCompile(alt + `\s*\(\s*([^,\)]+)`),
	}
}

// nameResolver recovers the textual form of the expression passed as the
// first argument at the nearest call site outside this package. Source
// files are read once and cached.
type nameResolver struct {
	mu    sync.Mutex
	cache map[string][]string
}

func newNameResolver() *nameResolver {
	return &nameResolver{cache: make(map[string][]string)}
}

// resolve walks the stack past the engine's internal frames, reads the
// caller's source line, and extracts the first-argument expression. Every
// failure mode degrades to the placeholder.
func (r *nameResolver) resolve() (subject string) {
	subject = placeholderName
	defer func() {
		// Resolution must never take down a validation call.
		_ = recover()
	}()

	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && strings.HasPrefix(frame.Function, internalPkgPrefix) {
			if !more {
				return
			}
			continue
		}
		if frame.File != "" {
			if s := r.subjectFromSource(frame.File, frame.Line); s != "" {
				subject = s
			}
		}
		return
	}
}

func (r *nameResolver) subjectFromSource(file string, line int) string {
	lines, err := r.sourceLines(file)
	if err != nil || line < 1 || line > len(lines) {
		return ""
	}
	src := strings.TrimSpace(lines[line-1])
	if src == "" {
		return ""
	}
	if s := subjectFromAST(src); s != "" {
		return s
	}
	return subjectFromRegex(src)
}

func (r *nameResolver) sourceLines(file string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lines, ok := r.cache[file]; ok {
		return lines, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	r.cache[file] = lines
	return lines, nil
}

// subjectFromAST structurally parses a single source line and extracts the
// first argument of the first recognized validation call. The line is tried
// as a bare expression first, then wrapped into a synthetic function body so
// statements (assignments, returns) parse too.
func subjectFromAST(src string) string {
	var root ast.Node
	if expr, err := parser.ParseExpr(src); err == nil {
		root = expr
	} else {
		file, ferr := parser.ParseFile(token.NewFileSet(), "", "package p\nfunc _() {\n"+src+"\n}", parser.SkipObjectResolution)
		if ferr != nil {
			return ""
		}
		root = file
	}

	var subject string
	ast.Inspect(root, func(n ast.Node) bool {
		if subject != "" {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if !isEntryPoint(call.Fun) || len(call.Args) == 0 {
			return true
		}
		subject = renderExpr(call.Args[0])
		return false
	})
	return subject
}

func isEntryPoint(fun ast.Expr) bool {
	switch f := fun.(type) {
	case *ast.Ident:
		return entryPointNames[f.Name]
	case *ast.SelectorExpr:
		return entryPointNames[f.Sel.Name]
	}
	return false
}

// renderExpr renders an argument expression as a subject name: identifiers
// verbatim, selector chains dotted, subscripts and calls abbreviated.
func renderExpr(n ast.Expr) string {
	switch e := n.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return renderExpr(e.X) + "." + e.Sel.Name
	case *ast.IndexExpr:
		return renderExpr(e.X) + "[...]"
	case *ast.CallExpr:
		switch f := e.Fun.(type) {
		case *ast.Ident:
			return f.Name + "(...)"
		case *ast.SelectorExpr:
			return renderExpr(f) + "(...)"
		}
	}
	return "expression"
}

// subjectFromRegex is the best-effort fallback for lines the parser cannot
// handle, such as fragments of multi-line calls.
func subjectFromRegex(src string) string {
	for _, pattern := range subjectPatterns {
		if m := pattern.FindStringSubmatch(src); m != nil {
			return strings.Join(strings.Fields(m[1]), "")
		}
	}
	return ""
}
