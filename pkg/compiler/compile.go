package compiler

import (
	"path/filepath"
	"strings"

	"gengar/pkg/sourcemap"
)

// Options configures a compilation unit.
type Options struct {
	// LeftAssociative folds binary operator chains into the standard
	// left-leaning shape. By default they stay right-leaning, the way
	// the parser produces them; no operator precedence applies either
	// way.
	LeftAssociative bool
}

// Output is the result of a successful compilation. Code does not carry
// the sourceMappingURL trailer; callers writing files append it.
type Output struct {
	Code      string
	SourceMap []byte
}

// Compile runs the whole pipeline over one source file: lex, parse, emit,
// and render the source map. srcPath is recorded as the file of every
// node position and names the input in the map's sources list; error
// messages do not include it.
func Compile(src, srcPath string, opts Options) (*Output, error) {
	prog, err := Parse(src, srcPath, opts)
	if err != nil {
		return nil, err
	}

	root, err := Generate(prog)
	if err != nil {
		return nil, err
	}

	code, rawMap, err := sourcemap.Generate(root, OutputName(srcPath))
	if err != nil {
		return nil, err
	}
	return &Output{Code: code, SourceMap: rawMap}, nil
}

// OutputName derives the generated file name from the source path:
// dir/hello.gengar -> hello.js.
func OutputName(srcPath string) string {
	base := filepath.Base(srcPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".js"
}
