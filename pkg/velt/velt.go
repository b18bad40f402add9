package velt

import "github.com/velt-dev/velt/internal/velt/compile"

// CompileFile compiles a .velt source (a Go file with embedded View literals)
// into a gofmt'd Go source file.
//
// The result is suitable for writing to "<path>.go" (i.e. "*.velt.go") and
// checking in.
func CompileFile(path string, src []byte) ([]byte, error) {
	return compile.CompileFile(path, src)
}
