//go:build tools

package tools

import (
	// Pins the gqlgen code generator and its helpers so `go mod tidy`
	// keeps everything `go run github.com/99designs/gqlgen generate`
	// needs in go.sum. gqlgen is a main package; the gopls
	// "not an importable package" diagnostic here is expected.
	_ "github.com/99designs/gqlgen"
	_ "github.com/99designs/gqlgen/codegen/config"
	_ "golang.org/x/text/cases"
	_ "golang.org/x/tools/go/packages"
	_ "golang.org/x/tools/imports"
)
