// Command lincheck runs the linear drop analyzer as a standalone vet
// tool:
//
//	go build -o lincheck ./cmd/lincheck
//	go vet -vettool=./lincheck ./...
//
// A non-zero exit on any finding makes the surrounding build fail, which
// is the build-time rejection mode of the linearity discipline.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/dzmitry-lahoda-forks/linear-type/pkg/linear/lincheck"
)

func main() {
	singlechecker.Main(lincheck.Analyzer)
}
