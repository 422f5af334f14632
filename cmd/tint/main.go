// cmd/tint/main.go
package main

import (
	"os"

	"github.com/bethropolis/tint/internal/cli"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default stands. File reads are bounded by GOMAXPROCS.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
