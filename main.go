package main

import (
	"os"

	"github.com/jharland/commit-pilot/internal/cli"
	"github.com/jharland/commit-pilot/internal/observability"
)

func main() {
	// Best-effort error logging to a local file.
	if _, cleanup, err := observability.Init(); err == nil {
		defer cleanup()
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
