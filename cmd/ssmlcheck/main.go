// Package main is the entry point for the ssmlcheck CLI.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/yaklabco/ssmlcheck/internal/cli"
	"github.com/yaklabco/ssmlcheck/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/ssmlcheck/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, cli.ErrInvalidMarkup) {
		// The outcome of invalid markup is already reported; anything else is a failure.
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
