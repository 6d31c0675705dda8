package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time version info, injected via ldflags:
//
//	go build -ldflags "-X main.version=... -X main.commit=... -X main.buildTime=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tailkit",
	Short: "tailkit: utility-class CSS generator",
	Long: `tailkit scans source files for utility-class candidates, resolves
them against a themed utility/variant registry, and writes a single
CSS artifact.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		c := commit
		if len(c) > 7 {
			c = c[:7]
		}
		fmt.Printf("tailkit version %s (%s) built %s\n", version, c, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runtimeError carries the exit code for a config/IO failure (spec
// exit code 1). Any error that escapes without this wrapper — cobra's
// own flag/argument validation failures — is treated as invalid CLI
// usage (exit code 2).
type runtimeError struct{ err error }

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func wrapRuntimeError(err error) error {
	if err == nil {
		return nil
	}
	return &runtimeError{err: err}
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		os.Exit(0)
	}

	fmt.Fprintln(os.Stderr, err)

	var rt *runtimeError
	if errors.As(err, &rt) {
		os.Exit(1)
	}
	os.Exit(2)
}
