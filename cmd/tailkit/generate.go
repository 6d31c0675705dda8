package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dmoose/tailkit/pkg/generator"
)

var (
	genInput  string
	genOutput string
	genWatch  bool
	genConfig string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a CSS artifact from scanned source files",
	Long: `generate scans --input for utility-class candidates, resolves them
against the configured design system, and writes the resulting CSS to
--output (stdout if omitted).`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genInput, "input", ".", "Root directory to scan for source files")
	generateCmd.Flags().StringVar(&genOutput, "output", "", "Output CSS file path (stdout if omitted)")
	generateCmd.Flags().BoolVar(&genWatch, "watch", false, "Watch --input and rewrite --output on change")
	generateCmd.Flags().StringVar(&genConfig, "config", "", "Path to a tailkit config JSON file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(genConfig)
	if err != nil {
		return wrapRuntimeError(err)
	}
	if genInput != "" {
		cfg.Glob.Base = genInput
	}

	sys, err := buildSystem(cfg)
	if err != nil {
		return wrapRuntimeError(err)
	}

	driver := generator.New(sys)
	if cfg.Features.StrictMode {
		driver.Strict = true
		driver.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	sink := func(res generator.Result) error {
		return writeOutput(res.CSS)
	}

	if !genWatch {
		sources, err := generator.LoadSources(cfg.Glob)
		if err != nil {
			return wrapRuntimeError(err)
		}
		res, err := driver.Generate(sources)
		if err != nil {
			return wrapRuntimeError(err)
		}
		fmt.Printf("scanned %d distinct tokens\n", res.TokensSeen)
		return wrapRuntimeError(sink(res))
	}

	stop, err := driver.Watch(cfg.Glob, 200*time.Millisecond, func(res generator.Result) error {
		fmt.Printf("rewrote output: %d tokens\n", res.TokensSeen)
		return sink(res)
	})
	if err != nil {
		return wrapRuntimeError(err)
	}
	defer stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	return nil
}

func writeOutput(body string) error {
	if genOutput == "" {
		_, err := fmt.Println(body)
		return err
	}
	return os.WriteFile(genOutput, []byte(body), 0o644)
}
