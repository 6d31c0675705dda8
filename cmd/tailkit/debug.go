package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmoose/tailkit/pkg/css"
)

var (
	debugConfig   string
	debugPrintAST bool
)

var debugCmd = &cobra.Command{
	Use:   "debug TOKEN",
	Short: "Resolve a single token and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebug,
}

func init() {
	debugCmd.Flags().StringVar(&debugConfig, "config", "", "Path to a tailkit config JSON file")
	debugCmd.Flags().BoolVar(&debugPrintAST, "print-ast", false, "Print the resolved rule's AST as indented JSON instead of rendered CSS")
	rootCmd.AddCommand(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	token := args[0]

	cfg, err := loadConfig(debugConfig)
	if err != nil {
		return wrapRuntimeError(err)
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return wrapRuntimeError(err)
	}

	rr, reason := sys.Resolve(token)
	if rr == nil {
		fmt.Printf("rejected: %s\n", reason)
		return nil
	}

	if debugPrintAST {
		out, err := json.MarshalIndent(rr.Rule, "", "  ")
		if err != nil {
			return wrapRuntimeError(fmt.Errorf("marshaling AST: %w", err))
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(css.Render(css.RuleList{rr.Rule}, false))
	return nil
}
