package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Grounded on the teacher's cmd/hivectl-style root command: a bare
// rootCmd plus one init() per subcommand file, each appending itself.

var rootCmd = &cobra.Command{
	Use:   "langlang",
	Short: "Inspect the langlang interpreter core's value, error, and rescue machinery",
	Long: `langlang exposes small diagnostic subcommands over the interpreter
core runtime: its cell representation, error records, type specs, and
the abrupt-failure rescue discipline. It does not parse or evaluate
source text — that belongs to the evaluator this core is built for.`,
	Version: "0.1.0",
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
