package main

import (
	"fmt"
	"strings"

	langlang "github.com/clarete/langlang/go"

	"github.com/spf13/cobra"
)

var (
	moldErrorCategory string
	moldErrorID       string
	moldErrorArgs     []string
	moldErrorColor    bool
)

func init() {
	cmd := newMoldErrorCmd()
	cmd.Flags().StringVar(&moldErrorCategory, "category", "script", "Error category (script, internal)")
	cmd.Flags().StringVar(&moldErrorID, "id", "bad-value", "Error id within the category")
	cmd.Flags().StringSliceVar(&moldErrorArgs, "arg", nil, "Template argument, repeatable")
	cmd.Flags().BoolVar(&moldErrorColor, "color", false, "Colorize the rendered error")
	rootCmd.AddCommand(cmd)
}

func newMoldErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mold-error",
		Short: "Build an error record from the boot catalog and render it (spec.md §7 format)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMoldError()
		},
	}
}

func runMoldError() error {
	cells := make([]langlang.Cell, 0, len(moldErrorArgs))
	for _, a := range moldErrorArgs {
		cells = append(cells, langlang.NewText(a))
	}

	render := langlang.MoldError
	if moldErrorColor {
		render = langlang.MoldErrorColored
	}

	var molded string
	outcome := langlang.Rescue(func() {
		e := langlang.NewErrorFromCategory(moldErrorCategory, moldErrorID, cells...)
		molded = render(e)
	})
	if outcome.Err != nil {
		fmt.Println(render(outcome.Err))
		return nil
	}
	fmt.Println(strings.TrimSpace(molded))
	return nil
}
