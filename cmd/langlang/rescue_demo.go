package main

import (
	"fmt"

	langlang "github.com/clarete/langlang/go"

	"github.com/spf13/cobra"
)

var rescueDemoHalt bool

func init() {
	cmd := newRescueDemoCmd()
	cmd.Flags().BoolVar(&rescueDemoHalt, "halt", false, "Raise HALT instead of an ordinary fail, to show it re-propagating")
	rootCmd.AddCommand(cmd)
}

func newRescueDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescue-demo",
		Short: "Demonstrate nested rescue scopes, a fail, and HALT's non-swallowing re-propagation (spec.md S6)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRescueDemo()
		},
	}
}

// runRescueDemo nests an inner RescueScope B inside an outer scope A
// (spec.md scenario S6). A plain fail is caught and reported by B. A
// HALT, by contrast, is deliberately re-raised by B via Outcome.Reraise
// so it surfaces at A instead of being silently absorbed.
func runRescueDemo() error {
	outerDepthAtStart := langlang.CurrentRescueDepth()

	outcomeA := langlang.Rescue(func() {
		fmt.Printf("scope A entered (depth=%d)\n", langlang.CurrentRescueDepth())

		outcomeB := langlang.Rescue(func() {
			fmt.Printf("scope B entered (depth=%d)\n", langlang.CurrentRescueDepth())
			if rescueDemoHalt {
				langlang.Halt()
			}
			langlang.Fail("demo: something went wrong inside B")
		})

		if outcomeB.Halted {
			fmt.Println("scope B saw HALT — re-raising to A rather than swallowing it")
			outcomeB.Reraise()
		}
		if outcomeB.Err != nil {
			fmt.Printf("scope B caught: %s\n", outcomeB.Err.Message())
		}
	})

	if outcomeA.Halted {
		fmt.Println("scope A observed the re-raised HALT")
	} else if outcomeA.Err != nil {
		fmt.Printf("scope A caught: %s\n", outcomeA.Err.Message())
	} else {
		fmt.Println("scope A completed without incident")
	}

	fmt.Printf("rescue depth restored to %d\n", langlang.CurrentRescueDepth())
	if langlang.CurrentRescueDepth() != outerDepthAtStart {
		return fmt.Errorf("rescue depth did not unwind back to its starting value")
	}
	return nil
}
