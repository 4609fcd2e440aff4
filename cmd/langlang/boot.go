package main

import (
	"fmt"

	langlang "github.com/clarete/langlang/go"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBootCmd())
}

func newBootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "Report the status of the boot-time symbol and error-template catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoot()
		},
	}
}

func runBoot() error {
	fmt.Println("core runtime boot status:")
	fmt.Printf("  error catalog ready: %v\n", langlang.ErrorCatalogReady())
	fmt.Printf("  preallocated errors: out-of-memory, stack-overflow, halt\n")
	fmt.Printf("  active rescue scopes: %d\n", langlang.CurrentRescueDepth())
	return nil
}
