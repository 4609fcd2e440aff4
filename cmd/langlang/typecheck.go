package main

import (
	"fmt"
	"strconv"
	"strings"

	langlang "github.com/clarete/langlang/go"

	"github.com/spf13/cobra"
)

var (
	typecheckKind  string
	typecheckValue string
	typecheckSpec  string
)

func init() {
	cmd := newTypecheckCmd()
	cmd.Flags().StringVar(&typecheckKind, "kind", "integer", "Value kind: integer, text, word, logic, null, void, blank")
	cmd.Flags().StringVar(&typecheckValue, "value", "", "Value literal, interpreted per --kind")
	cmd.Flags().StringVar(&typecheckSpec, "spec", "integer!", "Comma-separated list of datatype names, e.g. integer!,text!")
	rootCmd.AddCommand(cmd)
}

func newTypecheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typecheck",
		Short: "Test a value against a parameter type spec (spec.md §4.6)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypecheck()
		},
	}
}

func runTypecheck() error {
	value, err := buildCell(typecheckKind, typecheckValue)
	if err != nil {
		return err
	}

	spec := buildSpec(typecheckSpec)
	fmt.Printf("value: %s  (%s)\n", typecheckKind, langlang.ProjectedType(&value))
	fmt.Printf("spec:  %s\n", typecheckSpec)
	fmt.Printf("match: %v\n", spec.Match(value))
	return nil
}

func buildCell(kind, raw string) (langlang.Cell, error) {
	switch kind {
	case "integer":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return langlang.Cell{}, fmt.Errorf("bad integer value %q: %w", raw, err)
		}
		return langlang.NewInteger(n), nil
	case "text":
		return langlang.NewText(raw), nil
	case "word":
		return langlang.NewWord(langlang.InternString(raw)), nil
	case "logic":
		return langlang.LogicAntiform(raw == "true"), nil
	case "null":
		return langlang.NullAntiform(), nil
	case "void":
		return langlang.VoidAntiform(), nil
	case "blank":
		return langlang.TrashQuasiform(), nil
	default:
		return langlang.Cell{}, fmt.Errorf("unknown --kind %q", kind)
	}
}

func buildSpec(raw string) langlang.ParamSpec {
	names := strings.Split(raw, ",")
	items := make([]langlang.Cell, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		items = append(items, langlang.NewWord(langlang.InternString(n)))
	}
	return langlang.ParseTypeSpecBlock(items, nil)
}
