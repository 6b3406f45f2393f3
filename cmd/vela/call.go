package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vela-lang/vela/pkg/jsonconv"
	"github.com/vela-lang/vela/pkg/value"
)

func callCmd() *cobra.Command {
	var allowAll bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "call <group.function|builtin> [json-arg]...",
		Short: "Invoke one native function",
		Long: `Invoke a native function through the bridge. Each argument is JSON
text converted through the marshaller, e.g.:

  vela call array.sort '[3, 1, 2]'
  vela call str.concat '"foo"' '"bar"'
  vela call int '"42"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := buildNamespace(allowAll)
			if err != nil {
				return err
			}
			callable, err := resolve(ns, args[0])
			if err != nil {
				return err
			}

			callArgs := make([]value.Value, 0, len(args)-1)
			for _, raw := range args[1:] {
				v, err := jsonconv.Parse(raw)
				if err != nil {
					return err
				}
				callArgs = append(callArgs, v)
			}

			result, err := callable.Fn(callArgs)
			if err != nil {
				return err
			}

			if asJSON {
				text, err := jsonconv.ToString(result)
				if err != nil {
					return err
				}
				fmt.Println(text)
				return nil
			}
			fmt.Println(value.Render(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowAll, "allow-all", false, "expose every capability group regardless of policy")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON text")
	return cmd
}
