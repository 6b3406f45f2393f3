package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vela-lang/vela/pkg/value"
)

func modulesCmd() *cobra.Command {
	var allowAll bool

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the built namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := buildNamespace(allowAll)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(ns))
			for name := range ns {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				switch binding := ns[name].(type) {
				case *value.Map:
					fmt.Printf("%s/\n", name)
					for _, k := range binding.Keys() {
						fmt.Printf("  %s.%s\n", name, value.Render(k))
					}
				default:
					fmt.Println(name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowAll, "allow-all", false, "expose every capability group regardless of policy")
	return cmd
}
