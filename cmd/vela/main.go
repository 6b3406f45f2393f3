// Command vela is the host CLI for the Vela native-function bridge: it
// builds the module namespace once and lets callers invoke native
// functions with JSON-encoded arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vela-lang/vela/pkg/native"
)

func main() {
	root := &cobra.Command{
		Use:           "vela",
		Short:         "Vela native bridge host",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(modulesCmd())
	root.AddCommand(callCmd())
	root.AddCommand(consoleCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bridge version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(native.Version)
		},
	}
}
