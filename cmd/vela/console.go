package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vela-lang/vela/pkg/jsonconv"
	"github.com/vela-lang/vela/pkg/native"
	"github.com/vela-lang/vela/pkg/value"
)

const (
	historyFile   = ".vela_history"
	consolePrompt = "vela> "
)

func consoleCmd() *cobra.Command {
	var allowAll bool

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive bridge console",
		Long: `An interactive console over the built namespace. Each line is a
function path followed by JSON-encoded arguments:

  vela> array.sort [3, 1, 2]
  vela> object.new
  vela> str "hello"

Type :modules to list bindings, :quit to exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(allowAll)
		},
	}

	cmd.Flags().BoolVar(&allowAll, "allow-all", false, "expose every capability group regardless of policy")
	return cmd
}

func runConsole(allowAll bool) error {
	ns, err := buildNamespace(allowAll)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Printf("Vela bridge console %s\nCtrl+D exits. Type :quit to exit.\n", native.Version)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(consolePrompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			if err == io.EOF && interactive {
				fmt.Println()
			}
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			if done := consoleCommand(trimmed, ns); done {
				return nil
			}
			continue
		}

		result, err := evalLine(ns, trimmed)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(value.Render(result))
		ln.AppendHistory(trimmed)
	}
}

// consoleCommand handles :-prefixed console directives and reports
// whether the console should exit.
func consoleCommand(cmd string, ns native.Namespace) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":modules":
		for name := range ns {
			fmt.Println(name)
		}
	default:
		fmt.Println("unknown command. Type :quit to exit.")
	}
	return false
}

// evalLine splits a console line into a function path and a stream of
// JSON-encoded arguments, then invokes the function.
func evalLine(ns native.Namespace, line string) (value.Value, error) {
	path, rest, _ := strings.Cut(line, " ")
	callable, err := resolve(ns, path)
	if err != nil {
		return nil, err
	}

	var callArgs []value.Value
	dec := json.NewDecoder(strings.NewReader(rest))
	for {
		var raw any
		if err := dec.Decode(&raw); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("bad argument: %s", err)
		}
		callArgs = append(callArgs, jsonconv.ReWrap(raw))
	}

	return callable.Fn(callArgs)
}
