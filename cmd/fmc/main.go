// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fmcore/internal/config"
	"fmcore/internal/diagnostics"
	"fmcore/internal/module"
	"fmcore/repl"
)

var (
	noColor    bool
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "fmc",
		Short: "A checker for a minimal dependently-typed core calculus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Run(os.Stdin, os.Stdout)
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to an .fmcrc.toml config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print a line for every successful definition")

	root.AddCommand(checkCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.fm>",
		Short: "Check every definition in a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(runCheck(args[0]))
			return nil
		},
	}
}

// runCheck reads, parses, and checks path, returning the process exit
// code: 0 if every definition checks, 1 if any fails, 2 if it doesn't
// even parse.
func runCheck(path string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if noColor {
		cfg.Output.Color = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	reporter := diagnostics.NewReporter(os.Stdout, cfg)

	m, err := module.FromSource(string(source))
	if err != nil {
		reporter.ParseFailure(err)
		return 2
	}

	results := module.Check(m)
	failed := 0
	for _, r := range results {
		reporter.Definition(r.Name, r.Err)
		if r.Err != nil {
			failed++
		}
	}
	reporter.Summary(len(results), failed)

	if failed > 0 {
		return 1
	}
	return 0
}

func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.Discover()
}
