// Package main implements the folder-compare command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(
		ctx,
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "folder-compare <base> <target>",
		Short: "Report new and changed files between two directory trees",
		Long: `folder-compare walks two directory trees and classifies every file
under <target>: "new" when <base> has no file at the same relative path,
"changed" when it has one with different content. Files that exist only
under <base> are not reported.

Exclusion patterns are regular expressions matched anywhere in the path
(<root>/<relative path>, forward slashes). Prefix a pattern with "glob:"
to use a shell glob instead.`,
		Example: `folder-compare ./v1 ./v2
folder-compare -e '\.log$' -e 'glob:node_modules/**' ./old ./new
folder-compare --format tree --fail-on-diff a b`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1], flags)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&flags.exclude, "exclude", "e", nil, "exclusion pattern (repeatable)")
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	f.IntVar(&flags.workers, "workers", 0, "files hashed concurrently (default: number of CPUs)")
	f.BoolVar(&flags.strict, "strict", false, "fail on unreadable entries instead of skipping them")
	f.StringVarP(&flags.format, "format", "f", "text", "output format: text, json or tree")
	f.BoolVar(&flags.unchanged, "unchanged", false, "also list unchanged files")
	f.BoolVar(&flags.failOnDiff, "fail-on-diff", false, "exit with status 1 when differences are found")
	f.BoolVarP(&flags.watch, "watch", "w", false, "compare again whenever either tree changes")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newMCPCmd())

	return cmd
}
