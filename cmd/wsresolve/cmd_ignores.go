package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIgnoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ignores",
		Short: "Print the ignore patterns applied while walking",
		Args:  cobra.NoArgs,
		RunE:  runIgnores,
	}
}

func runIgnores(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	m, err := s.manager()
	if err != nil {
		return err
	}

	set, err := s.resolver.IgnoreSet(m, s.root)
	if err != nil {
		return err
	}

	patterns := set.Patterns()
	if s.jsonOutput() {
		return s.writeJSON(patterns)
	}
	for _, p := range patterns {
		fmt.Fprintln(s.out, p)
	}
	return nil
}
