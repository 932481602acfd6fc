package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGlobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "globs",
		Short: "Print the declared workspace globs",
		Args:  cobra.NoArgs,
		RunE:  runGlobs,
	}
}

func runGlobs(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	m, err := s.manager()
	if err != nil {
		return err
	}

	globs, err := s.resolver.ResolveGlobs(m, s.root)
	if err != nil {
		return err
	}

	if s.jsonOutput() {
		return s.writeJSON(globs)
	}
	for _, glob := range globs {
		fmt.Fprintln(s.out, glob)
	}
	return nil
}
