package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/wsresolve/internal/packagemanager"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the package manager and its declaration file",
		Args:  cobra.NoArgs,
		RunE:  runDetect,
	}
}

type detectResult struct {
	Manager     string `json:"manager"`
	Declaration string `json:"declaration"`
	Detected    bool   `json:"detected"`
}

func runDetect(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	detected := s.cfg.Resolver.Manager == ""
	m, err := s.manager()
	if err != nil {
		return err
	}

	result := detectResult{
		Manager:     m.String(),
		Declaration: m.DeclarationFile(),
		Detected:    detected,
	}

	if s.jsonOutput() {
		return s.writeJSON(result)
	}

	source := "configured"
	if detected {
		source = "detected"
	}
	fmt.Fprintf(s.out, "%s %s\n", headerStyle.Render(result.Manager), dimStyle.Render("("+source+")"))
	fmt.Fprintf(s.out, "declaration: %s\n", result.Declaration)
	if m == packagemanager.Yarn {
		fmt.Fprintln(s.out, dimStyle.Render("ignores node_modules only beneath declared globs"))
	}
	return nil
}
