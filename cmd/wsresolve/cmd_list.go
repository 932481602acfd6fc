package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/wsresolve/internal/workspace"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspace manifests",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().Bool("names", false, "Show the package name of each workspace")
	return cmd
}

type listEntry struct {
	Name     string `json:"name,omitempty"`
	Manifest string `json:"manifest"`
	Dir      string `json:"dir"`
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	m, err := s.manager()
	if err != nil {
		return err
	}
	withNames, _ := cmd.Flags().GetBool("names")

	// Plain listing never opens member manifests.
	if !withNames && !s.jsonOutput() {
		manifests, err := s.resolver.Resolve(cmd.Context(), m, s.root)
		if err != nil {
			return err
		}
		for _, manifest := range manifests {
			fmt.Fprintln(s.out, s.displayPath(manifest))
		}
		return nil
	}

	workspaces, err := s.resolver.Workspaces(cmd.Context(), m, s.root)
	if err != nil {
		return err
	}

	entries := make([]listEntry, 0, len(workspaces))
	for _, ws := range workspaces {
		entries = append(entries, s.toEntry(ws))
	}

	if s.jsonOutput() {
		return s.writeJSON(entries)
	}

	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = dimStyle.Render("(unnamed)")
		} else {
			name = nameStyle.Render(name)
		}
		fmt.Fprintf(s.out, "%s\t%s\n", name, e.Manifest)
	}
	return nil
}

// displayPath renders an absolute path relative to the root when requested.
func (s *session) displayPath(p string) string {
	if !s.cfg.Output.Relative {
		return p
	}
	rel, err := filepath.Rel(s.root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}

func (s *session) toEntry(ws workspace.Workspace) listEntry {
	if !s.cfg.Output.Relative {
		return listEntry{Name: ws.Name, Manifest: ws.Manifest, Dir: ws.Dir}
	}
	dir := ws.RelDir
	if dir == "" {
		dir = "."
	}
	return listEntry{Name: ws.Name, Manifest: s.displayPath(ws.Manifest), Dir: dir}
}
