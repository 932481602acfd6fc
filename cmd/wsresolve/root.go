package main

import (
	"encoding/json"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/wsresolve/internal/config"
	"github.com/Cyclone1070/wsresolve/internal/packagemanager"
	"github.com/Cyclone1070/wsresolve/internal/service/fs"
	"github.com/Cyclone1070/wsresolve/internal/service/path"
	"github.com/Cyclone1070/wsresolve/internal/workspace"
)

func newRootCmd() *cobra.Command {
	var manager packagemanager.Manager

	cmd := &cobra.Command{
		Use:           "wsresolve",
		Short:         "Resolve the workspace packages of a JavaScript monorepo",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("root", ".", "Repository root")
	flags.Var(&manager, "manager", "Package manager: berry, npm, pnpm, pnpm6 or yarn (detected when unset)")
	flags.Bool("json", false, "Output as JSON")
	flags.Bool("relative", false, "Print paths relative to the repository root")
	flags.Bool("gitignore", false, "Also skip paths ignored by the root .gitignore")
	flags.BoolP("verbose", "v", false, "Log resolution steps to stderr")

	cmd.AddCommand(
		newListCmd(),
		newGlobsCmd(),
		newIgnoresCmd(),
		newDetectCmd(),
	)

	return cmd
}

// session carries everything a subcommand needs after flags and config are merged.
type session struct {
	cfg      *config.Config
	root     string
	fs       *fs.OSFileSystem
	resolver *workspace.Resolver
	out      io.Writer
}

// newSession loads config, lets explicitly set flags override it and
// canonicalises the root.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		asJSON, _ := flags.GetBool("json")
		if asJSON {
			cfg.Output.Format = config.FormatJSON
		} else {
			cfg.Output.Format = config.FormatText
		}
	}
	if flags.Changed("relative") {
		cfg.Output.Relative, _ = flags.GetBool("relative")
	}
	if flags.Changed("gitignore") {
		cfg.Resolver.RespectGitignore, _ = flags.GetBool("gitignore")
	}
	if flags.Changed("manager") {
		cfg.Resolver.Manager = flags.Lookup("manager").Value.String()
	}

	rootFlag, _ := flags.GetString("root")
	root, err := path.CanonicaliseRoot(rootFlag)
	if err != nil {
		return nil, err
	}

	var logger *log.Logger
	if verbose, _ := flags.GetBool("verbose"); verbose {
		logger = log.New(cmd.ErrOrStderr(), "wsresolve: ", 0)
	}

	osFS := fs.NewOSFileSystem(cfg.Resolver.MaxDeclarationSize)
	return &session{
		cfg:      cfg,
		root:     root,
		fs:       osFS,
		resolver: workspace.NewResolver(osFS, cfg, logger),
		out:      cmd.OutOrStdout(),
	}, nil
}

// manager returns the configured manager, detecting it when none is set.
func (s *session) manager() (packagemanager.Manager, error) {
	if s.cfg.Resolver.Manager != "" {
		return packagemanager.Parse(s.cfg.Resolver.Manager)
	}
	return packagemanager.Detect(s.root, s.fs)
}

func (s *session) jsonOutput() bool {
	return s.cfg.Output.Format == config.FormatJSON
}

func (s *session) writeJSON(v any) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
