package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/rxrename/pkg/config"
	"github.com/walteh/rxrename/pkg/fsys"
	"github.com/walteh/rxrename/pkg/log"
	"github.com/walteh/rxrename/pkg/operation"
	"github.com/walteh/rxrename/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the command line flags
type rootOpts struct {
	configFile string
	debug      bool
	dir        string
	recursive  bool
	folders    bool
	verbose    bool
	exclude    []string
}

// NewRootCommand creates the rxrename command with its subcommands
func NewRootCommand() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "rxrename [flags] <pattern> <template>",
		Short: "Rename files whose names match a regular expression",
		Long: `rxrename renames every entry of a directory whose name matches <pattern>.
The new name is <template> with $(0) replaced by the whole match and $(1),
$(2), ... by the capture groups. Placeholders for groups that did not take
part in the match are left as they are.

Pattern and template can also come from a config file (.rxrename.yaml,
.hcl, .json or .toml in the working directory, or rxrename/config.* under
the XDG config directories). Flags and arguments override the file.`,
		Example: `  rxrename '^IMG_(\d+)\.JPG$' 'photo-$(1).jpg'
  rxrename -r -v '^(\w+)_(\d{4})_(\d{2})\.txt$' '$(1)-$(2)-$(3).bak'
  rxrename -r -f -x '**/.git' '^(.*)_old$' '$(1)'`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			stderr := cmd.ErrOrStderr()
			cmd.SetContext(log.NewContext(cmd.Context(), stderr, log.Options{
				Debug:   opts.debug,
				NoColor: !isTerminal(stderr),
			}))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	addRootFlags(cmd, opts)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path (default: discovered)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging on stderr")

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", config.DefaultRoot, "directory to scan")
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVarP(&opts.folders, "folders", "f", false, "also rename directories")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print one line per matched entry")
	cmd.Flags().StringSliceVarP(&opts.exclude, "exclude", "x", nil, "glob of entries to skip (repeatable)")
}

// 🏃 run loads the config, applies flags and arguments, and runs the rename
func (o *rootOpts) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)

	cfg, err := config.LoadOrDiscover(ctx, o.configFile, ".")
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if cfg.Location() != "" {
		logger.Debug().Str("path", cfg.Location()).Msg("using config file")
	}

	o.apply(cmd, cfg, args)

	stdout := cmd.OutOrStdout()

	op, err := operation.New(operation.Options{
		Config:   cfg,
		FS:       fsys.NewOS(),
		Reporter: status.NewReporter(stdout, cfg.Verbose, status.NewDefaultFormatter(isTerminal(stdout))),
		Warner:   status.NewWarner(cmd.ErrOrStderr()),
	})
	if err != nil {
		return errors.Errorf("creating operation: %w", err)
	}

	if _, err := op.Execute(ctx); err != nil {
		return err
	}

	return nil
}

// apply overrides cfg with the flags set on the command line and the
// positional arguments. Exclude globs are added to the ones from the file.
func (o *rootOpts) apply(cmd *cobra.Command, cfg *config.Config, args []string) {
	flags := cmd.Flags()

	if flags.Changed("dir") {
		cfg.Root = o.dir
	}
	if flags.Changed("recursive") {
		cfg.Recursive = o.recursive
	}
	if flags.Changed("folders") {
		cfg.Folders = o.folders
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, o.exclude...)
	}

	if len(args) > 0 {
		cfg.Pattern = args[0]
	}
	if len(args) > 1 {
		cfg.SetTemplate(args[1])
	}
}

// isTerminal reports whether w is a terminal that accepts color
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && status.ShouldColor(f)
}
