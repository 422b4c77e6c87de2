package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/crumbline/internal/config"
	"github.com/oakwood-commons/crumbline/internal/formatter"
	"github.com/oakwood-commons/crumbline/pkg/breadcrumb"
	"github.com/oakwood-commons/crumbline/pkg/logger"
	"github.com/oakwood-commons/crumbline/pkg/settings"
	"github.com/oakwood-commons/crumbline/pkg/textdecode"
)

var (
	cwdOverride      string
	homeOverride     string
	shortenHome      bool
	dirShortenLen    int
	dirLimitDepth    int
	usePathSeparator bool
	ellipsis         string
	noEllipsis       bool
	output           string
	softDivider      string
	outputWidth      int
	noColor          bool
	configFile       string
	debug            bool
)

var (
	rootCtx = context.Background()
	// Swapped in tests.
	getwd     = os.Getwd
	newLogger = logger.Get
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Print the working directory as status-line breadcrumbs",
	Long: `crumbline prints the parent directories of the working directory as a
breadcrumb trail for shell prompts and status lines. Long trails can be
shortened per directory, limited in depth, and rendered as text, JSON, YAML
or TOML.`,
	Example: "\n  crumbline\n  crumbline --dir-shorten-len 1 --dir-limit-depth 3\n  crumbline --use-path-separator --no-color\n  crumbline -o json\n",
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
		var level int8
		if debug {
			level = -1
		}
		lgr := newLogger(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)

		run := settings.NewCliParams()
		run.MinLogLevel = level
		run.ConfigPath = config.ResolvePath(configFile)
		run.NoColor = noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(cmd.OutOrStdout())
		rootCtx = settings.IntoContext(rootCtx, run)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBreadcrumb(rootCtx, cmd)
	},
}

func runBreadcrumb(ctx context.Context, cmd *cobra.Command) error {
	run := settings.FromContextOrDefault(ctx)
	lgr := logger.FromContext(ctx)

	if noEllipsis && cmd.Flags().Changed("ellipsis") {
		return usageError(errors.New("--ellipsis and --no-ellipsis are mutually exclusive"))
	}
	cfg, err := config.Load(run.ConfigPath)
	if err != nil {
		return usageError(err)
	}
	applyFlagOverrides(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}
	format, err := formatter.ParseFormat(cfg.Render.Output)
	if err != nil {
		return usageError(err)
	}
	run.Output = string(format)
	run.Width = resolveWidth(cfg.Render.MaxWidth)
	lgr.V(1).Info("Rendering breadcrumb", "config", run.ConfigPath, "output", run.Output, "width", run.Width)

	info := breadcrumb.Info{Getcwd: getwd, Home: os.Getenv("HOME")}
	if cmd.Flags().Changed("cwd") {
		info.Getcwd = func() (string, error) { return cwdOverride, nil }
	}
	if cmd.Flags().Changed("home") {
		info.Home = homeOverride
	}

	segments, err := breadcrumb.FullPath(ctx, info, cfg.Segment)
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), err)
	}

	out, err := formatter.Render(segments, format, formatter.TextOptions{
		SoftDivider: cfg.Render.SoftDivider,
		NoColor:     run.NoColor,
		Width:       run.Width,
		Colors: formatter.SegmentColors{
			Contents: formatter.ParseColor(cfg.Render.Colors.Contents),
			Divider:  formatter.ParseColor(cfg.Render.Colors.Divider),
		},
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.File) {
	if flags.Changed("shorten-home") {
		cfg.Segment.ShortenHome = shortenHome
	}
	if flags.Changed("dir-shorten-len") {
		cfg.Segment.DirShortenLen = dirShortenLen
	}
	if flags.Changed("dir-limit-depth") {
		cfg.Segment.DirLimitDepth = dirLimitDepth
	}
	if flags.Changed("use-path-separator") {
		cfg.Segment.UsePathSeparator = usePathSeparator
	}
	if flags.Changed("ellipsis") {
		cfg.Segment.Ellipsis = breadcrumb.EllipsisText(ellipsis)
	}
	if noEllipsis {
		cfg.Segment.Ellipsis = nil
	}
	if flags.Changed("output") {
		cfg.Render.Output = output
	}
	if flags.Changed("soft-divider") {
		cfg.Render.SoftDivider = softDivider
	}
	if flags.Changed("width") {
		cfg.Render.MaxWidth = outputWidth
	}
}

// reportFailure prints err as a failed result and exits 1 without cobra
// printing it again.
func reportFailure(w io.Writer, err error) error {
	fmt.Fprintf(w, "%s: %s\n", settings.CliBinaryName, textdecode.Failure(err))
	return &ExitError{Code: 1, Err: err, Silent: true}
}

func init() { //nolint:gochecknoinits
	flags := rootCmd.Flags()
	flags.StringVar(&cwdOverride, "cwd", "", "render this path instead of the working directory")
	flags.StringVar(&homeOverride, "home", "", "home directory used for ~ shortening (default $HOME)")
	flags.BoolVar(&shortenHome, "shorten-home", true, "replace a leading home directory with ~ (default from config)")
	flags.IntVar(&dirShortenLen, "dir-shorten-len", 0, "truncate every ancestor but the last to N characters (0 = off)")
	flags.IntVar(&dirLimitDepth, "dir-limit-depth", 0, "keep only the last N ancestors (0 = off)")
	flags.BoolVar(&usePathSeparator, "use-path-separator", false, "draw the path separator instead of soft dividers")
	flags.StringVar(&ellipsis, "ellipsis", breadcrumb.DefaultEllipsis, "text standing in for ancestors dropped by --dir-limit-depth")
	flags.BoolVar(&noEllipsis, "no-ellipsis", false, "omit the ellipsis entirely")
	flags.StringVarP(&output, "output", "o", string(formatter.FormatText), "output format: text|json|yaml|toml")
	flags.StringVar(&softDivider, "soft-divider", " > ", "divider drawn between segments in text output")
	flags.IntVar(&outputWidth, "width", 0, "truncate text output to N columns (0 = no limit, -1 = terminal width)")
	flags.BoolVar(&noColor, "no-color", false, "disable color output")

	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output to stderr")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(decodeCmd)
}

// Execute runs the root command. A returned *ExitError carries the process
// exit status.
func Execute() error {
	return rootCmd.Execute()
}
