// Package commands implements the openrsvp command tree.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	buildinfo "github.com/brandonleon/invite/cmd"
	"github.com/brandonleon/invite/cmd/openrsvp/commands/channels"
	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/cmd/openrsvp/commands/events"
	"github.com/brandonleon/invite/cmd/openrsvp/commands/rsvps"
	"github.com/brandonleon/invite/internal/config"
	"github.com/brandonleon/invite/internal/errors"
	"github.com/brandonleon/invite/internal/logging"
	"github.com/brandonleon/invite/internal/output"
	"github.com/brandonleon/invite/internal/settings"
)

// debugEnvVar enables debug logging when no -v flag is given.
const debugEnvVar = "OPENRSVP_DEBUG"

// rootOptions holds the persistent flags of one command tree.
type rootOptions struct {
	baseURL        string
	token          string
	defaultChannel string
	json           bool
	quiet          bool
	verbosity      int
	logFormat      string
	configPath     string
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "openrsvp",
		Short: "Command-line client for the OpenRSVP server",
		Long: `openrsvp manages events, RSVPs and channels on an OpenRSVP server.

Connection settings are taken from, in order: command-line flags, the
OPENRSVP_BASE_URL, OPENRSVP_TOKEN and OPENRSVP_DEFAULT_CHANNEL environment
variables, and the config file. Run 'openrsvp config path' to see where the
config file lives.`,
		Example: `  # List events on a local server
  openrsvp events list

  # Point at another server for one call
  openrsvp --base-url https://rsvp.example.com channels list

  # Save the server address
  openrsvp config set-base-url https://rsvp.example.com

  # Raw JSON for scripts
  openrsvp --json events show 42`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       buildinfo.Version,
	}
	root.SetVersionTemplate("openrsvp version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.baseURL, "base-url", "", "OpenRSVP server URL (overrides env and config)")
	pf.StringVar(&opts.token, "token", "", "authentication token (overrides env and config)")
	pf.StringVar(&opts.defaultChannel, "default-channel", "", "channel used when a command does not name one")
	pf.BoolVar(&opts.json, "json", false, "print raw JSON responses")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress success messages")
	pf.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")
	pf.StringVar(&opts.logFormat, "log-format", string(logging.FormatText), "log format: text, json")
	pf.StringVar(&opts.configPath, "config", "", "config file path (default $XDG_CONFIG_HOME/openrsvp/config.toml)")

	root.AddCommand(
		events.NewCmd(),
		rsvps.NewCmd(),
		channels.NewCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// setup configures logging and resolves settings for the invocation.
func setup(cmd *cobra.Command, opts *rootOptions) error {
	logger, err := setupLogging(cmd, opts)
	if err != nil {
		return err
	}
	logging.ConfigureColor(cmd.OutOrStdout())

	store := config.NewStore(opts.configPath)
	store.Logger = logger

	env, err := settings.LoadEnv()
	if err != nil {
		return errors.NewUserError(err, "check the OPENRSVP_* environment variables")
	}

	explicit := settings.Partial{
		BaseURL:        opts.baseURL,
		Token:          opts.token,
		DefaultChannel: opts.defaultChannel,
	}
	file := store.Read()

	mode := settings.OutputHuman
	if opts.json {
		mode = settings.OutputJSON
	}
	s, err := settings.Resolve(explicit, env, settings.Static(file), settings.Options{
		Output: mode,
		Quiet:  opts.quiet,
	})
	if err != nil {
		return err
	}
	logger.Debug("settings resolved", "settings", s, "config", store.Path)

	rt := &cmdutil.Runtime{
		Settings: s,
		Layers:   cmdutil.Layers{Explicit: explicit, Env: env.Partial(), File: file},
		Store:    store,
		Printer:  newPrinter(cmd, opts),
		Logger:   logger,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.NewContext(ctx, logger)
	cmd.SetContext(cmdutil.NewContext(ctx, rt))
	return nil
}

// setupLogging installs the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command, opts *rootOptions) (*slog.Logger, error) {
	if opts.quiet && opts.verbosity > 0 {
		return nil, errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	format := logging.Format(opts.logFormat)
	if format != logging.FormatText && format != logging.FormatJSON {
		return nil, errors.NewValidationError("--log-format", opts.logFormat, "must be 'text' or 'json'")
	}

	var level slog.Level
	if opts.quiet {
		level = slog.LevelError
	} else {
		v := opts.verbosity
		if v == 0 {
			switch os.Getenv(debugEnvVar) {
			case "1", "true":
				v = 2
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)
	return logger, nil
}

func newPrinter(cmd *cobra.Command, opts *rootOptions) *output.Printer {
	return output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Options{
		JSON:  opts.json,
		Quiet: opts.quiet,
	})
}

// Execute runs the command tree against the process arguments and streams.
func Execute() error {
	return ExecuteArgs(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs a fresh command tree with the given arguments. Errors are
// reported on stderr before being returned; the caller only decides the
// exit status.
func ExecuteArgs(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	// Flag parsing may have failed before setup ran, so read --json directly.
	jsonMode, _ := root.PersistentFlags().GetBool("json")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	logging.ConfigureColor(stderr)
	p := output.New(stdout, stderr, output.Options{JSON: jsonMode, Quiet: quiet})
	cmdutil.Report(p, err)

	return err
}
