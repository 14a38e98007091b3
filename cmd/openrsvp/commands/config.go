package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/editor"
	"github.com/brandonleon/invite/internal/logging"
	"github.com/brandonleon/invite/internal/settings"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage openrsvp configuration",
		Long: `Manage the openrsvp config file.

The file is TOML with the keys base_url, token and default_channel, either
at the top level or under an [openrsvp] table.`,
		Example: `  # Save the server address
  openrsvp config set-base-url https://rsvp.example.com

  # See the effective settings and where each came from
  openrsvp config show

See Also: openrsvp config path, openrsvp config edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigSetBaseURLCmd(), newConfigShowCmd(), newConfigPathCmd(), newConfigEditCmd())
	return cmd
}

func newConfigSetBaseURLCmd() *cobra.Command {
	var flagURL string

	cmd := &cobra.Command{
		Use:   "set-base-url [url]",
		Short: "Persist the server base URL",
		Long: `Write base_url to the config file, replacing its contents.

The positional argument wins over --base-url. With neither, the default
http://localhost:8000 is written. Trailing slashes are removed.`,
		Example: `  openrsvp config set-base-url https://rsvp.example.com
  openrsvp config set-base-url -b https://rsvp.example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			target := flagURL
			if len(args) == 1 && args[0] != "" {
				target = args[0]
			}
			if target == "" {
				target = settings.DefaultBaseURL
			}

			path, err := rt.Store.Write(target)
			if err != nil {
				return err
			}

			if rt.Printer.JSONMode() {
				return rt.Printer.JSON(map[string]string{
					"base_url": settings.NormalizeBaseURL(target),
					"path":     path,
				})
			}
			rt.Printer.Success("Saved base_url to %s", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagURL, "base-url", "b", "", "base URL to save (used when no positional url is given)")
	return cmd
}

type shownValue struct {
	Value  string          `json:"value" yaml:"value"`
	Source settings.Origin `json:"source" yaml:"source"`
}

type shownConfig struct {
	ConfigFile     string     `json:"config_file" yaml:"config_file"`
	BaseURL        shownValue `json:"base_url" yaml:"base_url"`
	Token          shownValue `json:"token" yaml:"token"`
	DefaultChannel shownValue `json:"default_channel" yaml:"default_channel"`
	Output         string     `json:"output" yaml:"output"`
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Long: `Print the settings this invocation resolved, with the layer each value
came from (flag, env, file, default or unset). The token is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			s := rt.Settings
			origins := settings.Trace(rt.Layers.Explicit, settings.Static(rt.Layers.Env), settings.Static(rt.Layers.File))

			token, _ := s.Token()
			if token != "" {
				token = logging.MaskValue(token)
			}
			channel, _ := s.DefaultChannel()

			shown := shownConfig{
				ConfigFile:     rt.Store.Path,
				BaseURL:        shownValue{Value: s.BaseURL(), Source: origins.BaseURL},
				Token:          shownValue{Value: token, Source: origins.Token},
				DefaultChannel: shownValue{Value: channel, Source: origins.DefaultChannel},
				Output:         string(s.Output()),
			}

			if rt.Printer.JSONMode() {
				return rt.Printer.JSON(shown)
			}
			return rt.Printer.YAML(shown)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}
			if rt.Printer.JSONMode() {
				return rt.Printer.JSON(map[string]string{"path": rt.Store.Path})
			}
			rt.Printer.Println(rt.Store.Path)
			return nil
		},
	}
}

func newConfigEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in your editor",
		Long: `Open the config file with $EDITOR (or $VISUAL). A missing file is
created first with the default base_url.`,
		Example: `  openrsvp config edit
  EDITOR="code --wait" openrsvp config edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			path := rt.Store.Path
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				if path, err = rt.Store.Write(settings.DefaultBaseURL); err != nil {
					return err
				}
			}

			ed := &editor.Editor{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}
			rt.Logger.Debug("opening editor", "path", path, "editor", editor.Command())
			return ed.Open(cmd.Context(), path)
		},
	}
}
