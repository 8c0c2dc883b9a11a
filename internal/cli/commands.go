package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/kevgo/tertestrial/cmd/tertestrial/commands/actions"
	"github.com/kevgo/tertestrial/cmd/tertestrial/commands/setup"
	"github.com/kevgo/tertestrial/internal/commands"
	"github.com/kevgo/tertestrial/internal/version"
	"github.com/kevgo/tertestrial/pkg/config"
	"github.com/kevgo/tertestrial/pkg/executor"
	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/kevgo/tertestrial/pkg/output"
	"github.com/kevgo/tertestrial/pkg/pipe"
	"github.com/kevgo/tertestrial/pkg/settings"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var current *settings.Settings

	rootCmd := &cobra.Command{
		Use:     "tertestrial",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Example: commands.MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf(commands.MsgErrLoadSettings, err)
			}
			current = s
			logging.SetupLogger(s.Verbose)
			log.Debug().
				Str("command", cmd.Name()).
				Str("config", s.Config).
				Str("pipe", s.Pipe).
				Bool("dry_run", s.DryRun).
				Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			styled := resolveFormat(current.Output, cmd.OutOrStdout()).Styled()
			return runListen(cmd.Context(), current, cmd.OutOrStdout(), cmd.ErrOrStderr(), styled)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountP("verbose", "v", commands.MsgFlagVerbose)
	flags.Bool("dry-run", false, commands.MsgFlagDryRun)
	flags.StringP("config", "c", config.FileName, commands.MsgFlagConfig)
	flags.StringP("pipe", "p", pipe.DefaultName, commands.MsgFlagPipe)
	flags.String("shell", executor.DefaultShell, commands.MsgFlagShell)
	flags.StringP("output", "o", "auto", commands.MsgFlagOutput)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSetupCmd(&current))
	rootCmd.AddCommand(newActionsCmd(&current))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: commands.MsgVersionShort,
		Long:  commands.MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, commands.MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, commands.MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, commands.MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newSetupCmd(current **settings.Settings) *cobra.Command {
	cmd := setup.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s := *current
		if err := config.Create(s.Config); err != nil {
			return err
		}
		log.Info().Str("path", s.Config).Msg("Created configuration file")
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), setup.MsgCreated, s.Config)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), setup.MsgEdit)
		return nil
	}
	return cmd
}

func newActionsCmd(current **settings.Settings) *cobra.Command {
	cmd := actions.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s := *current
		format, err := output.ParseFormat(s.Output)
		if err != nil {
			return err
		}
		cfg, err := config.Load(s.Config)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		return output.RenderActions(out, cfg, resolveFormatValue(format, out))
	}
	return cmd
}

// resolveFormat turns the output setting into a concrete format for w.
// Unknown values fall back to auto detection.
func resolveFormat(setting string, w io.Writer) output.Format {
	format, err := output.ParseFormat(setting)
	if err != nil {
		log.Warn().Str("output", setting).Msg("Unknown output format, detecting")
		format = output.FormatAuto
	}
	return resolveFormatValue(format, w)
}

func resolveFormatValue(format output.Format, w io.Writer) output.Format {
	if f, ok := w.(*os.File); ok {
		return format.Resolve(f)
	}
	if format == output.FormatAuto {
		return output.FormatText
	}
	return format
}
