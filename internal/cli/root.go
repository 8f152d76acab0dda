// Package cli implements the tzconv command line front end
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"tzconv/internal/config"
	"tzconv/internal/converter"
	"tzconv/internal/validation"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

// convertInput is the validated shape of the root command's flags
type convertInput struct {
	Time   string `validate:"required,timeofday"`
	Source string `validate:"omitempty,tzname"`
	Target string `validate:"omitempty,tzname"`
}

// app carries state shared between the root command and its subcommands
type app struct {
	envFile string
	verbose bool
	cfg     *config.Config
	log     *logrus.Logger
}

// NewRootCommand builds the tzconv command tree
func NewRootCommand() *cobra.Command {
	a := &app{}
	var in convertInput

	cmd := &cobra.Command{
		Use:   "tzconv",
		Short: "Convert a time of day between timezones",
		Long: `tzconv converts a 24h time of day from one timezone to another using
each zone's fixed UTC offset. Daylight saving and calendar dates are ignored.

Examples:

  # Convert 23:45 UTC to Lord Howe Standard Time:
  $ tzconv -t 23:45:00 -T LHST

  # Convert from Japan to US Eastern Daylight Time:
  $ tzconv -t 09:00:00 -S JST -T EDT

  # List the supported zones:
  $ tzconv zones`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, in)
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env", defaultEnvFile, "path to a dotenv file with defaults")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVarP(&in.Time, "time", "t", "", "time of day to convert, HH:MM:SS in 24h")
	cmd.Flags().StringVarP(&in.Source, "source", "S", "", "source timezone (default from DEFAULT_SOURCE_ZONE, else UTC)")
	cmd.Flags().StringVarP(&in.Target, "target", "T", "", "target timezone (default from DEFAULT_TARGET_ZONE, else UTC)")
	_ = cmd.MarkFlagRequired("time")

	cmd.AddCommand(newZonesCommand(), newTokenCommand(a))

	return cmd
}

// Execute runs the command tree against the process arguments
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// setup loads the dotenv file and configuration
func (a *app) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		// A missing default file is fine, a missing explicit one is not
		if err := godotenv.Load(a.envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env") {
				return fmt.Errorf("failed to load env file: %w", err)
			}
		}
	}

	a.cfg = &config.Config{}
	if err := a.cfg.LoadFromEnv(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	a.log = a.cfg.Logger()
	a.log.SetOutput(cmd.ErrOrStderr())
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	} else if a.log.GetLevel() > logrus.WarnLevel {
		// Keep stderr quiet unless asked
		a.log.SetLevel(logrus.WarnLevel)
	}
	return nil
}

func (a *app) convert(cmd *cobra.Command, in convertInput) error {
	if err := validation.Struct(in); err != nil {
		return errors.New(validation.Message(err))
	}

	t, err := validation.ParseTimeOfDay(in.Time)
	if err != nil {
		return err
	}
	source, err := validation.ParseZone(in.Source, a.cfg.Zones.DefaultSource)
	if err != nil {
		return err
	}
	target, err := validation.ParseZone(in.Target, a.cfg.Zones.DefaultTarget)
	if err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"source": source,
		"target": target,
		"time":   t,
	}).Debug("Converting")

	fmt.Fprintln(cmd.OutOrStdout(), converter.FormatLine(t, source, target))
	return nil
}
