package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"timesheet/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Weekly timesheet entry service",
		Long: `Timesheet serves a small web form for recording weekly hours per user.
The Admin user can bulk-load entries from an Excel workbook.

Running without a subcommand is the same as "timesheet serve".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.bindFlags(rootCmd.PersistentFlags())

	serveCmd := newServeCommand(opts)
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newInspectCommand(opts))

	return rootCmd
}

func (o *rootOptions) bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.configPath, "config", config.DefaultConfigPath(), "path to the TOML config file")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&o.logFormat, "log-format", "", "log format: text or json")
}

// loadFileConfig reads the config file and installs the configured logger.
// Flags win over file values.
func (o *rootOptions) loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileConfig, err := config.LoadConfig(o.configPath)
	if err != nil {
		return config.FileConfig{}, err
	}

	level := stringValue(fileConfig.Log.Level)
	if o.logLevel != "" {
		level = o.logLevel
	}
	format := stringValue(fileConfig.Log.Format)
	if o.logFormat != "" {
		format = o.logFormat
	}

	if err := setupLogger(cmd.ErrOrStderr(), level, format); err != nil {
		return config.FileConfig{}, err
	}
	return fileConfig, nil
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
