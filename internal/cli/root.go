// Package cli wires the hwident command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	ctx := &Context{Log: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Identify CPUs from raw CPUID leaves and decode SMBIOS tables",
		Long: AppName + " captures the CPUID register table and the SMBIOS firmware table once,\n" +
			"then decodes them into a report: vendor, features, cache geometry and codename\n" +
			"for the processor, and every known SMBIOS structure for the platform.",
		SilenceUsage:      true,
		PersistentPreRunE: ctx.persistentPreRunE,
	}

	rootCmd.PersistentFlags().StringVar(&ctx.ConfigPath, "config", DefaultConfigPath(), "config file")
	rootCmd.PersistentFlags().BoolVar(&ctx.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&ctx.LogJSON, "log-json", false, "log as JSON")
	rootCmd.PersistentFlags().StringVar(&ctx.Color, "color", "auto", "color text output: auto, always or never")

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		CPUIDCommand(ctx),
		SMBIOSCommand(ctx),
		DumpCommand(ctx),
		ReportCommand(ctx),
	)

	return rootCmd
}

func (c *Context) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	cfg, err := LoadConfig(c.ConfigPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	override(flags, "color", &cfg.Color, c.Color)
	override(flags, "log-json", &cfg.Log.JSON, c.LogJSON)
	if c.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	c.Config, c.Log = cfg, logger
	c.Log.Debug("config loaded", "path", c.ConfigPath, "format", cfg.Format, "color", cfg.Color)
	return nil
}
