package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/hwident/internal/collector/cpuid"
	"github.com/zenithax-cc/hwident/internal/collector/smbios"
)

type dumpCommand struct {
	*Context

	// flags
	cpuidOut    string
	smbiosOut   string
	cpuidFormat string
	cpuidFile   string
	source      string
	smbiosFile  string
}

func DumpCommand(ctx *Context) *cobra.Command {
	var cmd dumpCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "dump",
		Short: "Save the raw CPUID and SMBIOS tables",
		Long: "Capture the raw tables once and save them, so they can be decoded later on\n" +
			"another machine with --file. Loading an existing dump converts it.",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.cpuidOut, "cpuid-out", "", "write the CPUID register table here")
	cobraCmd.Flags().StringVar(&cmd.smbiosOut, "smbios-out", "", "write the SMBIOS table here")
	cobraCmd.Flags().StringVar(&cmd.cpuidFormat, "cpuid-format", string(cpuid.DumpText), "CPUID dump format: text or yaml")
	cobraCmd.Flags().StringVar(&cmd.cpuidFile, "cpuid-file", "", "read the CPUID table from a dump instead of the host")
	cobraCmd.Flags().StringVar(&cmd.source, "source", string(smbios.SourceAuto), "SMBIOS source: auto, sysfs, devmem, dmidecode or file")
	cobraCmd.Flags().StringVar(&cmd.smbiosFile, "smbios-file", "", "read the SMBIOS table from a dump, implies --source file")

	return cobraCmd
}

func (cmd *dumpCommand) run(cobraCmd *cobra.Command, _ []string) error {
	if cmd.cpuidOut == "" && cmd.smbiosOut == "" {
		return errors.New("nothing to dump: set --cpuid-out and/or --smbios-out")
	}

	cfg := cmd.Config
	flags := cobraCmd.Flags()
	override(flags, "cpuid-file", &cfg.CPUID.File, cmd.cpuidFile)
	override(flags, "source", &cfg.SMBIOS.Source, cmd.source)
	override(flags, "smbios-file", &cfg.SMBIOS.File, cmd.smbiosFile)
	if flags.Changed("smbios-file") && !flags.Changed("source") {
		cfg.SMBIOS.Source = string(smbios.SourceFile)
	}

	if cmd.cpuidOut != "" {
		if err := cmd.dumpCPUID(cfg); err != nil {
			return err
		}
	}
	if cmd.smbiosOut != "" {
		if err := cmd.dumpSMBIOS(cobraCmd, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *dumpCommand) dumpCPUID(cfg *Config) error {
	format := cpuid.DumpFormat(cmd.cpuidFormat)
	if format != cpuid.DumpText && format != cpuid.DumpYAML {
		return fmt.Errorf("unknown cpuid dump format %q", cmd.cpuidFormat)
	}

	var (
		raw *cpuid.Raw
		err error
	)
	if cfg.CPUID.File != "" {
		raw, err = cpuid.LoadDump(cfg.CPUID.File)
	} else {
		raw, err = cpuid.Collect()
	}
	if err != nil {
		return fmt.Errorf("cpuid: %s: %w", cpuid.Describe(err), err)
	}

	if err := cpuid.SaveDump(cmd.cpuidOut, raw, format); err != nil {
		return fmt.Errorf("save cpuid dump: %w", err)
	}
	cmd.Log.Info("cpuid dump written", "path", cmd.cpuidOut, "format", format)
	return nil
}

func (cmd *dumpCommand) dumpSMBIOS(cobraCmd *cobra.Command, cfg *Config) error {
	sm, err := newSMBIOS(cfg)
	if err != nil {
		return err
	}
	if err := sm.Collect(cobraCmd.Context()); err != nil {
		return fmt.Errorf("smbios: %w", err)
	}

	if err := smbios.SaveRawData(cmd.smbiosOut, sm.Raw); err != nil {
		return fmt.Errorf("save smbios dump: %w", err)
	}
	cmd.Log.Info("smbios dump written", "path", cmd.smbiosOut, "bytes", len(sm.Raw.Data))
	return nil
}
