package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/hwident/internal/collector/cpuid"
	"github.com/zenithax-cc/hwident/internal/collector/smbios"
	"github.com/zenithax-cc/hwident/internal/output"
	"github.com/zenithax-cc/hwident/pkg/collector"
)

type reportCommand struct {
	*Context
	renderFlags

	// flags
	metricsFile string
	module      string
	cpuidFile   string
	source      string
	smbiosFile  string
}

func ReportCommand(ctx *Context) *cobra.Command {
	var cmd reportCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "report",
		Short: "Collect CPUID and SMBIOS and render one report",
		Long: "Run the CPUID and SMBIOS collectors concurrently and render their combined tree.\n" +
			"A failing collector is left out of the report; the command fails only if none succeed.",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.metricsFile, "metrics-file", "", "also write a Prometheus textfile here")
	cobraCmd.Flags().StringVarP(&cmd.module, "module", "m", collector.ModuleAll, "collect only this module: all, cpuid or smbios")
	cobraCmd.Flags().StringVar(&cmd.cpuidFile, "cpuid-file", "", "read the CPUID table from a dump instead of the host")
	cobraCmd.Flags().StringVar(&cmd.source, "source", string(smbios.SourceAuto), "SMBIOS source: auto, sysfs, devmem, dmidecode or file")
	cobraCmd.Flags().StringVar(&cmd.smbiosFile, "smbios-file", "", "read the SMBIOS table from a dump, implies --source file")
	cmd.register(cobraCmd)

	return cobraCmd
}

func (cmd *reportCommand) run(cobraCmd *cobra.Command, _ []string) error {
	cfg := cmd.Config
	flags := cobraCmd.Flags()
	override(flags, "metrics-file", &cfg.MetricsFile, cmd.metricsFile)
	override(flags, "cpuid-file", &cfg.CPUID.File, cmd.cpuidFile)
	override(flags, "source", &cfg.SMBIOS.Source, cmd.source)
	override(flags, "smbios-file", &cfg.SMBIOS.File, cmd.smbiosFile)
	if flags.Changed("smbios-file") && !flags.Changed("source") {
		cfg.SMBIOS.Source = string(smbios.SourceFile)
	}
	cmd.apply(cobraCmd, cfg)

	cpu := cpuid.New(cfg.CPUID.File)
	sm, err := newSMBIOS(cfg)
	if err != nil {
		return err
	}

	m := collector.NewManager(cpu, sm).WithLogger(cmd.Log)
	if err := m.SetModule(cmd.module); err != nil {
		return err
	}

	if err := m.Collect(cobraCmd.Context()); err != nil {
		if m.Collected() == 0 {
			return err
		}
		cmd.Log.Warn("partial report", "err", err)
	}

	if err := cmd.render(cobraCmd, m.Node()); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := output.WriteMetrics(cfg.MetricsFile, cpu.Identity, sm.Raw); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		cmd.Log.Info("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}
