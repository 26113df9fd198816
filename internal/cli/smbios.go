package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/hwident/internal/collector/smbios"
)

type smbiosCommand struct {
	*Context
	renderFlags

	// flags
	tableType int
	source    string
	file      string
}

func SMBIOSCommand(ctx *Context) *cobra.Command {
	var cmd smbiosCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "smbios",
		Short: "Decode the SMBIOS table",
		Long: "Read the SMBIOS table from sysfs, /dev/mem, dmidecode or a saved dump\n" +
			"and decode every structure, or only those of --type.",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().IntVarP(&cmd.tableType, "type", "t", -1, "only decode structures of this type")
	cobraCmd.Flags().StringVar(&cmd.source, "source", string(smbios.SourceAuto), "table source: auto, sysfs, devmem, dmidecode or file")
	cobraCmd.Flags().StringVar(&cmd.file, "file", "", "raw table or dmidecode --dump-bin file, implies --source file")
	cmd.register(cobraCmd)

	return cobraCmd
}

func (cmd *smbiosCommand) run(cobraCmd *cobra.Command, _ []string) error {
	cfg := cmd.Config
	flags := cobraCmd.Flags()
	override(flags, "type", &cfg.SMBIOS.Type, cmd.tableType)
	override(flags, "source", &cfg.SMBIOS.Source, cmd.source)
	override(flags, "file", &cfg.SMBIOS.File, cmd.file)
	if flags.Changed("file") && !flags.Changed("source") {
		cfg.SMBIOS.Source = string(smbios.SourceFile)
	}
	cmd.apply(cobraCmd, cfg)

	sm, err := newSMBIOS(cfg)
	if err != nil {
		return err
	}
	if err := sm.Collect(cobraCmd.Context()); err != nil {
		return fmt.Errorf("smbios: %w", err)
	}

	return cmd.render(cobraCmd, sm.Node())
}

func newSMBIOS(cfg *Config) (*smbios.SMBIOS, error) {
	src, err := smbios.ParseSource(cfg.SMBIOS.Source)
	if err != nil {
		return nil, err
	}
	filter, err := smbios.TypeFilter(cfg.SMBIOS.Type)
	if err != nil {
		return nil, err
	}
	if src == smbios.SourceFile && cfg.SMBIOS.File == "" {
		return nil, fmt.Errorf("smbios source %q needs a file", src)
	}
	return smbios.New(src, cfg.SMBIOS.File, filter), nil
}
