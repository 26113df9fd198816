package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/hwident/internal/collector/cpuid"
)

type cpuidCommand struct {
	*Context
	renderFlags

	// flags
	file string
	has  []string
}

func CPUIDCommand(ctx *Context) *cobra.Command {
	var cmd cpuidCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "cpuid",
		Short: "Identify the processor",
		Long: "Identify the processor from the live CPUID instruction or from a saved dump.\n" +
			"With --has, exit non-zero unless every listed feature is present.",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.file, "file", "", "load the register table from a text or YAML dump")
	cobraCmd.Flags().StringSliceVar(&cmd.has, "has", nil, "required features, e.g. sse4_2,avx2")
	cmd.register(cobraCmd)

	return cobraCmd
}

func (cmd *cpuidCommand) run(cobraCmd *cobra.Command, _ []string) error {
	cfg := cmd.Config
	override(cobraCmd.Flags(), "file", &cfg.CPUID.File, cmd.file)
	cmd.apply(cobraCmd, cfg)

	if len(cmd.has) > 0 {
		id, err := cmd.identity(cobraCmd, cfg.CPUID.File)
		if err != nil {
			return err
		}
		ok, missing := id.HasAll(cmd.has...)
		if !ok {
			return fmt.Errorf("missing cpu features: %s", strings.Join(missing, ", "))
		}
		cmd.Log.Debug("all required features present", "features", cmd.has)
		return nil
	}

	c := cpuid.New(cfg.CPUID.File)
	if err := c.Collect(cobraCmd.Context()); err != nil {
		return fmt.Errorf("cpuid: %s: %w", cpuid.Describe(err), err)
	}
	return cmd.render(cobraCmd, c.Node())
}

// identity uses the process-wide host identity unless a dump file is given.
func (cmd *cpuidCommand) identity(cobraCmd *cobra.Command, file string) (*cpuid.Identity, error) {
	if file == "" {
		if !cpuid.Present() {
			err := cpuid.ErrNoCPUID
			return nil, fmt.Errorf("cpuid: %s: %w", cpuid.Describe(err), err)
		}
		return cpuid.Cached(), nil
	}

	c := cpuid.New(file)
	if err := c.Collect(cobraCmd.Context()); err != nil {
		return nil, fmt.Errorf("cpuid: %s: %w", cpuid.Describe(err), err)
	}
	return c.Identity, nil
}
