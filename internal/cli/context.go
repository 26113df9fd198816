package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/hwident/internal/output"
	"github.com/zenithax-cc/hwident/pkg/node"
)

// Context is shared by every command. Config is loaded by the root command
// before any subcommand runs.
type Context struct {
	ConfigPath string
	Debug      bool
	LogJSON    bool
	Color      string

	Config *Config
	Log    *slog.Logger
}

type renderFlags struct {
	format string
	output string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", string(output.FormatText), "output format: text, json, yaml or xlsx")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
}

func (f *renderFlags) apply(cmd *cobra.Command, cfg *Config) {
	override(cmd.Flags(), "format", &cfg.Format, f.format)
	override(cmd.Flags(), "output", &cfg.Output, f.output)
}

func (c *Context) render(cmd *cobra.Command, n *node.Node) error {
	format, err := output.ParseFormat(c.Config.Format)
	if err != nil {
		return err
	}
	color, err := output.ParseColorMode(c.Config.Color)
	if err != nil {
		return err
	}

	if path := c.Config.Output; path != "" && path != "-" {
		if err := output.RenderFile(path, n, format, color); err != nil {
			return err
		}
		c.Log.Info("report written", "path", path, "format", format)
		return nil
	}

	w := cmd.OutOrStdout()
	return output.Render(w, n, format, output.Options{Color: color.UseColor(w)})
}
