package cpuid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zenithax-cc/hwident/pkg/node"
)

// CPU captures and identifies one register table, live or from a dump file.
type CPU struct {
	DumpFile string

	Raw      *Raw
	Identity *Identity

	log *slog.Logger
}

func New(dumpFile string) *CPU {
	return &CPU{
		DumpFile: dumpFile,
		log:      slog.Default(),
	}
}

func (c *CPU) Name() string {
	return "cpuid"
}

func (c *CPU) Collect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := c.capture()
	if err != nil {
		return err
	}

	id, err := Identify(raw)
	if errors.Is(err, ErrCPUUnknown) {
		c.log.Debug("unrecognised cpu vendor", "vendor", id.VendorStr)
	} else if err != nil {
		return err
	}

	c.Raw, c.Identity = raw, id
	return nil
}

func (c *CPU) capture() (*Raw, error) {
	if c.DumpFile != "" {
		c.log.Debug("loading cpuid dump", "path", c.DumpFile)
		return LoadDump(c.DumpFile)
	}
	return Collect()
}

func (c *CPU) Node() *node.Node {
	if c.Identity == nil {
		return BuildNode()
	}
	return BuildNode(c.Identity)
}
