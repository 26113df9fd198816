package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zenithax-cc/hwident/pkg/node"
)

type Collector interface {
	Name() string
	Collect(context.Context) error
	Node() *node.Node
}

const ModuleAll = "all"

var ErrUnknownModule = errors.New("collector: unknown module")

type Manager struct {
	log        *slog.Logger
	collectors []Collector
	collected  []bool
}

func NewManager(cs ...Collector) *Manager {
	return &Manager{
		log:        slog.Default(),
		collectors: cs,
	}
}

func (m *Manager) WithLogger(l *slog.Logger) *Manager {
	m.log = l
	return m
}

// SetModule keeps only the collector named module. "all" keeps every one.
func (m *Manager) SetModule(module string) error {
	if module == "" || module == ModuleAll {
		return nil
	}

	idx := slices.IndexFunc(m.collectors, func(c Collector) bool { return c.Name() == module })
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownModule, module)
	}
	m.collectors = []Collector{m.collectors[idx]}
	return nil
}

func (m *Manager) Modules() []string {
	names := make([]string, 0, len(m.collectors))
	for _, c := range m.collectors {
		names = append(names, c.Name())
	}
	return names
}

// Collect runs every collector concurrently. A failing collector does not
// stop the others; its error is returned joined with the rest and it is left
// out of Node.
func (m *Manager) Collect(ctx context.Context) error {
	m.collected = make([]bool, len(m.collectors))
	errs := make([]error, len(m.collectors))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range m.collectors {
		g.Go(func() error {
			start := time.Now()
			if err := c.Collect(gctx); err != nil {
				m.log.Debug("collector failed", "module", c.Name(), "err", err)
				errs[i] = fmt.Errorf("%s: %w", c.Name(), err)
				return nil
			}
			m.log.Debug("collector done", "module", c.Name(), "elapsed", time.Since(start))
			m.collected[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return errors.Join(errs...)
}

// Collected reports how many collectors finished without error.
func (m *Manager) Collected() int {
	n := 0
	for _, ok := range m.collected {
		if ok {
			n++
		}
	}
	return n
}

// Node combines the trees of the successful collectors under one root.
func (m *Manager) Node() *node.Node {
	root := node.New("hwident", node.Plain)
	for i, c := range m.collectors {
		if i < len(m.collected) && m.collected[i] {
			root.Append(c.Node())
		}
	}
	return root
}
