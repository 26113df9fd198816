package cpuid

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DumpVersion is written to the version= header of text dumps.
const DumpVersion = "hwident-1.0"

type DumpFormat string

const (
	DumpText DumpFormat = "text"
	DumpYAML DumpFormat = "yaml"
)

type dumpSection struct {
	token   string
	section Section
	leaf    uint32
	subleaf bool
	rows    func(*Raw) []Regs
}

var dumpSections = []dumpSection{
	{"basic_cpuid", SectionBasic, 0, false, func(r *Raw) []Regs { return r.Basic[:] }},
	{"ext_cpuid", SectionExt, extBase, false, func(r *Raw) []Regs { return r.Ext[:] }},
	{"intel_fn4", SectionIntelFn4, 4, true, func(r *Raw) []Regs { return r.IntelFn4[:] }},
	{"intel_fn11", SectionIntelFn11, 0xb, true, func(r *Raw) []Regs { return r.IntelFn11[:] }},
	{"intel_fn12h", SectionIntelFn12h, 0x12, true, func(r *Raw) []Regs { return r.IntelFn12h[:] }},
	{"intel_fn14h", SectionIntelFn14h, 0x14, true, func(r *Raw) []Regs { return r.IntelFn14h[:] }},
	{"amd_fn8000001dh", SectionAMDFn8000001Dh, 0x8000001d, true, func(r *Raw) []Regs { return r.AMDFn8000001Dh[:] }},
}

func findSection(token string) (dumpSection, bool) {
	for _, s := range dumpSections {
		if s.token == token {
			return s, true
		}
	}
	return dumpSection{}, false
}

// WriteDump writes raw in the libcpuid text format:
//
//	version=...
//	basic_cpuid[0]=0000000d 756e6547 6c65746e 49656e69
func WriteDump(w io.Writer, raw *Raw) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "version=%s\n", DumpVersion)
	for _, s := range dumpSections {
		if !raw.Has(s.section) {
			continue
		}
		for i, r := range s.rows(raw) {
			fmt.Fprintf(bw, "%s[%d]=%08x %08x %08x %08x\n", s.token, i, r.EAX, r.EBX, r.ECX, r.EDX)
		}
	}
	return bw.Flush()
}

// ParseDump reads a text dump. Unknown tokens and lines without '=' are
// skipped; a known token with a bad index or register list fails with
// ErrBadFmt.
func ParseDump(r io.Reader) (*Raw, error) {
	raw := &Raw{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		token, value, ok := strings.Cut(line, "=")
		if !ok {
			slog.Debug("cpuid dump: missing '='", "line", lineNo)
			continue
		}
		token = strings.TrimSpace(token)
		if token == "version" {
			continue
		}

		name, rest, ok := strings.Cut(token, "[")
		s, known := findSection(name)
		if !ok || !known {
			slog.Debug("cpuid dump: unknown token", "line", lineNo, "token", token)
			continue
		}

		rows := s.rows(raw)
		idx, err := strconv.Atoi(strings.TrimSuffix(rest, "]"))
		if err != nil || idx < 0 || idx >= len(rows) {
			return nil, errors.Wrapf(ErrBadFmt, "line %d: bad index in %q", lineNo, token)
		}

		regs, err := parseRegs(value)
		if err != nil {
			return nil, errors.Wrapf(ErrBadFmt, "line %d: %v", lineNo, err)
		}
		rows[idx] = regs
		raw.Present |= s.section
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read cpuid dump")
	}

	return raw, nil
}

func parseRegs(value string) (Regs, error) {
	fields := strings.Fields(value)
	if len(fields) != 4 {
		return Regs{}, fmt.Errorf("want 4 registers, got %d", len(fields))
	}

	var v [4]uint32
	for i, f := range fields {
		n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(f), "0x"), 16, 32)
		if err != nil {
			return Regs{}, fmt.Errorf("register %q: %w", f, err)
		}
		v[i] = uint32(n)
	}
	return Regs{EAX: v[0], EBX: v[1], ECX: v[2], EDX: v[3]}, nil
}

// Hex32 is a register value that reads and writes as a YAML hex integer.
type Hex32 uint32

func (h Hex32) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%08x", uint32(h))}, nil
}

func (h *Hex32) UnmarshalYAML(n *yaml.Node) error {
	v, err := strconv.ParseUint(n.Value, 0, 32)
	if err != nil {
		return errors.Wrapf(ErrBadFmt, "line %d: %v", n.Line, err)
	}
	*h = Hex32(v)
	return nil
}

type Entry struct {
	Table   string `yaml:"table"`
	Leaf    Hex32  `yaml:"leaf"`
	Subleaf uint32 `yaml:"subleaf"`
	EAX     Hex32  `yaml:"eax"`
	EBX     Hex32  `yaml:"ebx"`
	ECX     Hex32  `yaml:"ecx"`
	EDX     Hex32  `yaml:"edx"`
}

// Capture is the YAML form of a Raw table, one entry per executed leaf.
type Capture struct {
	Version string  `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

func (r *Raw) Capture() *Capture {
	c := &Capture{Version: DumpVersion}
	for _, s := range dumpSections {
		if !r.Has(s.section) {
			continue
		}
		for i, regs := range s.rows(r) {
			e := Entry{
				Table: s.token,
				EAX:   Hex32(regs.EAX),
				EBX:   Hex32(regs.EBX),
				ECX:   Hex32(regs.ECX),
				EDX:   Hex32(regs.EDX),
			}
			if s.subleaf {
				e.Leaf, e.Subleaf = Hex32(s.leaf), uint32(i)
			} else {
				e.Leaf = Hex32(s.leaf + uint32(i))
			}
			c.Entries = append(c.Entries, e)
		}
	}
	return c
}

func (c *Capture) Raw() (*Raw, error) {
	raw := &Raw{}
	for i, e := range c.Entries {
		s, ok := findSection(e.Table)
		if !ok {
			return nil, errors.Wrapf(ErrBadFmt, "entry %d: unknown table %q", i, e.Table)
		}

		idx := int(e.Subleaf)
		if !s.subleaf {
			idx = int(uint32(e.Leaf) - s.leaf)
		}
		rows := s.rows(raw)
		if idx < 0 || idx >= len(rows) {
			return nil, errors.Wrapf(ErrBadFmt, "entry %d: leaf %#x subleaf %d out of range", i, uint32(e.Leaf), e.Subleaf)
		}
		rows[idx] = Regs{EAX: uint32(e.EAX), EBX: uint32(e.EBX), ECX: uint32(e.ECX), EDX: uint32(e.EDX)}
		raw.Present |= s.section
	}
	return raw, nil
}

func formatFromPath(path string) DumpFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DumpYAML
	}
	return DumpText
}

// LoadDump reads a text or YAML dump, chosen by file extension.
func LoadDump(path string) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	if formatFromPath(path) == DumpText {
		return ParseDump(f)
	}

	var c Capture
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, errors.Wrapf(ErrBadFmt, "%s: %v", path, err)
	}
	return c.Raw()
}

func SaveDump(path string, raw *Raw, format DumpFormat) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == DumpYAML {
		enc := yaml.NewEncoder(f)
		if err := enc.Encode(raw.Capture()); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}
	return WriteDump(f, raw)
}
