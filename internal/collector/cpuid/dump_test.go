package cpuid

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRaw() *Raw {
	raw := &Raw{Present: SectionBasic | SectionExt | SectionIntelFn4}
	raw.Basic[0] = vendorRegs("GenuineIntel", 4)
	raw.Basic[1] = Regs{EAX: 0x000906ea, EBX: 0x00100800, ECX: 0x7ffafbbf, EDX: 0xbfebfbff}
	raw.Ext[0].EAX = 0x80000008
	raw.IntelFn4[0] = cacheLeaf(cacheTypeData, 1, 8, 64, 64)
	return raw
}

func TestDumpTextRoundTrip(t *testing.T) {
	raw := sampleRaw()

	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, raw))
	assert.True(t, strings.HasPrefix(buf.String(), "version="+DumpVersion+"\n"))
	assert.Contains(t, buf.String(), "basic_cpuid[1]=000906ea 00100800 7ffafbbf bfebfbff\n")
	assert.NotContains(t, buf.String(), "intel_fn11")

	got, err := ParseDump(&buf)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDumpYAMLRoundTrip(t *testing.T) {
	raw := sampleRaw()

	out, err := yaml.Marshal(raw.Capture())
	require.NoError(t, err)
	assert.Contains(t, string(out), "leaf: 0x80000000")

	var c Capture
	require.NoError(t, yaml.Unmarshal(out, &c))
	got, err := c.Raw()
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestParseDump(t *testing.T) {
	t.Run("skips noise", func(t *testing.T) {
		in := "version=0.6.2\n# comment\ngarbage\nmsr[0]=1 2 3 4\nbasic_cpuid[0]=00000001 0 0 0\n"
		raw, err := ParseDump(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, uint32(1), raw.Basic[0].EAX)
		assert.Equal(t, SectionBasic, raw.Present)
	})

	bad := []string{
		"basic_cpuid[32]=0 0 0 0",
		"basic_cpuid[x]=0 0 0 0",
		"ext_cpuid[0]=0 0 0",
		"intel_fn4[0]=0 0 0 zz",
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDump(strings.NewReader(in))
			require.ErrorIs(t, err, ErrBadFmt)
			assert.Equal(t, "Bad file format", Describe(err))
		})
	}
}

func TestCaptureRawOutOfRange(t *testing.T) {
	c := Capture{Entries: []Entry{{Table: "ext_cpuid", Leaf: 0x80000040}}}
	_, err := c.Raw()
	assert.ErrorIs(t, err, ErrBadFmt)

	c = Capture{Entries: []Entry{{Table: "cpuid_leaf9"}}}
	_, err = c.Raw()
	assert.ErrorIs(t, err, ErrBadFmt)
}

func TestSaveLoadDump(t *testing.T) {
	raw := sampleRaw()
	dir := t.TempDir()

	for _, tt := range []struct {
		file   string
		format DumpFormat
	}{
		{"cpu.txt", DumpText},
		{"cpu.yaml", DumpYAML},
	} {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, SaveDump(path, raw, tt.format))

			got, err := LoadDump(path)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}

	_, err := LoadDump(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveDumpErrors(t *testing.T) {
	raw := sampleRaw()

	err := SaveDump(filepath.Join(t.TempDir(), "missing", "cpu.txt"), raw, DumpText)
	assert.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)

	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	assert.Error(t, SaveDump("/dev/full", raw, DumpText))
	assert.Error(t, SaveDump("/dev/full", raw, DumpYAML))
}

func TestCollectFromDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.txt")
	require.NoError(t, SaveDump(path, sampleRaw(), DumpText))

	c := New(path)
	require.NoError(t, c.Collect(t.Context()))
	assert.Equal(t, VendorIntel, c.Identity.Vendor)
	assert.Equal(t, 32, c.Identity.L1DataCache)

	n := c.Node()
	cpu := n.Child("CPU0")
	require.NotNil(t, cpu)
	v, _ := cpu.Get("Vendor")
	assert.Equal(t, "GenuineIntel", v)
	l1, _ := cpu.Child("Cache").Get("L1 D")
	assert.Equal(t, "32 KB, 8-way", l1)
	count, _ := n.Get("Processor Count")
	assert.Equal(t, "1", count)
}
