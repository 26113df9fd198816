package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/hwident/internal/collector/cpuid"
	"github.com/zenithax-cc/hwident/internal/collector/smbios"
	"github.com/zenithax-cc/hwident/pkg/collector"
)

const cpuidDump = `version=hwident-1.0
basic_cpuid[0]=00000001 756e6547 6c65746e 49656e69
basic_cpuid[1]=000906ea 00100800 7ffafbbf bfebfbff
`

type fixtures struct {
	dir    string
	cpuid  string
	smbios string
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()
	dir := t.TempDir()
	f := fixtures{
		dir:    dir,
		cpuid:  filepath.Join(dir, "cpuid.txt"),
		smbios: filepath.Join(dir, "smbios.bin"),
	}
	require.NoError(t, os.WriteFile(f.cpuid, []byte(cpuidDump), 0o644))

	// type 1 with manufacturer and product strings, then end-of-table
	var data []byte
	data = append(data, 1, 8, 0x01, 0x00, 1, 2, 0, 0)
	data = append(data, "Acme\x00Box\x00\x00"...)
	data = append(data, 127, 4, 0x02, 0x00, 0, 0)
	raw := &smbios.RawData{MajorVersion: 3, MinorVersion: 3, Length: uint32(len(data)), Data: data}
	require.NoError(t, smbios.SaveRawData(f.smbios, raw))
	return f
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), err
}

func TestCPUIDCommand(t *testing.T) {
	fx := newFixtures(t)

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "cpuid", "--file", fx.cpuid)
		require.NoError(t, err)
		assert.Contains(t, out, "[CPUID]")
		assert.Contains(t, out, "GenuineIntel")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "cpuid", "--file", fx.cpuid, "-f", "json")
		require.NoError(t, err)
		assert.True(t, json.Valid([]byte(out)))
		assert.Contains(t, out, `"Vendor": "GenuineIntel"`)
	})

	t.Run("has present", func(t *testing.T) {
		out, err := execute(t, "cpuid", "--file", fx.cpuid, "--has", "fpu,SSE2,sse4_2")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("has missing", func(t *testing.T) {
		_, err := execute(t, "cpuid", "--file", fx.cpuid, "--has", "sse,avx512f,3dnow")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "3dnow, avx512f")
	})

	t.Run("has on live host", func(t *testing.T) {
		_, err := execute(t, "cpuid", "--has", "fpu")
		if !cpuid.Present() {
			assert.ErrorIs(t, err, cpuid.ErrNoCPUID)
			return
		}
		require.NoError(t, err)
		ok, _ := cpuid.Cached().HasAll("fpu")
		assert.True(t, ok)
	})

	t.Run("missing dump", func(t *testing.T) {
		_, err := execute(t, "cpuid", "--file", filepath.Join(fx.dir, "nope.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, cpuid.ErrOpen)
	})
}

func TestSMBIOSCommand(t *testing.T) {
	fx := newFixtures(t)

	out, err := execute(t, "smbios", "--file", fx.smbios)
	require.NoError(t, err)
	assert.Contains(t, out, "[SMBIOS]")
	assert.Contains(t, out, "SMBIOS Version")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Box")

	out, err = execute(t, "smbios", "--file", fx.smbios, "--type", "4")
	require.NoError(t, err)
	assert.NotContains(t, out, "Acme")

	_, err = execute(t, "smbios", "--file", fx.smbios, "--type", "300")
	assert.Error(t, err)

	_, err = execute(t, "smbios", "--source", "file")
	assert.Error(t, err)

	_, err = execute(t, "smbios", "--source", "floppy")
	assert.ErrorIs(t, err, smbios.ErrUnknownSource)
}

func TestDumpCommand(t *testing.T) {
	fx := newFixtures(t)

	_, err := execute(t, "dump")
	assert.Error(t, err)

	cpuOut := filepath.Join(fx.dir, "cpuid.yaml")
	smOut := filepath.Join(fx.dir, "copy.bin")
	_, err = execute(t, "dump",
		"--cpuid-file", fx.cpuid, "--cpuid-out", cpuOut, "--cpuid-format", "yaml",
		"--smbios-file", fx.smbios, "--smbios-out", smOut,
	)
	require.NoError(t, err)

	want, err := cpuid.LoadDump(fx.cpuid)
	require.NoError(t, err)
	got, err := cpuid.LoadDump(cpuOut)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	wantRaw, err := smbios.LoadRawData(fx.smbios)
	require.NoError(t, err)
	gotRaw, err := smbios.LoadRawData(smOut)
	require.NoError(t, err)
	assert.Equal(t, wantRaw, gotRaw)

	_, err = execute(t, "dump", "--cpuid-file", fx.cpuid, "--cpuid-out", cpuOut, "--cpuid-format", "xml")
	assert.Error(t, err)
}

func TestReportCommand(t *testing.T) {
	fx := newFixtures(t)
	src := []string{"--cpuid-file", fx.cpuid, "--smbios-file", fx.smbios}

	t.Run("json with metrics", func(t *testing.T) {
		report := filepath.Join(fx.dir, "report.json")
		metrics := filepath.Join(fx.dir, "hwident.prom")
		out, err := execute(t, append([]string{"report", "-f", "json", "-o", report, "--metrics-file", metrics}, src...)...)
		require.NoError(t, err)
		assert.Empty(t, out)

		b, err := os.ReadFile(report)
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Contains(t, got, "CPUID")
		assert.Contains(t, got, "SMBIOS")

		b, err = os.ReadFile(metrics)
		require.NoError(t, err)
		assert.Contains(t, string(b), `vendor="GenuineIntel"`)
		assert.Contains(t, string(b), `hwident_smbios_structures{type="1"} 1`)
	})

	t.Run("single module", func(t *testing.T) {
		out, err := execute(t, append([]string{"report", "--module", "cpuid"}, src...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "[CPUID]")
		assert.NotContains(t, out, "[SMBIOS]")
	})

	t.Run("unknown module", func(t *testing.T) {
		_, err := execute(t, append([]string{"report", "--module", "gpu"}, src...)...)
		assert.ErrorIs(t, err, collector.ErrUnknownModule)
	})

	t.Run("partial", func(t *testing.T) {
		out, err := execute(t, "report", "--cpuid-file", fx.cpuid, "--smbios-file", filepath.Join(fx.dir, "nope.bin"))
		require.NoError(t, err)
		assert.Contains(t, out, "[CPUID]")
		assert.NotContains(t, out, "[SMBIOS]")
	})

	t.Run("all failed", func(t *testing.T) {
		_, err := execute(t, "report",
			"--cpuid-file", filepath.Join(fx.dir, "nope.txt"),
			"--smbios-file", filepath.Join(fx.dir, "nope.bin"),
		)
		assert.Error(t, err)
	})
}

func TestConfigFileDrivesCommands(t *testing.T) {
	fx := newFixtures(t)
	cfgPath := filepath.Join(fx.dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: yaml\ncpuid:\n  file: "+fx.cpuid+"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "cpuid")
	require.NoError(t, err)
	assert.Contains(t, out, "Vendor: GenuineIntel")

	out, err = execute(t, "--config", cfgPath, "cpuid", "-f", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	_, err = execute(t, "--config", filepath.Join(fx.dir, "missing.yaml"), "cpuid")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "--color", "rainbow", "cpuid", "--file", fx.cpuid)
	assert.Error(t, err)
}
