package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/zenithax-cc/hwident/pkg/node"
)

func sampleTree() *node.Node {
	root := node.New("hwident", node.Plain)

	cpu := root.AppendNew("CPUID", node.Plain)
	cpu.Setf("Total CPUs", node.FmtNumeric, "%d", 8)
	c0 := cpu.AppendNew("CPU0", node.Row)
	c0.Set("Vendor", "GenuineIntel", 0)
	c0.SetBool("SSE Present", true)
	c0.SetBool("AVX512", false)

	sm := root.AppendNew("SMBIOS", node.Table)
	dmi := sm.AppendNew("DMI", node.Row)
	dmi.Set("SMBIOS Version", "3.3", 0)
	tab := sm.AppendNew("Table", node.Row)
	tab.Setf("Table Type", node.FmtNumeric, "%d", 1)
	tab.Set("Description", "System Information", 0)
	tab.Set("SKU Number", "<BAD INDEX>", 0)
	return root
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":     FormatText,
		"text": FormatText,
		"json": FormatJSON,
		"yaml": FormatYAML,
		"xlsx": FormatXLSX,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestColorMode(t *testing.T) {
	m, err := ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, m)

	_, err = ParseColorMode("rainbow")
	assert.ErrorIs(t, err, ErrUnknownColor)

	var buf bytes.Buffer
	assert.True(t, ColorAlways.UseColor(&buf))
	assert.False(t, ColorNever.UseColor(&buf))
	assert.False(t, ColorAuto.UseColor(&buf))
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTree(), FormatText, Options{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[hwident]\n"))
	assert.Contains(t, out, "    [CPUID]\n")
	assert.Contains(t, out, "        Total CPUs          : 8\n")
	assert.Contains(t, out, "        [CPU0]\n")
	assert.Contains(t, out, "            Vendor          : GenuineIntel\n")
	assert.Contains(t, out, "\n        Table Type          : 1\n")
	assert.Contains(t, out, "            SKU Number      : <BAD INDEX>\n")
	assert.NotContains(t, out, ColorReset)
}

func TestRenderTextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTree(), FormatText, Options{Color: true}))

	out := buf.String()
	assert.Contains(t, out, ColorGreen+"Yes"+ColorReset)
	assert.Contains(t, out, ColorRed+"No"+ColorReset)
	assert.Contains(t, out, ColorYellow+"<BAD INDEX>"+ColorReset)
	assert.Contains(t, out, ": GenuineIntel\n")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTree(), FormatJSON, Options{}))
	assert.Contains(t, buf.String(), `"SKU Number": "<BAD INDEX>"`)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	cpu := got["CPUID"].(map[string]any)
	assert.Equal(t, float64(8), cpu["Total CPUs"])

	sm := got["SMBIOS"].([]any)
	require.Len(t, sm, 2)
	assert.Equal(t, "System Information", sm[1].(map[string]any)["Description"])
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTree(), FormatYAML, Options{}))

	out := buf.String()
	assert.Less(t, strings.Index(out, "CPUID:"), strings.Index(out, "SMBIOS:"))

	var got struct {
		CPUID struct {
			Total int `yaml:"Total CPUs"`
		} `yaml:"CPUID"`
		SMBIOS []map[string]any `yaml:"SMBIOS"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 8, got.CPUID.Total)
	require.Len(t, got.SMBIOS, 2)
	assert.Equal(t, 1, got.SMBIOS[1]["Table Type"])
}

func TestRenderXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTree(), FormatXLSX, Options{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"CPUID", "SMBIOS"}, f.GetSheetList())

	v, err := f.GetCellValue("CPUID", "A1")
	require.NoError(t, err)
	assert.Equal(t, "CPUID", v)
	v, _ = f.GetCellValue("CPUID", "B2")
	assert.Equal(t, "Total CPUs", v)
	v, _ = f.GetCellValue("CPUID", "C2")
	assert.Equal(t, "8", v)
	v, _ = f.GetCellValue("CPUID", "B3")
	assert.Equal(t, "CPU0", v)
	v, _ = f.GetCellValue("CPUID", "C4")
	assert.Equal(t, "Vendor", v)

	v, _ = f.GetCellValue("SMBIOS", "B2")
	assert.Equal(t, "DMI", v)
}

func TestRenderXLSXSingleSheet(t *testing.T) {
	n := node.New("CPUID", node.Plain)
	n.Set("Total CPUs", "4", node.FmtNumeric)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, n))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"CPUID"}, f.GetSheetList())
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "Table", sheetName("Table", used))
	assert.Equal(t, "Table (2)", sheetName("Table", used))
	assert.Equal(t, "Table (3)", sheetName("Table", used))

	long := strings.Repeat("x", 40)
	assert.Len(t, sheetName(long, used), maxSheetName)
	assert.Len(t, sheetName(long, used), maxSheetName)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, RenderFile(path, sampleTree(), FormatJSON, ColorAuto))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(b))

	assert.Error(t, RenderFile(filepath.Join(t.TempDir(), "missing", "x"), sampleTree(), FormatJSON, ColorNever))
}
