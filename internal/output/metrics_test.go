package output

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/hwident/internal/collector/cpuid"
	"github.com/zenithax-cc/hwident/internal/collector/smbios"
)

// memoryDevice builds a 0x22-byte type 17 structure with a 16 GB module.
func memoryDevice(handle uint16, locator string) []byte {
	b := make([]byte, 0x22)
	b[0], b[1] = 17, 0x22
	binary.LittleEndian.PutUint16(b[2:], handle)
	binary.LittleEndian.PutUint16(b[0x0c:], 16384)
	b[0x10] = 1
	b = append(b, locator...)
	return append(b, 0, 0)
}

func TestWriteMetrics(t *testing.T) {
	id := &cpuid.Identity{
		VendorStr:      "GenuineIntel",
		Brand:          "Intel(R) Xeon(R)",
		Codename:       "Sapphire Rapids",
		Family:         6,
		Model:          0x8f,
		Stepping:       8,
		NumCores:       56,
		NumLogicalCPUs: 112,
		L1DataCache:    48,
		L2Cache:        2048,
		L3Cache:        -1,
	}

	var data []byte
	data = append(data, memoryDevice(0x1100, "DIMM_A1")...)
	data = append(data, memoryDevice(0x1101, "DIMM_B1")...)
	data = append(data, 127, 4, 0xff, 0xfe, 0, 0)
	raw := &smbios.RawData{MajorVersion: 3, MinorVersion: 3, Length: uint32(len(data)), Data: data}

	path := filepath.Join(t.TempDir(), "hwident.prom")
	require.NoError(t, WriteMetrics(path, id, raw))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, `hwident_cpu_info{brand="Intel(R) Xeon(R)",codename="Sapphire Rapids",family="6",model="143",stepping="8",vendor="GenuineIntel"} 1`)
	assert.Contains(t, out, "hwident_cpu_cores 56\n")
	assert.Contains(t, out, "hwident_cpu_logical_cpus 112\n")
	assert.Contains(t, out, `hwident_cpu_cache_bytes{level="L1d"} 49152`)
	assert.NotContains(t, out, `level="L3"`)
	assert.Contains(t, out, `hwident_smbios_structures{type="17"} 2`)
	assert.Contains(t, out, `hwident_smbios_structures{type="127"} 1`)
	assert.Contains(t, out, `hwident_memory_device_bytes{locator="DIMM_A1"}`)
	assert.Contains(t, out, `hwident_memory_device_bytes{locator="DIMM_B1"}`)
}

func TestMetricsRegistryPartial(t *testing.T) {
	reg := NewMetricsRegistry(nil, nil)
	mfs, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		assert.NotEqual(t, "hwident_cpu_info", mf.GetName())
	}
}

func TestWriteMetricsInvalidUTF8(t *testing.T) {
	id := &cpuid.Identity{VendorStr: "GenuineIntel", Brand: "Intel\xff CPU", Codename: "Unknown"}

	var data []byte
	data = append(data, memoryDevice(0x1100, "DIMM\xe9")...)
	data = append(data, 127, 4, 0xff, 0xfe, 0, 0)
	raw := &smbios.RawData{MajorVersion: 3, MinorVersion: 3, Length: uint32(len(data)), Data: data}

	path := filepath.Join(t.TempDir(), "hwident.prom")
	require.NotPanics(t, func() {
		require.NoError(t, WriteMetrics(path, id, raw))
	})

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "brand=\"Intel\uFFFD CPU\"")
	assert.Contains(t, string(b), "hwident_memory_device_bytes{locator=\"DIMM\uFFFD\"}")
}
