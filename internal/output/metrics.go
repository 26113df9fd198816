package output

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zenithax-cc/hwident/internal/collector/cpuid"
	"github.com/zenithax-cc/hwident/internal/collector/smbios"
	"github.com/zenithax-cc/hwident/pkg/utils"
)

const promMetricPrefix = "hwident_"

type metrics struct {
	cpuInfo        *prometheus.GaugeVec
	cpuCores       prometheus.Gauge
	cpuLogical     prometheus.Gauge
	cpuCache       *prometheus.GaugeVec
	smbiosCount    *prometheus.GaugeVec
	memoryDevBytes *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		cpuInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: promMetricPrefix + "cpu_info",
			Help: "CPU identification, always 1.",
		}, []string{"vendor", "brand", "codename", "family", "model", "stepping"}),
		cpuCores: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: promMetricPrefix + "cpu_cores",
			Help: "Physical cores per package.",
		}),
		cpuLogical: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: promMetricPrefix + "cpu_logical_cpus",
			Help: "Logical CPUs per package.",
		}),
		cpuCache: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: promMetricPrefix + "cpu_cache_bytes",
			Help: "CPU cache size by level.",
		}, []string{"level"}),
		smbiosCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: promMetricPrefix + "smbios_structures",
			Help: "Number of SMBIOS structures by type.",
		}, []string{"type"}),
		memoryDevBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: promMetricPrefix + "memory_device_bytes",
			Help: "Installed size of each SMBIOS memory device.",
		}, []string{"locator"}),
	}
	reg.MustRegister(m.cpuInfo, m.cpuCores, m.cpuLogical, m.cpuCache, m.smbiosCount, m.memoryDevBytes)
	return m
}

// labelValue replaces invalid UTF-8; WithLabelValues panics on it.
func labelValue(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func (m *metrics) setCPU(id *cpuid.Identity) {
	m.cpuInfo.WithLabelValues(
		labelValue(id.VendorStr),
		labelValue(id.Brand),
		labelValue(id.Codename),
		strconv.Itoa(id.Family),
		strconv.Itoa(id.Model),
		strconv.Itoa(id.Stepping),
	).Set(1)
	m.cpuCores.Set(float64(id.NumCores))
	m.cpuLogical.Set(float64(id.NumLogicalCPUs))

	for _, c := range []struct {
		level string
		kb    int
	}{
		{"L1d", id.L1DataCache},
		{"L1i", id.L1InstructionCache},
		{"L2", id.L2Cache},
		{"L3", id.L3Cache},
		{"L4", id.L4Cache},
	} {
		if c.kb > 0 {
			m.cpuCache.WithLabelValues(c.level).Set(float64(uint64(c.kb) * utils.KB))
		}
	}
}

func (m *metrics) setSMBIOS(raw *smbios.RawData) {
	counts := make(map[uint8]int)
	if err := smbios.Walk(raw.Data, smbios.AnyType, func(t *smbios.Table) bool {
		counts[t.Type]++
		return true
	}); err != nil {
		slog.Debug("smbios metrics walk stopped", "err", err)
	}
	for typ, n := range counts {
		m.smbiosCount.WithLabelValues(strconv.Itoa(int(typ))).Set(float64(n))
	}

	devs, err := smbios.Records[smbios.Type17MemoryDevice](raw, smbios.MemoryDevice)
	if err != nil {
		slog.Debug("memory device records incomplete", "err", err)
	}
	for _, d := range devs {
		if size := d.SizeBytes(); size > 0 {
			m.memoryDevBytes.WithLabelValues(labelValue(d.DeviceLocator)).Set(float64(size))
		}
	}
}

// NewMetricsRegistry builds a registry from whatever was collected. Either
// argument may be nil.
func NewMetricsRegistry(id *cpuid.Identity, raw *smbios.RawData) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	m := newMetrics(reg)
	if id != nil {
		m.setCPU(id)
	}
	if raw != nil {
		m.setSMBIOS(raw)
	}
	return reg
}

func WriteMetrics(path string, id *cpuid.Identity, raw *smbios.RawData) error {
	return prometheus.WriteToTextfile(path, NewMetricsRegistry(id, raw))
}
