package smbios

import (
	"context"
	"log/slog"

	"github.com/zenithax-cc/hwident/pkg/node"
)

// SMBIOS acquires the firmware table blob once and decodes it on demand.
type SMBIOS struct {
	Source Source
	File   string
	Filter TableType

	Raw *RawData

	log *slog.Logger
}

func New(src Source, file string, filter TableType) *SMBIOS {
	return &SMBIOS{
		Source: src,
		File:   file,
		Filter: filter,
		log:    slog.Default(),
	}
}

func (s *SMBIOS) Name() string {
	return "smbios"
}

func (s *SMBIOS) Collect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := ReadRawData(ctx, s.Source, s.File)
	if err != nil {
		return err
	}

	s.log.Debug("smbios table read", "source", s.Source, "bytes", len(raw.Data))
	s.Raw = raw
	return nil
}

func (s *SMBIOS) Node() *node.Node {
	return Decode(s.Raw, s.Filter)
}

// MemoryDevices returns the type 17 structures of the collected table.
func (s *SMBIOS) MemoryDevices() ([]*Type17MemoryDevice, error) {
	if s.Raw == nil {
		return nil, nil
	}
	return Records[Type17MemoryDevice](s.Raw, MemoryDevice)
}
