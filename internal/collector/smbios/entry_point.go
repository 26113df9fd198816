package smbios

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	anchor32           = "_SM_"
	anchor64           = "_SM3_"
	intermediateAnchor = "_DMI_"

	anchor32Len = 0x1f
	anchor64Len = 0x18

	// SMBIOS 2.1 firmware often reports 0x1e for the 32-bit structure.
	anchor32LegacyLen = 0x1e
)

// EntryPoint is a parsed _SM_ or _SM3_ anchor structure.
type EntryPoint interface {
	Table() (int, int)
	Version() (major, minor, revision uint8)
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}

var entryPointKinds = []struct {
	anchor string
	size   int
	alloc  func() EntryPoint
}{
	{anchor64, anchor64Len, func() EntryPoint { return new(entryPoint64) }},
	{anchor32, anchor32Len, func() EntryPoint { return new(entryPoint32) }},
}

func parseEntryPoint(r io.Reader) (EntryPoint, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(anchor64))

	for _, k := range entryPointKinds {
		if !bytes.HasPrefix(head, []byte(k.anchor)) {
			continue
		}
		b := make([]byte, k.size)
		if _, err := io.ReadFull(br, b); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadEntryPoint, k.anchor, err)
		}
		ep := k.alloc()
		if err := ep.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return ep, nil
	}
	return nil, fmt.Errorf("%w: anchor %q", ErrEntryPointNotFound, head)
}

// sum8 is the byte sum of b modulo 256. Anchor structures sum to zero.
func sum8(b []byte) uint8 {
	var s uint8
	for _, c := range b {
		s += c
	}
	return s
}

// setChecksum stores at b[at] the byte that makes b sum to zero.
func setChecksum(b []byte, at int) {
	b[at] = 0
	b[at] = -sum8(b)
}

func invalidEntry(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadEntryPoint}, args...)...)
}

type entryPoint32 struct {
	AnchorString             [4]uint8
	Checksum                 uint8
	Length                   uint8
	MajorVersion             uint8
	MinorVersion             uint8
	MaximumStructureSize     uint16
	Revision                 uint8
	FormattedArea            [5]uint8
	IntermediateAnchorString [5]uint8
	IntermediateChecksum     uint8
	TableLength              uint16
	TableAddress             uint32
	NumberOfStructures       uint16
	BCDRevision              uint8
}

func (e *entryPoint32) Table() (int, int) {
	return int(e.TableAddress), int(e.TableLength)
}

func (e *entryPoint32) Version() (uint8, uint8, uint8) {
	return e.MajorVersion, e.MinorVersion, 0
}

func (e *entryPoint32) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, e)
}

// UnmarshalBinary checks both the outer and the _DMI_ checksums.
func (e *entryPoint32) UnmarshalBinary(b []byte) error {
	if _, err := binary.Decode(b, binary.LittleEndian, e); err != nil {
		return fmt.Errorf("%w: %w", ErrBadEntryPoint, err)
	}

	switch {
	case string(e.AnchorString[:]) != anchor32:
		return invalidEntry("anchor %q", e.AnchorString[:])
	case e.Length != anchor32Len && e.Length != anchor32LegacyLen:
		return invalidEntry("%s length 0x%02x", anchor32, e.Length)
	case sum8(b[:e.Length]) != 0:
		return invalidEntry("%s checksum 0x%02x", anchor32, e.Checksum)
	case string(e.IntermediateAnchorString[:]) != intermediateAnchor:
		return invalidEntry("intermediate anchor %q", e.IntermediateAnchorString[:])
	case sum8(b[0x10:anchor32Len]) != 0:
		return invalidEntry("%s checksum 0x%02x", intermediateAnchor, e.IntermediateChecksum)
	}
	return nil
}

type entryPoint64 struct {
	AnchorString          [5]uint8
	Checksum              uint8
	Length                uint8
	MajorVersion          uint8
	MinorVersion          uint8
	DocumentationRevision uint8
	Revision              uint8
	Reserved              uint8
	MaximumStructureSize  uint32
	TableAddress          uint64
}

// Table reports the maximum table size; SMBIOS 3 has no exact length.
func (e *entryPoint64) Table() (int, int) {
	return int(e.TableAddress), int(e.MaximumStructureSize)
}

func (e *entryPoint64) Version() (uint8, uint8, uint8) {
	return e.MajorVersion, e.MinorVersion, e.DocumentationRevision
}

func (e *entryPoint64) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, e)
}

func (e *entryPoint64) UnmarshalBinary(b []byte) error {
	if _, err := binary.Decode(b, binary.LittleEndian, e); err != nil {
		return fmt.Errorf("%w: %w", ErrBadEntryPoint, err)
	}

	switch {
	case string(e.AnchorString[:]) != anchor64:
		return invalidEntry("anchor %q", e.AnchorString[:])
	case e.Length != anchor64Len:
		return invalidEntry("%s length 0x%02x", anchor64, e.Length)
	case sum8(b[:anchor64Len]) != 0:
		return invalidEntry("%s checksum 0x%02x", anchor64, e.Checksum)
	}
	return nil
}
