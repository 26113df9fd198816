package smbios

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

const rawHeaderLength = 8

var ErrShortRawData = errors.New("smbios: raw data shorter than its header")

// RawData is the firmware table blob in the layout Windows returns for the
// RSMB provider: four version bytes, a little-endian length, then the
// structure table.
type RawData struct {
	Used20CallingMethod uint8
	MajorVersion        uint8
	MinorVersion        uint8
	DmiRevision         uint8
	Length              uint32
	Data                []byte
}

func newRawData(ep EntryPoint, table []byte) *RawData {
	major, minor, rev := ep.Version()
	return &RawData{
		MajorVersion: major,
		MinorVersion: minor,
		DmiRevision:  rev,
		Length:       uint32(len(table)),
		Data:         table,
	}
}

// ParseRawData reads an RSMB blob. The table is cut to Length when the blob
// carries trailing bytes.
func ParseRawData(b []byte) (*RawData, error) {
	if len(b) < rawHeaderLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortRawData, len(b))
	}

	r := &RawData{
		Used20CallingMethod: b[0],
		MajorVersion:        b[1],
		MinorVersion:        b[2],
		DmiRevision:         b[3],
		Length:              binary.LittleEndian.Uint32(b[4:8]),
	}

	data := b[rawHeaderLength:]
	if uint64(r.Length) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: length %d, have %d", ErrTruncatedTable, r.Length, len(data))
	}
	r.Data = bytes.Clone(data[:r.Length])

	return r, nil
}

func (r *RawData) MarshalBinary() ([]byte, error) {
	b := make([]byte, rawHeaderLength, rawHeaderLength+len(r.Data))
	b[0], b[1], b[2], b[3] = r.Used20CallingMethod, r.MajorVersion, r.MinorVersion, r.DmiRevision
	binary.LittleEndian.PutUint32(b[4:], uint32(len(r.Data)))
	return append(b, r.Data...), nil
}

func (r *RawData) UnmarshalBinary(b []byte) error {
	p, err := ParseRawData(b)
	if err != nil {
		return err
	}
	*r = *p
	return nil
}

// LoadRawData reads a capture from path. Both RSMB blobs and dmidecode
// --dump-bin images are accepted.
func LoadRawData(path string) (*RawData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &SMBIOSError{Op: "open", Path: path, Err: err}
	}

	if bytes.HasPrefix(b, []byte(anchor32)) || bytes.HasPrefix(b, []byte(anchor64)) {
		r, err := parseDumpBin(b)
		if err != nil {
			return nil, &SMBIOSError{Op: "parse", Path: path, Err: err}
		}
		return r, nil
	}

	r, err := ParseRawData(b)
	if err != nil {
		return nil, &SMBIOSError{Op: "parse", Path: path, Err: err}
	}
	return r, nil
}

// SaveRawData writes r to path as an RSMB blob.
func SaveRawData(path string, r *RawData) error {
	b, err := r.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &SMBIOSError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// parseDumpBin reads the dmidecode binary dump layout: the entry point at
// offset 0 and the structure table at dumpBinTableOffset.
func parseDumpBin(b []byte) (*RawData, error) {
	ep, err := parseEntryPoint(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	_, tableLen := ep.Table()
	if len(b) < dumpBinTableOffset {
		return nil, fmt.Errorf("%w: dump is %d bytes", ErrTruncatedTable, len(b))
	}
	table := b[dumpBinTableOffset:]
	if tableLen > 0 && tableLen < len(table) {
		table = table[:tableLen]
	}

	return newRawData(ep, bytes.Clone(table)), nil
}
