package smbios

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const (
	defaultTableCap = 64

	nullString     = "NULL"
	badIndexString = "<BAD INDEX>"
)

var (
	ErrInvalidOffset      = errors.New("smbios: invalid offset")
	ErrInvalidTableLength = errors.New("smbios: invalid table length")
	ErrNegativeOffset     = errors.New("smbios: negative offset")
	ErrTruncatedTable     = errors.New("smbios: structure runs past end of table")
)

// Table is one SMBIOS structure. FormattedArea holds the Length-4 bytes after
// the header; StringArea holds the strings of the pool in index order.
type Table struct {
	Header
	FormattedArea []byte
	StringArea    []string
}

// Walk visits the structures in data in order. Only structures of type
// filter are passed to fn, unless filter is AnyType. Walk stops when fn
// returns false, after an End-of-Table structure of length 4, when the next
// structure would start past the data, or on the first malformed header. A
// malformed structure is never passed to fn; its error is returned.
func Walk(data []byte, filter TableType, fn func(*Table) bool) error {
	offset := 0
	for len(data)-offset >= headerLength {
		var h Header
		if err := h.UnmarshalBinary(data[offset:]); err != nil {
			return err
		}

		if h.Length < headerLength {
			slog.Debug("smbios: structure shorter than its header", "offset", offset, "type", h.Type, "length", h.Length)
			return fmt.Errorf("%w: type %d at offset %d has length %d", ErrInvalidTableLength, h.Type, offset, h.Length)
		}
		end := offset + int(h.Length)
		if end > len(data) {
			slog.Debug("smbios: structure runs past end of table", "offset", offset, "type", h.Type, "length", h.Length)
			return fmt.Errorf("%w: type %d at offset %d", ErrTruncatedTable, h.Type, offset)
		}

		poolEnd := findPoolEnd(data, end)
		next := poolEnd + 2

		if filter == AnyType || TableType(h.Type) == filter {
			t := &Table{
				Header:        h,
				FormattedArea: data[offset+headerLength : end],
				StringArea:    splitStrings(data[end:poolEnd]),
			}
			if !fn(t) {
				return nil
			}
		}

		if TableType(h.Type) == EndOfTable && h.Length == headerLength {
			return nil
		}
		if next >= len(data) {
			return nil
		}
		offset = next
	}
	return nil
}

// findPoolEnd returns the index of the double NUL that ends the string pool
// starting at start, or len(data) if the pool is unterminated.
func findPoolEnd(data []byte, start int) int {
	for i := start; i+1 < len(data); i++ {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return len(data)
}

func splitStrings(pool []byte) []string {
	if len(pool) == 0 || pool[0] == 0 {
		return nil
	}
	parts := bytes.Split(bytes.TrimRight(pool, "\x00"), []byte{0})
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = string(p)
	}
	return ss
}

// ParseTables returns every structure in data, in order.
func ParseTables(data []byte) ([]*Table, error) {
	tables := make([]*Table, 0, defaultTableCap)
	err := Walk(data, AnyType, func(t *Table) bool {
		tables = append(tables, t)
		return true
	})
	return tables, err
}

// String resolves a string index against the pool. Index 0 and an empty
// pool give "NULL"; an index past the pool gives "<BAD INDEX>".
func (t *Table) String(idx uint8) string {
	if idx == 0 || len(t.StringArea) == 0 {
		return nullString
	}
	if int(idx) > len(t.StringArea) {
		return badIndexString
	}
	return t.StringArea[idx-1]
}

func (t *Table) checkBounds(offset, length int) error {
	if offset < 0 {
		return fmt.Errorf("%w: offset %d", ErrNegativeOffset, offset)
	}

	if length < 0 {
		return fmt.Errorf("%w: length %d", ErrInvalidTableLength, length)
	}

	if offset > len(t.FormattedArea) || length > len(t.FormattedArea)-offset {
		return fmt.Errorf("%w: offset=%d, length=%d, available=%d", ErrInvalidOffset,
			offset, length, len(t.FormattedArea))
	}

	return nil
}

func (t *Table) GetStringAt(offset int) (string, error) {
	idx, err := t.GetByteAt(offset)
	if err != nil {
		return "", err
	}
	return t.String(idx), nil
}

func (t *Table) GetByteAt(offset int) (uint8, error) {
	if err := t.checkBounds(offset, 1); err != nil {
		return 0, err
	}

	return t.FormattedArea[offset], nil
}

func (t *Table) GetWordAt(offset int) (uint16, error) {
	if err := t.checkBounds(offset, 2); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(t.FormattedArea[offset : offset+2]), nil
}

func (t *Table) GetDwordAt(offset int) (uint32, error) {
	if err := t.checkBounds(offset, 4); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(t.FormattedArea[offset : offset+4]), nil
}

func (t *Table) GetQwordAt(offset int) (uint64, error) {
	if err := t.checkBounds(offset, 8); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(t.FormattedArea[offset : offset+8]), nil
}

func (t *Table) GetBytesAt(offset, length int) ([]byte, error) {
	if err := t.checkBounds(offset, length); err != nil {
		return nil, err
	}

	result := make([]byte, length)
	copy(result, t.FormattedArea[offset:offset+length])

	return result, nil
}

func (t *Table) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: offset %d", ErrNegativeOffset, off)
	}

	dataLen := int64(len(t.FormattedArea))
	if off >= dataLen {
		return 0, io.EOF
	}

	n := copy(p, t.FormattedArea[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}
