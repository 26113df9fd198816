package smbios

import (
	"encoding/binary"
	"fmt"
)

type Header struct {
	Type   uint8
	Length uint8
	Handle uint16
}

const headerLength = 4

func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < headerLength {
		return fmt.Errorf("%w: header needs %d bytes, have %d", ErrInvalidTableLength, headerLength, len(b))
	}
	h.Type = b[0]
	h.Length = b[1]
	h.Handle = binary.LittleEndian.Uint16(b[2:4])
	return nil
}

func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, headerLength)
	b[0], b[1] = h.Type, h.Length
	binary.LittleEndian.PutUint16(b[2:], h.Handle)
	return b, nil
}

func (h *Header) setHeader(v Header) {
	*h = v
}
