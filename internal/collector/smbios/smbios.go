package smbios

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/zenithax-cc/hwident/pkg/execute"
)

const (
	sysfsDMI        = "/sys/firmware/dmi/tables/DMI"
	sysfsEntryPoint = "/sys/firmware/dmi/tables/smbios_entry_point"
	devMem          = "/dev/mem"

	startAddr = 0x000F0000
	endAddr   = 0x00100000

	maxTableSize     = 1 << 20
	maxAddressValue  = 0xFFFFFFFF
	dmidecodeTimeout = 10 * time.Second

	paragraphSize    = 1 << 4
	searchRegionSize = endAddr - startAddr

	dumpBinTableOffset = 0x20
)

var (
	ErrReaderClosed       = errors.New("smbios: reader closed")
	ErrEntryPointNotFound = errors.New("smbios: entry point not found")
	ErrBadEntryPoint      = errors.New("smbios: invalid entry point")
	ErrInvalidTableAddr   = errors.New("smbios: invalid table address")
	ErrUnknownSource      = errors.New("smbios: unknown source")
	ErrAddressOverflow    = errors.New("smbios: address overflow")
)

type SMBIOSError struct {
	Op   string
	Path string
	Err  error
}

func (e *SMBIOSError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("smbios %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("smbios %s: %v", e.Op, e.Err)
}

func (e *SMBIOSError) Unwrap() error {
	return e.Err
}

func (e *SMBIOSError) Is(target error) bool {
	t, ok := target.(*SMBIOSError)
	if !ok {
		return false
	}
	return (t.Op == "" || e.Op == t.Op) && (t.Path == "" || e.Path == t.Path)
}

// Source names where the SMBIOS table is read from.
type Source string

const (
	SourceAuto      Source = "auto"
	SourceSysfs     Source = "sysfs"
	SourceDevMem    Source = "devmem"
	SourceDmidecode Source = "dmidecode"
	SourceFile      Source = "file"
)

func ParseSource(s string) (Source, error) {
	switch src := Source(s); src {
	case SourceAuto, SourceSysfs, SourceDevMem, SourceDmidecode, SourceFile:
		return src, nil
	case "":
		return SourceAuto, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

var dmidecodeBin = "dmidecode"

type tableReader interface {
	readTable(ctx context.Context, tableAddr, tableLen int) ([]byte, error)
	readEntryPoint(ctx context.Context) (EntryPoint, error)
	Close() error
}

type sysfsReader struct{}

func (r *sysfsReader) readTable(ctx context.Context, _, _ int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(sysfsDMI)
	if err != nil {
		return nil, &SMBIOSError{Op: "open", Path: sysfsDMI, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, int64(maxTableSize)))
	if err != nil {
		return nil, &SMBIOSError{Op: "read", Path: sysfsDMI, Err: err}
	}

	return data, nil
}

func (r *sysfsReader) readEntryPoint(ctx context.Context) (EntryPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(sysfsEntryPoint)
	if err != nil {
		return nil, &SMBIOSError{Op: "open", Path: sysfsEntryPoint, Err: err}
	}
	defer file.Close()

	return parseEntryPoint(file)
}

func (r *sysfsReader) Close() error {
	return nil
}

type devMemReader struct {
	file   *os.File
	mu     sync.Mutex
	closed bool
}

func newDevMemReader() (*devMemReader, error) {
	file, err := os.Open(devMem)
	if err != nil {
		return nil, &SMBIOSError{Op: "open", Path: devMem, Err: err}
	}

	return &devMemReader{file: file}, nil
}

func (r *devMemReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	r.closed = true
	return err
}

func (r *devMemReader) readTable(ctx context.Context, tableAddr, tableLen int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateTableParams(tableAddr, tableLen); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.file == nil {
		return nil, ErrReaderClosed
	}

	return r.readAtLocked(int64(tableAddr), tableLen)
}

func (r *devMemReader) readEntryPoint(ctx context.Context) (EntryPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.file == nil {
		return nil, ErrReaderClosed
	}

	eps, err := r.searchEntryPointLocked(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := r.file.Seek(int64(eps), io.SeekStart); err != nil {
		return nil, &SMBIOSError{Op: "seek", Path: devMem, Err: err}
	}

	return parseEntryPoint(r.file)
}

func (r *devMemReader) readAtLocked(offset int64, length int) ([]byte, error) {
	data := make([]byte, length)
	if _, err := r.file.ReadAt(data, offset); err != nil {
		return nil, &SMBIOSError{Op: "read", Path: devMem, Err: err}
	}

	return data, nil
}

func (r *devMemReader) searchEntryPointLocked(ctx context.Context) (int, error) {
	data, err := r.readAtLocked(startAddr, searchRegionSize)
	if err != nil {
		return 0, err
	}

	off, err := findEntryPoint(ctx, data)
	if err != nil {
		return 0, err
	}
	return startAddr + off, nil
}

// findEntryPoint scans data on paragraph boundaries for an SMBIOS anchor.
func findEntryPoint(ctx context.Context, data []byte) (int, error) {
	for offset := 0; offset+paragraphSize <= len(data); offset += paragraphSize {
		if offset&0xFFF == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		chunk := data[offset:]
		if bytes.HasPrefix(chunk, []byte(anchor64)) || bytes.HasPrefix(chunk, []byte(anchor32)) {
			return offset, nil
		}
	}

	return 0, fmt.Errorf("%w: scanned 0x%X - 0x%X", ErrEntryPointNotFound, startAddr, endAddr)
}

func validateTableParams(tableAddr, tableLen int) error {
	if tableAddr < 0 || tableAddr > maxAddressValue {
		return fmt.Errorf("%w: 0x%X", ErrInvalidTableAddr, tableAddr)
	}

	if tableLen <= 0 || tableLen > maxTableSize {
		return fmt.Errorf("%w: %d (max: %d)", ErrInvalidTableLength, tableLen, maxTableSize)
	}

	endAddress := int64(tableAddr) + int64(tableLen)
	if endAddress > maxAddressValue {
		return fmt.Errorf("%w: end address 0x%X exceeds limit", ErrAddressOverflow, endAddress)
	}

	return nil
}

// ReadRawData acquires the SMBIOS table from src. file is only used by
// SourceFile. SourceAuto tries sysfs, then /dev/mem, then dmidecode.
func ReadRawData(ctx context.Context, src Source, file string) (*RawData, error) {
	switch src {
	case SourceFile:
		return LoadRawData(file)
	case SourceDmidecode:
		return readDmidecode(ctx)
	case SourceSysfs:
		return readFromSource(ctx, &sysfsReader{})
	case SourceDevMem:
		reader, err := newDevMemReader()
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return readFromSource(ctx, reader)
	case SourceAuto, "":
		return readAuto(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src)
	}
}

func readAuto(ctx context.Context) (*RawData, error) {
	var errs []error
	for _, src := range []Source{SourceSysfs, SourceDevMem, SourceDmidecode} {
		if src == SourceSysfs {
			if _, err := os.Stat(sysfsEntryPoint); err != nil {
				errs = append(errs, &SMBIOSError{Op: "stat", Path: sysfsEntryPoint, Err: err})
				continue
			}
		}

		raw, err := ReadRawData(ctx, src, "")
		if err == nil {
			slog.Debug("smbios source selected", "source", src, "version", fmt.Sprintf("%d.%d", raw.MajorVersion, raw.MinorVersion))
			return raw, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Debug("smbios source unavailable", "source", src, "err", err)
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("no available SMBIOS source: %w", errors.Join(errs...))
}

func readFromSource(ctx context.Context, reader tableReader) (*RawData, error) {
	ep, err := reader.readEntryPoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading entry point: %w", err)
	}

	tableAddr, tableLen := ep.Table()
	table, err := reader.readTable(ctx, tableAddr, tableLen)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	return newRawData(ep, table), nil
}

func readDmidecode(ctx context.Context) (*RawData, error) {
	dir, err := os.MkdirTemp("", "hwident-dmi")
	if err != nil {
		return nil, &SMBIOSError{Op: "mkdir", Err: err}
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "dmi.bin")
	ctx, cancel := context.WithTimeout(ctx, dmidecodeTimeout)
	defer cancel()

	res := execute.CommandWithContext(ctx, dmidecodeBin, "--dump-bin", out)
	if err := res.AsError(); err != nil {
		return nil, &SMBIOSError{Op: "exec", Path: dmidecodeBin, Err: err}
	}

	return LoadRawData(out)
}
