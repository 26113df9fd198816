package cpuid

import "errors"

// Code is a CPUID error code. It is returned as an error value instead of
// being kept in process-wide state.
type Code int

const (
	OK Code = -iota
	ErrNoCPUID
	ErrNoRDTSC
	ErrNoMem
	ErrOpen
	ErrBadFmt
	ErrNotImp
	ErrCPUUnknown
	ErrNoRDMSR
	ErrNoDriver
	ErrNoPerms
	ErrExtract
	ErrHandle
	ErrInvMSR
	ErrInvCNB
	ErrHandleR
	ErrInvRange
)

var codeDescriptions = map[Code]string{
	OK:            "No error",
	ErrNoCPUID:    "CPUID instruction is not supported",
	ErrNoRDTSC:    "RDTSC instruction is not supported",
	ErrNoMem:      "Memory allocation failed",
	ErrOpen:       "File open operation failed",
	ErrBadFmt:     "Bad file format",
	ErrNotImp:     "Not implemented",
	ErrCPUUnknown: "Unsupported processor",
	ErrNoRDMSR:    "RDMSR instruction is not supported",
	ErrNoDriver:   "RDMSR driver error (generic)",
	ErrNoPerms:    "No permissions to install RDMSR driver",
	ErrExtract:    "Cannot extract RDMSR driver (read only media?)",
	ErrHandle:     "Bad handle",
	ErrInvMSR:     "Invalid MSR",
	ErrInvCNB:     "Invalid core number",
	ErrHandleR:    "Error on handle read",
	ErrInvRange:   "Invalid given range",
}

func (c Code) Error() string {
	if s, ok := codeDescriptions[c]; ok {
		return s
	}
	return "Unknown error"
}

// Describe returns the description of the first Code in err's chain.
func Describe(err error) string {
	if err == nil {
		return OK.Error()
	}

	var c Code
	if errors.As(err, &c) {
		return c.Error()
	}
	return "Unknown error"
}
