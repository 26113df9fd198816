package utils

import (
	"errors"
	"fmt"
	"os"
)

// FileExists checks if the file exists and is a regular file
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func CombineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	validErrors := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			validErrors = append(validErrors, err)
		}
	}

	switch len(validErrors) {
	case 0:
		return nil
	case 1:
		return validErrors[0]
	default:
		return errors.Join(validErrors...)
	}
}

const (
	_         = iota
	KB uint64 = 1 << (iota * 10)
	MB
	GB
	TB
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanSize formats a byte count in base 1024. Only the remainder of the last
// division is shown, as two decimals.
func HumanSize(size uint64) string {
	var frac uint64
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		frac = size % 1024
		size /= 1024
		i++
	}

	if frac == 0 {
		return fmt.Sprintf("%d %s", size, sizeUnits[i])
	}
	return fmt.Sprintf("%d.%02d %s", size, frac*100/1024, sizeUnits[i])
}
