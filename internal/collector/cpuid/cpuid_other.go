//go:build !amd64 && !386

package cpuid

func cpuid(op, op2 uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}

func Present() bool {
	return false
}
