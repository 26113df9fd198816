//go:build amd64 || 386

package cpuid

// cpuid executes CPUID with EAX=op and ECX=op2.
// Defined in cpuid_amd64.s and cpuid_386.s.
func cpuid(op, op2 uint32) (eax, ebx, ecx, edx uint32)

// Present reports whether the CPUID instruction can be executed. Every CPU
// the Go runtime supports on amd64 and 386 has it.
func Present() bool {
	return true
}
