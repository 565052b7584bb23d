package platform

// toolchainsByArch maps an architecture to the toolchains assumed usable for
// every target of that architecture. Load appends these to the declared
// toolchain list, skipping entries already declared.
//
// xtensa is absent on purpose: no single toolchain covers all xtensa
// targets. arc is absent because some arc targets only build with the GNU
// suites and others only with MWDT, so arc platforms must declare their
// toolchains explicitly.
var toolchainsByArch = map[string][]string{
	"arm":   {"zephyr", "gnuarmemb", "xtools", "armclang", "llvm"},
	"arm64": {"zephyr", "cross-compile"},
	"mips":  {"zephyr", "xtools"},
	"nios2": {"zephyr", "xtools"},
	"riscv": {"zephyr", "cross-compile"},
	"posix": {"host", "llvm"},
	"sparc": {"zephyr", "xtools"},
	"x86":   {"zephyr", "xtools", "llvm"},
}
