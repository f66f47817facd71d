package ffi

// Major version range probed by the library search. Kept wide on the old end
// because the enum/string attribute surface is stable back to LLVM 4; type
// attributes are gated separately by the llvm11 build tag.
const (
	oldestMajor = 11
	newestMajor = 21
)
