//go:build llvm11

package ffi

// LLVM 11 and older have no type attributes; there is nothing extra to
// probe or bind.
func typeAttrSymbols() []string { return nil }

func registerTypeAttr(lib uintptr) {}
