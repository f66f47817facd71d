//go:build darwin

package ffi

import "fmt"

func libraryCandidates() []string {
	names := []string{"libLLVM.dylib"}
	// Homebrew does not link LLVM into the default search path.
	for major := newestMajor; major >= oldestMajor; major-- {
		names = append(names, fmt.Sprintf("/opt/homebrew/opt/llvm@%d/lib/libLLVM.dylib", major))
	}
	names = append(names,
		"/opt/homebrew/opt/llvm/lib/libLLVM.dylib",
		"/usr/local/opt/llvm/lib/libLLVM.dylib",
	)
	return names
}
