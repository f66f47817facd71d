//go:build linux || freebsd

package ffi

import "fmt"

// libraryCandidates lists sonames to try, newest major version first. The
// unversioned name comes first so a distro's default alternative wins.
func libraryCandidates() []string {
	names := []string{"libLLVM.so"}
	for major := newestMajor; major >= oldestMajor; major-- {
		names = append(names,
			fmt.Sprintf("libLLVM-%d.so", major),
			fmt.Sprintf("libLLVM-%d.so.1", major),
			fmt.Sprintf("libLLVM.so.%d", major),
		)
	}
	return names
}
