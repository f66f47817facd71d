//go:build !linux && !darwin && !freebsd

package ffi

func libraryCandidates() []string { return nil }
