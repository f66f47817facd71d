//go:build !linux && !darwin && !freebsd

package ffi

func dlopen(name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlsym(lib uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}
