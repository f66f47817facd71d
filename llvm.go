// Package llvm provides safe Go handles over the LLVM-C attribute API.
// An Attribute is a non-owning view of a native attribute object; a Context
// owns the native objects it creates and must outlive every handle derived
// from it.
//
// The package binds the LLVM shared library at runtime. Call Load (or Open)
// once before using anything that touches native state; handle accessors
// assume the library is bound and treat misuse as a programmer error.
package llvm

import "github.com/lowerkit/llvm/internal/ffi"

// Sentinel errors returned by Load and Open.
var (
	ErrLibraryNotFound     = ffi.ErrLibraryNotFound
	ErrUnsupportedPlatform = ffi.ErrUnsupportedPlatform
)

// Load binds the LLVM shared library. The first call selects the library for
// the whole process; later calls return the first result. The LLVM_LIBRARY
// environment variable overrides the platform search list.
func Load() error {
	return ffi.Load()
}

// LoadLibrary is Load with an explicit shared library path. First load
// wins: if the library was already bound (or a bind already failed), the
// path is ignored and the first call's result is returned.
func LoadLibrary(path string) error {
	return ffi.LoadPath(path)
}

// A Context owns a native LLVMContext. Attributes, types, and modules
// created from it are valid only while it is alive.
type Context struct {
	ref ffi.ContextRef
}

// Open loads the LLVM shared library and creates a fresh context.
func Open() (*Context, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	return &Context{ref: ffi.ContextCreate()}, nil
}

// Close disposes the native context. All handles created from this context
// become invalid. Close is idempotent.
func (c *Context) Close() error {
	if c.ref != 0 {
		ffi.ContextDispose(c.ref)
		c.ref = 0
	}
	return nil
}

func (c *Context) live() ffi.ContextRef {
	if c.ref == 0 {
		panic("llvm: use of closed context")
	}
	return c.ref
}
