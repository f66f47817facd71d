package ffi

import (
	"errors"
	"runtime"
	"testing"
)

func loadOrSkip(t *testing.T) {
	t.Helper()

	if err := Load(); err != nil {
		if errors.Is(err, ErrLibraryNotFound) || errors.Is(err, ErrUnsupportedPlatform) {
			t.Skipf("LLVM shared library unavailable: %v", err)
		}
		t.Fatalf("load: %v", err)
	}
}

func TestLoadBindsEntryPoints(t *testing.T) {
	loadOrSkip(t)

	if GetLastEnumAttributeKind == nil {
		t.Fatal("expected entry points to be bound after Load")
	}
	if got := GetLastEnumAttributeKind(); got == 0 {
		t.Fatalf("expected a non-zero last kind id, got %d", got)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	loadOrSkip(t)

	if err := Load(); err != nil {
		t.Fatalf("second load: %v", err)
	}
}

func TestLoadRejectsNonLLVMLibrary(t *testing.T) {
	// A shared object that dlopen accepts but that exports none of the LLVM
	// symbols. load must fall through to ErrLibraryNotFound, not abort.
	var path string
	switch runtime.GOOS {
	case "linux":
		path = "libc.so.6"
	case "darwin":
		path = "/usr/lib/libSystem.B.dylib"
	default:
		t.Skipf("no known non-LLVM shared library on %s", runtime.GOOS)
	}
	if _, err := dlopen(path); err != nil {
		t.Skipf("cannot open %s: %v", path, err)
	}

	err := load(path)
	if err == nil {
		t.Fatalf("expected load of %s to fail", path)
	}
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("expected ErrLibraryNotFound, got %v", err)
	}
}

func TestCheckSymbolsAcceptsLLVM(t *testing.T) {
	loadOrSkip(t)

	if err := checkSymbols(llvmLib, "loaded library"); err != nil {
		t.Fatalf("expected the loaded library to pass the symbol probe: %v", err)
	}
}

func TestContextRoundTrip(t *testing.T) {
	loadOrSkip(t)

	ctx := ContextCreate()
	if ctx == 0 {
		t.Fatal("expected a non-nil context")
	}
	ContextDispose(ctx)
}
