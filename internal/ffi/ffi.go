// Package ffi holds the raw purego bindings onto the LLVM-C shared library.
//
// This package intentionally provides very low-level bindings; higher-level
// safety and ergonomics belong in the root llvm package. Every entry point is
// a package-level function variable that is bound by Load. Calling any of
// them before a successful Load dereferences a nil function and panics.
package ffi

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/lowerkit/llvm/internal/config"
)

// Opaque native references. None of these are owned by this package; their
// lifetimes belong to the context (or module) that created them.
type (
	ContextRef   uintptr
	ModuleRef    uintptr
	TypeRef      uintptr
	ValueRef     uintptr
	AttributeRef uintptr
)

var (
	// ErrLibraryNotFound means no LLVM shared library could be located and
	// opened on this system.
	ErrLibraryNotFound = errors.New("LLVM shared library not found")

	// ErrUnsupportedPlatform means this platform has no dynamic loader
	// support compiled in.
	ErrUnsupportedPlatform = errors.New("dynamic loading not supported on this platform")
)

var (
	loadOnce sync.Once
	loadErr  error

	llvmLib uintptr
)

var (
	// Context lifecycle.
	ContextCreate  func() ContextRef
	ContextDispose func(ContextRef)

	// Attribute creation.
	CreateEnumAttribute   func(c ContextRef, kindID uint32, val uint64) AttributeRef
	CreateStringAttribute func(c ContextRef, key string, keyLen uint32, value string, valueLen uint32) AttributeRef

	// Attribute classification and accessors.
	IsEnumAttribute             func(AttributeRef) int32
	IsStringAttribute           func(AttributeRef) int32
	GetEnumAttributeKindForName func(name string, nameLen uintptr) uint32
	GetLastEnumAttributeKind    func() uint32
	GetEnumAttributeKind        func(AttributeRef) uint32
	GetEnumAttributeValue       func(AttributeRef) uint64
	GetStringAttributeKind      func(a AttributeRef, length *uint32) uintptr
	GetStringAttributeValue     func(a AttributeRef, length *uint32) uintptr

	// Types.
	VoidTypeInContext   func(ContextRef) TypeRef
	Int1TypeInContext   func(ContextRef) TypeRef
	Int8TypeInContext   func(ContextRef) TypeRef
	Int16TypeInContext  func(ContextRef) TypeRef
	Int32TypeInContext  func(ContextRef) TypeRef
	Int64TypeInContext  func(ContextRef) TypeRef
	FloatTypeInContext  func(ContextRef) TypeRef
	DoubleTypeInContext func(ContextRef) TypeRef
	FunctionType        func(ret TypeRef, params *TypeRef, paramCount uint32, isVarArg int32) TypeRef
	GetTypeKind         func(TypeRef) int32

	// Modules and functions.
	ModuleCreateWithNameInContext func(name string, c ContextRef) ModuleRef
	DisposeModule                 func(ModuleRef)
	AddFunction                   func(m ModuleRef, name string, fnType TypeRef) ValueRef

	// Attribute attachment. The index parameter is the flat attribute index:
	// 0 for the return slot, i+1 for parameter i, ^uint32(0) for the
	// function itself.
	AddAttributeAtIndex          func(fn ValueRef, idx uint32, a AttributeRef)
	GetAttributeCountAtIndex     func(fn ValueRef, idx uint32) uint32
	GetAttributesAtIndex         func(fn ValueRef, idx uint32, attrs *AttributeRef)
	GetEnumAttributeAtIndex      func(fn ValueRef, idx uint32, kindID uint32) AttributeRef
	GetStringAttributeAtIndex    func(fn ValueRef, idx uint32, key string, keyLen uint32) AttributeRef
	RemoveEnumAttributeAtIndex   func(fn ValueRef, idx uint32, kindID uint32)
	RemoveStringAttributeAtIndex func(fn ValueRef, idx uint32, key string, keyLen uint32)
)

// Load locates the LLVM shared library and binds all entry points. The first
// call decides the library for the lifetime of the process; subsequent calls
// return the first call's result. An explicit path (or the LLVM_LIBRARY
// environment variable) overrides the platform search list.
func Load() error {
	return LoadPath("")
}

// LoadPath is Load with an explicit library path. An empty path falls back
// to LLVM_LIBRARY and then the platform candidates.
func LoadPath(path string) error {
	loadOnce.Do(func() {
		loadErr = load(path)
	})
	return loadErr
}

func load(path string) error {
	var candidates []string
	if path != "" {
		candidates = []string{path}
	} else if env := config.GetEnv("LLVM_LIBRARY", ""); env != "" {
		candidates = []string{env}
	} else {
		candidates = libraryCandidates()
	}
	if len(candidates) == 0 {
		return ErrUnsupportedPlatform
	}

	var err error
	for _, name := range candidates {
		var lib uintptr
		lib, err = dlopen(name)
		if err != nil {
			continue
		}
		// dlopen succeeding does not mean this is an LLVM library, or a new
		// enough one. Probe the symbols before binding: RegisterLibFunc
		// panics on an unresolvable symbol, and a missing library must come
		// back as an error, not an abort.
		if err = checkSymbols(lib, name); err != nil {
			continue
		}
		llvmLib = lib
		slog.Debug("loaded LLVM shared library", "path", name)
		register(llvmLib)
		registerTypeAttr(llvmLib)
		return nil
	}
	if err != nil {
		if errors.Is(err, ErrUnsupportedPlatform) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
	}
	return ErrLibraryNotFound
}

// checkSymbols verifies that a library exports the attribute surface this
// package binds. The probe list is a sentinel subset: any libLLVM exporting
// these carries the rest of the stable C attribute API.
func checkSymbols(lib uintptr, name string) error {
	symbols := append([]string{
		"LLVMContextCreate",
		"LLVMCreateEnumAttribute",
		"LLVMIsEnumAttribute",
	}, typeAttrSymbols()...)
	for _, sym := range symbols {
		if _, err := dlsym(lib, sym); err != nil {
			return fmt.Errorf("%s: missing symbol %s: %w", name, sym, err)
		}
	}
	return nil
}

func register(lib uintptr) {
	purego.RegisterLibFunc(&ContextCreate, lib, "LLVMContextCreate")
	purego.RegisterLibFunc(&ContextDispose, lib, "LLVMContextDispose")

	purego.RegisterLibFunc(&CreateEnumAttribute, lib, "LLVMCreateEnumAttribute")
	purego.RegisterLibFunc(&CreateStringAttribute, lib, "LLVMCreateStringAttribute")

	purego.RegisterLibFunc(&IsEnumAttribute, lib, "LLVMIsEnumAttribute")
	purego.RegisterLibFunc(&IsStringAttribute, lib, "LLVMIsStringAttribute")
	purego.RegisterLibFunc(&GetEnumAttributeKindForName, lib, "LLVMGetEnumAttributeKindForName")
	purego.RegisterLibFunc(&GetLastEnumAttributeKind, lib, "LLVMGetLastEnumAttributeKind")
	purego.RegisterLibFunc(&GetEnumAttributeKind, lib, "LLVMGetEnumAttributeKind")
	purego.RegisterLibFunc(&GetEnumAttributeValue, lib, "LLVMGetEnumAttributeValue")
	purego.RegisterLibFunc(&GetStringAttributeKind, lib, "LLVMGetStringAttributeKind")
	purego.RegisterLibFunc(&GetStringAttributeValue, lib, "LLVMGetStringAttributeValue")

	purego.RegisterLibFunc(&VoidTypeInContext, lib, "LLVMVoidTypeInContext")
	purego.RegisterLibFunc(&Int1TypeInContext, lib, "LLVMInt1TypeInContext")
	purego.RegisterLibFunc(&Int8TypeInContext, lib, "LLVMInt8TypeInContext")
	purego.RegisterLibFunc(&Int16TypeInContext, lib, "LLVMInt16TypeInContext")
	purego.RegisterLibFunc(&Int32TypeInContext, lib, "LLVMInt32TypeInContext")
	purego.RegisterLibFunc(&Int64TypeInContext, lib, "LLVMInt64TypeInContext")
	purego.RegisterLibFunc(&FloatTypeInContext, lib, "LLVMFloatTypeInContext")
	purego.RegisterLibFunc(&DoubleTypeInContext, lib, "LLVMDoubleTypeInContext")
	purego.RegisterLibFunc(&FunctionType, lib, "LLVMFunctionType")
	purego.RegisterLibFunc(&GetTypeKind, lib, "LLVMGetTypeKind")

	purego.RegisterLibFunc(&ModuleCreateWithNameInContext, lib, "LLVMModuleCreateWithNameInContext")
	purego.RegisterLibFunc(&DisposeModule, lib, "LLVMDisposeModule")
	purego.RegisterLibFunc(&AddFunction, lib, "LLVMAddFunction")

	purego.RegisterLibFunc(&AddAttributeAtIndex, lib, "LLVMAddAttributeAtIndex")
	purego.RegisterLibFunc(&GetAttributeCountAtIndex, lib, "LLVMGetAttributeCountAtIndex")
	purego.RegisterLibFunc(&GetAttributesAtIndex, lib, "LLVMGetAttributesAtIndex")
	purego.RegisterLibFunc(&GetEnumAttributeAtIndex, lib, "LLVMGetEnumAttributeAtIndex")
	purego.RegisterLibFunc(&GetStringAttributeAtIndex, lib, "LLVMGetStringAttributeAtIndex")
	purego.RegisterLibFunc(&RemoveEnumAttributeAtIndex, lib, "LLVMRemoveEnumAttributeAtIndex")
	purego.RegisterLibFunc(&RemoveStringAttributeAtIndex, lib, "LLVMRemoveStringAttributeAtIndex")
}
