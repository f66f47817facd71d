//go:build !llvm11

package ffi

import "github.com/ebitengine/purego"

// Type attribute entry points. These symbols only exist in LLVM 12 and
// newer; builds against older libraries use the llvm11 tag, which compiles
// this surface out entirely instead of registering absent symbols.
var (
	IsTypeAttribute       func(AttributeRef) int32
	GetTypeAttributeValue func(AttributeRef) TypeRef
	CreateTypeAttribute   func(c ContextRef, kindID uint32, ty TypeRef) AttributeRef
)

// Builds without the llvm11 tag refuse libraries that lack the type
// attribute entry points (LLVM 11 and older).
func typeAttrSymbols() []string {
	return []string{"LLVMIsTypeAttribute", "LLVMGetTypeAttributeValue", "LLVMCreateTypeAttribute"}
}

func registerTypeAttr(lib uintptr) {
	purego.RegisterLibFunc(&IsTypeAttribute, lib, "LLVMIsTypeAttribute")
	purego.RegisterLibFunc(&GetTypeAttributeValue, lib, "LLVMGetTypeAttributeValue")
	purego.RegisterLibFunc(&CreateTypeAttribute, lib, "LLVMCreateTypeAttribute")
}
