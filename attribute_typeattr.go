//go:build !llvm11

package llvm

import "github.com/lowerkit/llvm/internal/ffi"

// Type attributes exist in LLVM 12 and newer. Building with the llvm11 tag
// removes this file, so against an older library the operations are absent
// at compile time rather than present and lying.

// CreateTypeAttribute creates an attribute with a builtin kind id and an
// associated type payload (for example "sret" with the pointee type).
func (c *Context) CreateTypeAttribute(kindID uint32, ty Type) Attribute {
	return newAttribute(ffi.CreateTypeAttribute(c.live(), kindID, ty.ref))
}

// IsType reports whether the attribute carries a type payload.
func (a Attribute) IsType() bool {
	return ffi.IsTypeAttribute(a.ref) != 0
}

// TypeValue returns the type payload of a type attribute. Panics unless
// IsType holds.
func (a Attribute) TypeValue() Type {
	if !a.IsType() {
		panic("llvm: TypeValue called on a non-type attribute")
	}
	return Type{ref: ffi.GetTypeAttributeValue(a.ref)}
}

// KindID is meaningful for enum and type attributes on this library
// version.
func (a Attribute) kindIDValid() bool {
	return a.IsEnum() || a.IsType()
}
