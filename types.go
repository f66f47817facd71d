package llvm

import "github.com/lowerkit/llvm/internal/ffi"

// A Type is a non-owning handle to a native type object. Types are uniqued
// per context, so equality of handles (==) is equality of types.
type Type struct {
	ref ffi.TypeRef
}

// TypeKind classifies a native type. Only the kinds whose numbering is
// stable across the supported LLVM versions are named here.
type TypeKind int32

const (
	VoidTypeKind     TypeKind = 0
	HalfTypeKind     TypeKind = 1
	FloatTypeKind    TypeKind = 2
	DoubleTypeKind   TypeKind = 3
	LabelTypeKind    TypeKind = 7
	IntegerTypeKind  TypeKind = 8
	FunctionTypeKind TypeKind = 9
	StructTypeKind   TypeKind = 10
	ArrayTypeKind    TypeKind = 11
	PointerTypeKind  TypeKind = 12
	VectorTypeKind   TypeKind = 13
	MetadataTypeKind TypeKind = 14
)

// Kind returns the native classification of the type.
func (t Type) Kind() TypeKind {
	return TypeKind(ffi.GetTypeKind(t.ref))
}

// IsNil reports whether the handle refers to no type at all.
func (t Type) IsNil() bool { return t.ref == 0 }

func (c *Context) VoidType() Type   { return Type{ref: ffi.VoidTypeInContext(c.live())} }
func (c *Context) Int1Type() Type   { return Type{ref: ffi.Int1TypeInContext(c.live())} }
func (c *Context) Int8Type() Type   { return Type{ref: ffi.Int8TypeInContext(c.live())} }
func (c *Context) Int16Type() Type  { return Type{ref: ffi.Int16TypeInContext(c.live())} }
func (c *Context) Int32Type() Type  { return Type{ref: ffi.Int32TypeInContext(c.live())} }
func (c *Context) Int64Type() Type  { return Type{ref: ffi.Int64TypeInContext(c.live())} }
func (c *Context) FloatType() Type  { return Type{ref: ffi.FloatTypeInContext(c.live())} }
func (c *Context) DoubleType() Type { return Type{ref: ffi.DoubleTypeInContext(c.live())} }

// FunctionType builds a function type from a return type and parameter
// types.
func FunctionType(ret Type, params []Type, variadic bool) Type {
	var first *ffi.TypeRef
	refs := make([]ffi.TypeRef, len(params))
	for i, p := range params {
		refs[i] = p.ref
	}
	if len(refs) > 0 {
		first = &refs[0]
	}
	var varArg int32
	if variadic {
		varArg = 1
	}
	return Type{ref: ffi.FunctionType(ret.ref, first, uint32(len(refs)), varArg)}
}
