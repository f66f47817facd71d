package llvm

import (
	"fmt"
	"unsafe"

	"github.com/lowerkit/llvm/internal/ffi"
)

// An Attribute is a non-owning handle to a native attribute object: a
// metadata tag on a function, parameter, or return slot that steers
// optimization and code generation. One native representation backs three
// logical shapes (enum, string, and type attributes); the shape is
// discovered through the classification predicates, not stored here.
//
// Attributes are plain values. Equality is identity of the underlying native
// object, which LLVM uniques per context.
type Attribute struct {
	ref ffi.AttributeRef
}

func newAttribute(ref ffi.AttributeRef) Attribute {
	if ref == 0 {
		panic("llvm: nil attribute reference")
	}
	return Attribute{ref: ref}
}

// CreateEnumAttribute creates an attribute with a builtin kind id and an
// integer payload (an alignment in bytes, a 0/1 flag, and so on).
func (c *Context) CreateEnumAttribute(kindID uint32, val uint64) Attribute {
	return newAttribute(ffi.CreateEnumAttribute(c.live(), kindID, val))
}

// CreateStringAttribute creates a free-form key/value attribute. Keys and
// values are arbitrary bytes; nothing requires them to be UTF-8.
func (c *Context) CreateStringAttribute(key, value string) Attribute {
	return newAttribute(ffi.CreateStringAttribute(c.live(), key, uint32(len(key)), value, uint32(len(value))))
}

// IsEnum reports whether the attribute is a builtin kind with an integer
// payload.
func (a Attribute) IsEnum() bool {
	return ffi.IsEnumAttribute(a.ref) != 0
}

// IsString reports whether the attribute is a key/value string attribute.
func (a Attribute) IsString() bool {
	return ffi.IsStringAttribute(a.ref) != 0
}

// KindID returns the builtin kind id of an enum attribute (or a type
// attribute, on builds that support them). Calling it on a string attribute
// is a programmer error and panics.
func (a Attribute) KindID() uint32 {
	if !a.kindIDValid() {
		panic("llvm: KindID called on a string attribute")
	}
	return ffi.GetEnumAttributeKind(a.ref)
}

// EnumValue returns the integer payload of an enum attribute. Panics unless
// IsEnum holds.
func (a Attribute) EnumValue() uint64 {
	if !a.IsEnum() {
		panic("llvm: EnumValue called on a non-enum attribute")
	}
	return ffi.GetEnumAttributeValue(a.ref)
}

// StringKey returns the key of a string attribute, byte-for-byte as the
// native library stores it. Panics unless IsString holds.
func (a Attribute) StringKey() string {
	if !a.IsString() {
		panic("llvm: StringKey called on a non-string attribute")
	}
	var n uint32
	return goString(ffi.GetStringAttributeKind(a.ref, &n), n)
}

// StringValue returns the value of a string attribute, byte-for-byte.
// Panics unless IsString holds.
func (a Attribute) StringValue() string {
	if !a.IsString() {
		panic("llvm: StringValue called on a non-string attribute")
	}
	var n uint32
	return goString(ffi.GetStringAttributeValue(a.ref, &n), n)
}

// goString copies n bytes out of native memory. The native buffer is only
// valid while the owning attribute is, so the copy happens here rather than
// leaving a borrowed view in the caller's hands.
func goString(p uintptr, n uint32) string {
	if p == 0 || n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// AttributeKindID maps a builtin attribute name ("align", "sret", ...) to
// its kind id. Unrecognized names return 0, which is reserved to mean "no
// such kind". Requires a successful Load.
func AttributeKindID(name string) uint32 {
	return ffi.GetEnumAttributeKindForName(name, uintptr(len(name)))
}

// LastAttributeKindID returns the highest builtin kind id known to the
// loaded library. Requires a successful Load.
func LastAttributeKindID() uint32 {
	return ffi.GetLastEnumAttributeKind()
}

type locKind uint8

const (
	locReturn locKind = iota
	locParam
	locFunction
)

// AttributeFunctionIndex is the flat attribute index the native API
// reserves for the function itself. Return attributes live at index 0 and
// parameter i at index i+1.
const AttributeFunctionIndex = ^uint32(0)

// An AttributeLoc identifies where on a function an attribute is attached:
// the return slot, one of the parameters, or the function itself.
// AttributeLoc values are comparable and usable as map keys.
type AttributeLoc struct {
	kind  locKind
	param uint32
}

// AttributeReturn locates the function's return slot.
func AttributeReturn() AttributeLoc { return AttributeLoc{kind: locReturn} }

// AttributeParam locates the index-th formal parameter (0-based).
func AttributeParam(index uint32) AttributeLoc {
	return AttributeLoc{kind: locParam, param: index}
}

// AttributeFunction locates the function entity itself.
func AttributeFunction() AttributeLoc { return AttributeLoc{kind: locFunction} }

// Index encodes the location into the native flat attribute index. A
// parameter index above AttributeFunctionIndex-2 would collide with the
// function index and silently misattach the attribute, so it panics instead.
func (l AttributeLoc) Index() uint32 {
	switch l.kind {
	case locReturn:
		return 0
	case locParam:
		if l.param > AttributeFunctionIndex-2 {
			panic(fmt.Sprintf("llvm: parameter index %d collides with the function attribute index", l.param))
		}
		return l.param + 1
	case locFunction:
		return AttributeFunctionIndex
	default:
		panic(fmt.Sprintf("llvm: invalid attribute location kind %d", l.kind))
	}
}

func (l AttributeLoc) String() string {
	switch l.kind {
	case locReturn:
		return "return"
	case locParam:
		return fmt.Sprintf("param(%d)", l.param)
	case locFunction:
		return "function"
	default:
		return fmt.Sprintf("invalid(%d)", l.kind)
	}
}
