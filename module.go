package llvm

import "github.com/lowerkit/llvm/internal/ffi"

// A Module owns a native LLVMModule. It exists here so attributes can be
// attached to real functions; everything beyond the attachment surface
// belongs to other tooling.
type Module struct {
	ref ffi.ModuleRef
}

// NewModule creates an empty module owned by this context.
func (c *Context) NewModule(name string) *Module {
	return &Module{ref: ffi.ModuleCreateWithNameInContext(name, c.live())}
}

// Close disposes the native module. Close is idempotent. Modules still open
// when their context closes are disposed with the context.
func (m *Module) Close() error {
	if m.ref != 0 {
		ffi.DisposeModule(m.ref)
		m.ref = 0
	}
	return nil
}

// A Function is a non-owning handle to a function declared in a module. Its
// only surface here is attribute attachment, addressed by AttributeLoc.
type Function struct {
	ref ffi.ValueRef
}

// AddFunction declares a function with the given function type.
func (m *Module) AddFunction(name string, fnType Type) Function {
	if m.ref == 0 {
		panic("llvm: use of closed module")
	}
	if fnType.Kind() != FunctionTypeKind {
		panic("llvm: AddFunction requires a function type")
	}
	return Function{ref: ffi.AddFunction(m.ref, name, fnType.ref)}
}

// AddAttribute attaches an attribute at the given location.
func (f Function) AddAttribute(loc AttributeLoc, a Attribute) {
	ffi.AddAttributeAtIndex(f.ref, loc.Index(), a.ref)
}

// AttributeCount returns how many attributes are attached at the location.
func (f Function) AttributeCount(loc AttributeLoc) uint32 {
	return ffi.GetAttributeCountAtIndex(f.ref, loc.Index())
}

// Attributes returns all attributes attached at the location.
func (f Function) Attributes(loc AttributeLoc) []Attribute {
	n := ffi.GetAttributeCountAtIndex(f.ref, loc.Index())
	if n == 0 {
		return nil
	}
	refs := make([]ffi.AttributeRef, n)
	ffi.GetAttributesAtIndex(f.ref, loc.Index(), &refs[0])
	attrs := make([]Attribute, n)
	for i, ref := range refs {
		attrs[i] = newAttribute(ref)
	}
	return attrs
}

// EnumAttribute looks up the enum attribute with the given kind id at the
// location. The second result is false when no such attribute is attached.
func (f Function) EnumAttribute(loc AttributeLoc, kindID uint32) (Attribute, bool) {
	ref := ffi.GetEnumAttributeAtIndex(f.ref, loc.Index(), kindID)
	if ref == 0 {
		return Attribute{}, false
	}
	return newAttribute(ref), true
}

// StringAttribute looks up the string attribute with the given key at the
// location. The second result is false when no such attribute is attached.
func (f Function) StringAttribute(loc AttributeLoc, key string) (Attribute, bool) {
	ref := ffi.GetStringAttributeAtIndex(f.ref, loc.Index(), key, uint32(len(key)))
	if ref == 0 {
		return Attribute{}, false
	}
	return newAttribute(ref), true
}

// RemoveEnumAttribute detaches the enum attribute with the given kind id
// from the location, if present.
func (f Function) RemoveEnumAttribute(loc AttributeLoc, kindID uint32) {
	ffi.RemoveEnumAttributeAtIndex(f.ref, loc.Index(), kindID)
}

// RemoveStringAttribute detaches the string attribute with the given key
// from the location, if present.
func (f Function) RemoveStringAttribute(loc AttributeLoc, key string) {
	ffi.RemoveStringAttributeAtIndex(f.ref, loc.Index(), key, uint32(len(key)))
}
