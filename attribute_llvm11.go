//go:build llvm11

package llvm

// LLVM 11 and older have no type attributes, so KindID is only meaningful
// for enum attributes.
func (a Attribute) kindIDValid() bool {
	return a.IsEnum()
}
