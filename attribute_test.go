package llvm

import (
	"errors"
	"testing"
)

// testContext opens a context, skipping the test when no LLVM shared
// library is available on this machine.
func testContext(t *testing.T) *Context {
	t.Helper()

	ctx, err := Open()
	if err != nil {
		if errors.Is(err, ErrLibraryNotFound) || errors.Is(err, ErrUnsupportedPlatform) {
			t.Skipf("LLVM shared library unavailable: %v", err)
		}
		t.Fatalf("open context: %v", err)
	}
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestAttributeLocIndex(t *testing.T) {
	if got := AttributeReturn().Index(); got != 0 {
		t.Fatalf("return index: expected 0, got %d", got)
	}
	if got := AttributeFunction().Index(); got != AttributeFunctionIndex {
		t.Fatalf("function index: expected %d, got %d", AttributeFunctionIndex, got)
	}
	if got := AttributeParam(0).Index(); got != 1 {
		t.Fatalf("param(0) index: expected 1, got %d", got)
	}
	if got := AttributeParam(41).Index(); got != 42 {
		t.Fatalf("param(41) index: expected 42, got %d", got)
	}

	// Highest parameter index that does not collide with the function index.
	last := AttributeFunctionIndex - 2
	if got := AttributeParam(last).Index(); got != AttributeFunctionIndex-1 {
		t.Fatalf("param(max-2) index: expected %d, got %d", AttributeFunctionIndex-1, got)
	}
	mustPanic(t, "param(max-1)", func() {
		AttributeParam(AttributeFunctionIndex - 1).Index()
	})
}

func TestAttributeLocComparable(t *testing.T) {
	if AttributeParam(3) != AttributeParam(3) {
		t.Fatal("expected identical param locations to compare equal")
	}
	if AttributeParam(3) == AttributeParam(4) {
		t.Fatal("expected different param locations to compare unequal")
	}
	if AttributeReturn() == AttributeFunction() {
		t.Fatal("expected return and function locations to compare unequal")
	}

	// Usable as a map key.
	counts := map[AttributeLoc]int{
		AttributeReturn():   1,
		AttributeParam(0):   2,
		AttributeFunction(): 3,
	}
	if counts[AttributeParam(0)] != 2 {
		t.Fatal("expected map lookup by location to work")
	}
}

func TestAttributeLocString(t *testing.T) {
	cases := []struct {
		loc  AttributeLoc
		want string
	}{
		{AttributeReturn(), "return"},
		{AttributeParam(7), "param(7)"},
		{AttributeFunction(), "function"},
	}
	for _, c := range cases {
		if got := c.loc.String(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestEnumAttribute(t *testing.T) {
	ctx := testContext(t)

	kind := AttributeKindID("align")
	if kind == 0 {
		t.Fatal("expected align to be a builtin kind")
	}

	attr := ctx.CreateEnumAttribute(kind, 16)
	if !attr.IsEnum() {
		t.Fatal("expected IsEnum to be true")
	}
	if attr.IsString() {
		t.Fatal("expected IsString to be false")
	}
	if got := attr.KindID(); got != kind {
		t.Fatalf("expected kind id %d, got %d", kind, got)
	}
	if got := attr.EnumValue(); got != 16 {
		t.Fatalf("expected enum value 16, got %d", got)
	}
}

func TestStringAttribute(t *testing.T) {
	ctx := testContext(t)

	attr := ctx.CreateStringAttribute("my_key_123", "my_val")
	if !attr.IsString() {
		t.Fatal("expected IsString to be true")
	}
	if attr.IsEnum() {
		t.Fatal("expected IsEnum to be false")
	}
	if got := attr.StringKey(); got != "my_key_123" {
		t.Fatalf("expected key %q, got %q", "my_key_123", got)
	}
	if got := attr.StringValue(); got != "my_val" {
		t.Fatalf("expected value %q, got %q", "my_val", got)
	}
}

func TestStringAttributeEmptyValue(t *testing.T) {
	ctx := testContext(t)

	attr := ctx.CreateStringAttribute("flag-only", "")
	if got := attr.StringKey(); got != "flag-only" {
		t.Fatalf("expected key %q, got %q", "flag-only", got)
	}
	if got := attr.StringValue(); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestAttributeKindID(t *testing.T) {
	testContext(t)

	if got := AttributeKindID("not-a-real-attribute-name"); got != 0 {
		t.Fatalf("expected 0 for unknown name, got %d", got)
	}

	// "align" sorts first in the builtin kind table, so its id is 1 across
	// every supported library version. A garbage value here means the
	// lookup symbol is misbound.
	if got := AttributeKindID("align"); got != 1 {
		t.Fatalf("expected align to have kind id 1, got %d", got)
	}

	last := LastAttributeKindID()
	known := []string{"align", "noalias", "nounwind", "sret"}
	for _, name := range known {
		id := AttributeKindID(name)
		if id == 0 {
			t.Fatalf("expected %q to resolve to a builtin kind", name)
		}
		if id > last {
			t.Fatalf("expected %q (%d) within the builtin table bound %d", name, id, last)
		}
	}

	// Stable across calls within one library.
	if AttributeKindID("align") != AttributeKindID("align") {
		t.Fatal("expected repeated lookups to agree")
	}
}

func TestLastAttributeKindID(t *testing.T) {
	testContext(t)

	last := LastAttributeKindID()
	if last == 0 {
		t.Fatal("expected a non-zero last kind id")
	}
	if align := AttributeKindID("align"); align > last {
		t.Fatalf("expected align (%d) within the builtin table bound %d", align, last)
	}
}

func TestWrongShapeAccessPanics(t *testing.T) {
	ctx := testContext(t)

	enum := ctx.CreateEnumAttribute(AttributeKindID("align"), 8)
	str := ctx.CreateStringAttribute("wombat", "awesome")

	mustPanic(t, "EnumValue on string attribute", func() { str.EnumValue() })
	mustPanic(t, "KindID on string attribute", func() { str.KindID() })
	mustPanic(t, "StringKey on enum attribute", func() { enum.StringKey() })
	mustPanic(t, "StringValue on enum attribute", func() { enum.StringValue() })
}

func TestAccessorsIdempotent(t *testing.T) {
	ctx := testContext(t)

	enum := ctx.CreateEnumAttribute(AttributeKindID("align"), 32)
	for i := 0; i < 3; i++ {
		if !enum.IsEnum() || enum.EnumValue() != 32 {
			t.Fatalf("pass %d: enum accessor results changed", i)
		}
	}

	str := ctx.CreateStringAttribute("k", "v")
	for i := 0; i < 3; i++ {
		if !str.IsString() || str.StringKey() != "k" || str.StringValue() != "v" {
			t.Fatalf("pass %d: string accessor results changed", i)
		}
	}
}

func TestAttributeIdentity(t *testing.T) {
	ctx := testContext(t)

	// LLVM uniques attributes per context, so identical construction yields
	// the same native object.
	kind := AttributeKindID("align")
	a := ctx.CreateEnumAttribute(kind, 16)
	b := ctx.CreateEnumAttribute(kind, 16)
	if a != b {
		t.Fatal("expected identical enum attributes to share a native object")
	}
	c := ctx.CreateEnumAttribute(kind, 32)
	if a == c {
		t.Fatal("expected different payloads to yield different attributes")
	}
}
