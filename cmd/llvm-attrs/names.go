package main

// builtinNames lists the builtin enum attribute names probed by default.
// Curated from LLVM's Attributes.td; names absent from the loaded library
// version simply resolve to kind id 0 and are skipped.
var builtinNames = []string{
	"align",
	"allocalign",
	"allocptr",
	"allocsize",
	"alwaysinline",
	"builtin",
	"byref",
	"byval",
	"cold",
	"convergent",
	"dereferenceable",
	"dereferenceable_or_null",
	"elementtype",
	"hot",
	"immarg",
	"inalloca",
	"inlinehint",
	"inreg",
	"jumptable",
	"minsize",
	"mustprogress",
	"naked",
	"nest",
	"noalias",
	"nobuiltin",
	"nocallback",
	"nocapture",
	"nocf_check",
	"noduplicate",
	"nofree",
	"noimplicitfloat",
	"noinline",
	"nomerge",
	"nonlazybind",
	"nonnull",
	"noprofile",
	"norecurse",
	"noredzone",
	"noreturn",
	"nosync",
	"noundef",
	"nounwind",
	"null_pointer_is_valid",
	"optforfuzzing",
	"optnone",
	"optsize",
	"preallocated",
	"readnone",
	"readonly",
	"returned",
	"returns_twice",
	"safestack",
	"sanitize_address",
	"sanitize_hwaddress",
	"sanitize_memory",
	"sanitize_memtag",
	"sanitize_thread",
	"sext",
	"shadowcallstack",
	"speculatable",
	"speculative_load_hardening",
	"sret",
	"ssp",
	"sspreq",
	"sspstrong",
	"strictfp",
	"swiftasync",
	"swifterror",
	"swiftself",
	"uwtable",
	"willreturn",
	"writeonly",
	"zext",
}
