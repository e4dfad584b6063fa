package vtype

import (
	"sort"
	"strings"
)

type catalogEntry struct {
	name string
	typ  ValueType
}

// catalog maps wire names to value types. Array variants are not stored;
// their names derive from the element's name plus the "[]" marker. The
// table must stay sorted by name: FromString binary-searches it.
var catalog = []catalogEntry{
	{"char", Char},
	{"d64", D64},
	{"double", D64},
	{"f32", F32},
	{"float", F32},
	{"list", List},
	{"long", S64},
	{"record", RecordType},
	{"s16", S16},
	{"s32", S32},
	{"s64", S64},
	{"s8", S8},
	{"u16", U16},
	{"u32", U32},
	{"u64", U64},
	{"u8", U8},
}

// FromString resolves a wire name to its value type. Array names carry
// the "[]" marker and resolve by stripping it and promoting the element
// type. Unknown names fail with ErrInvalidType.
func FromString(name string) (ValueType, error) {
	elem := ElemName(name)
	i := sort.Search(len(catalog), func(i int) bool {
		return catalog[i].name >= elem
	})
	if i >= len(catalog) || catalog[i].name != elem {
		return None, ErrInvalidType
	}
	t := catalog[i].typ
	if elem == name {
		return t, nil
	}
	return ArrayOf(t)
}

// Name returns the canonical wire name of t: the catalog name for
// scalars, lists, and record types, the element name plus the "[]"
// marker for scalar arrays. Record arrays have no fixed wire name (they
// are addressed through their record type's name) and fail with
// ErrInvalidType, as do the tags that cannot appear in a schema wire
// form (None, ListEntry, RecordInst, Timestamp).
func Name(t ValueType) (string, error) {
	switch {
	case t.IsScalar(), t.IsScalarArray(), t == List, t == RecordType:
		return t.String(), nil
	}
	return "", ErrInvalidType
}

// ElemName strips the trailing "[]" array marker from a type name. Names
// without the marker are returned unchanged.
func ElemName(name string) string {
	return strings.TrimSuffix(name, "[]")
}
