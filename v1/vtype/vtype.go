package vtype

// ValueType identifies the type of a single schema field. The ordering is
// significant: every scalar in Char..D64 has its array variant at the same
// offset within CharArray..D64Array, which is what ArrayOf and ScalarOf
// rely on.
type ValueType int

const (
	// None is the invalid/unset sentinel. It has no wire name.
	None ValueType = iota

	Char
	U8
	S8
	U16
	S16
	U32
	S32
	U64
	S64
	F32
	D64

	CharArray
	U8Array
	S8Array
	U16Array
	S16Array
	U32Array
	S32Array
	U64Array
	S64Array
	F32Array
	D64Array

	// List is a heap-backed list field. Its declared length is the heap
	// size in bytes rather than an element count.
	List

	// ListEntry is a member of a live list instance. It never appears in
	// a schema definition and is not wire-representable.
	ListEntry

	// RecordType is a named record type definition embedded in a schema.
	RecordType

	// RecordInst is a live record instance. Not wire-representable.
	RecordInst

	// RecordArray is a fixed-length array of record instances bound to a
	// previously defined RecordType field.
	RecordArray

	// Timestamp is an internal set-header type. Not wire-representable.
	Timestamp
)

var typeNames = map[ValueType]string{
	None:        "none",
	Char:        "char",
	U8:          "u8",
	S8:          "s8",
	U16:         "u16",
	S16:         "s16",
	U32:         "u32",
	S32:         "s32",
	U64:         "u64",
	S64:         "s64",
	F32:         "f32",
	D64:         "d64",
	CharArray:   "char[]",
	U8Array:     "u8[]",
	S8Array:     "s8[]",
	U16Array:    "u16[]",
	S16Array:    "s16[]",
	U32Array:    "u32[]",
	S32Array:    "s32[]",
	U64Array:    "u64[]",
	S64Array:    "s64[]",
	F32Array:    "f32[]",
	D64Array:    "d64[]",
	List:        "list",
	ListEntry:   "list_entry",
	RecordType:  "record",
	RecordInst:  "record_inst",
	RecordArray: "record[]",
	Timestamp:   "timestamp",
}

// String returns a human-readable name for the type. Array variants carry
// the "[]" suffix of their element type. The result is suitable for
// diagnostics for every tag; only wire-representable tags survive Name.
func (t ValueType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// IsScalar reports whether t is a primitive numeric or character type.
func (t ValueType) IsScalar() bool {
	return t >= Char && t <= D64
}

// IsScalarArray reports whether t is a fixed-length array of scalars.
func (t ValueType) IsScalarArray() bool {
	return t >= CharArray && t <= D64Array
}

// ValueSize returns the in-memory size in bytes of one element of t, or 0
// for types without a fixed element size.
func (t ValueType) ValueSize() int {
	switch t {
	case Char, U8, S8, CharArray, U8Array, S8Array:
		return 1
	case U16, S16, U16Array, S16Array:
		return 2
	case U32, S32, F32, U32Array, S32Array, F32Array:
		return 4
	case U64, S64, D64, U64Array, S64Array, D64Array:
		return 8
	}
	return 0
}

// ArrayOf returns the array variant of a scalar type. RecordType promotes
// to RecordArray. Any other input fails with ErrInvalidType.
func ArrayOf(t ValueType) (ValueType, error) {
	switch {
	case t.IsScalar():
		return t + (CharArray - Char), nil
	case t == RecordType:
		return RecordArray, nil
	}
	return None, ErrInvalidType
}

// ScalarOf returns the element type of a scalar-array type. It is the
// inverse of ArrayOf for the scalar range.
func ScalarOf(t ValueType) (ValueType, error) {
	if t.IsScalarArray() {
		return t - (CharArray - Char), nil
	}
	return None, ErrInvalidType
}
