// Package vtype defines the closed set of metric value types that can be
// expressed in a metric schema, together with the catalog that maps each
// type to its canonical wire name and back.
//
// The type set mirrors the LDMS metric value model: signed and unsigned
// integers of 8 to 64 bits, 32/64-bit floats, characters, fixed-length
// array variants of each scalar, heap-backed lists, record type
// definitions, and arrays of record instances. A handful of tags
// (ListEntry, RecordInst, Timestamp, None) exist only in memory and are
// never representable on the wire.
//
// Basic usage:
//
//	t, err := vtype.FromString("s64")   // vtype.S64
//	name, err := vtype.Name(vtype.U32Array) // "u32[]"
//	arr, err := vtype.ArrayOf(vtype.D64)    // vtype.D64Array
//
// The catalog accepts the aliases "double", "float", and "long" on input
// for compatibility with schemas produced by other registry clients.
package vtype
