package metricschema

import (
	"fmt"

	"github.com/ovis-hpc/maestro/v1/vtype"
)

// FieldDef is one named, typed slot within a schema or record.
type FieldDef struct {
	Name   string
	Unit   string
	Type   vtype.ValueType
	IsMeta bool

	// Count is the element count for array fields, the heap size in
	// bytes for list fields, and the member count for record type
	// fields. It is 1 for primitive fields.
	Count int

	// Record is the referenced record definition for RecordType and
	// RecordArray fields, nil for everything else.
	Record *Record
}

// Schema is a named, ordered collection of field definitions. The zero
// value is not usable; construct with New.
type Schema struct {
	name   string
	fields []FieldDef
}

// New creates an empty schema with the given name.
func New(name string) *Schema {
	return &Schema{name: name}
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// FieldCount returns the number of fields added so far.
func (s *Schema) FieldCount() int {
	return len(s.fields)
}

// Fields returns a snapshot of the field definitions in insertion order.
// Mutating the returned slice does not affect the schema.
func (s *Schema) Fields() []FieldDef {
	out := make([]FieldDef, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty field name: %w", ErrInvalidArgument)
	}
	for _, f := range s.fields {
		if f.Name == name {
			return fmt.Errorf("field %q: %w", name, ErrDuplicateName)
		}
	}
	return nil
}

// AddMetric appends a primitive data field. The unit may be empty.
// Returns the index of the new field.
func (s *Schema) AddMetric(name, unit string, t vtype.ValueType) (int, error) {
	return s.addPrimitive(name, unit, t, false)
}

// AddMeta appends a primitive metadata field.
func (s *Schema) AddMeta(name, unit string, t vtype.ValueType) (int, error) {
	return s.addPrimitive(name, unit, t, true)
}

func (s *Schema) addPrimitive(name, unit string, t vtype.ValueType, meta bool) (int, error) {
	if !t.IsScalar() {
		return -1, fmt.Errorf("field %q: type %v is not a scalar: %w",
			name, t, vtype.ErrInvalidType)
	}
	if err := s.checkName(name); err != nil {
		return -1, err
	}
	s.fields = append(s.fields, FieldDef{
		Name: name, Unit: unit, Type: t, IsMeta: meta, Count: 1,
	})
	return len(s.fields) - 1, nil
}

// AddMetricArray appends a fixed-length array data field. t must be a
// scalar-array type and count the element count.
func (s *Schema) AddMetricArray(name, unit string, t vtype.ValueType, count int) (int, error) {
	return s.addArray(name, unit, t, count, false)
}

// AddMetaArray appends a fixed-length array metadata field.
func (s *Schema) AddMetaArray(name, unit string, t vtype.ValueType, count int) (int, error) {
	return s.addArray(name, unit, t, count, true)
}

func (s *Schema) addArray(name, unit string, t vtype.ValueType, count int, meta bool) (int, error) {
	if !t.IsScalarArray() {
		return -1, fmt.Errorf("field %q: type %v is not a scalar array: %w",
			name, t, vtype.ErrInvalidType)
	}
	if count <= 0 {
		return -1, fmt.Errorf("field %q: array length %d: %w",
			name, count, ErrInvalidArgument)
	}
	if err := s.checkName(name); err != nil {
		return -1, err
	}
	s.fields = append(s.fields, FieldDef{
		Name: name, Unit: unit, Type: t, IsMeta: meta, Count: count,
	})
	return len(s.fields) - 1, nil
}

// AddList appends a heap-backed list field. heapSz is the list heap size
// in bytes.
func (s *Schema) AddList(name string, heapSz int) (int, error) {
	if heapSz <= 0 {
		return -1, fmt.Errorf("field %q: heap size %d: %w",
			name, heapSz, ErrInvalidArgument)
	}
	if err := s.checkName(name); err != nil {
		return -1, err
	}
	s.fields = append(s.fields, FieldDef{
		Name: name, Type: vtype.List, Count: heapSz,
	})
	return len(s.fields) - 1, nil
}

// AddRecord registers a record type definition as a field of the schema.
// The field takes the record's name. The schema holds a reference to the
// record; the record must not be mutated afterwards.
func (s *Schema) AddRecord(rec *Record) (int, error) {
	if rec == nil {
		return -1, fmt.Errorf("nil record: %w", ErrInvalidArgument)
	}
	if err := s.checkName(rec.Name()); err != nil {
		return -1, err
	}
	s.fields = append(s.fields, FieldDef{
		Name: rec.Name(), Type: vtype.RecordType, Count: rec.Card(), Record: rec,
	})
	return len(s.fields) - 1, nil
}

// AddRecordArray appends an array of record instances bound to rec. The
// record must already have been added to this schema with AddRecord.
func (s *Schema) AddRecordArray(name string, rec *Record, count int) (int, error) {
	if rec == nil {
		return -1, fmt.Errorf("field %q: nil record: %w", name, ErrInvalidArgument)
	}
	if count <= 0 {
		return -1, fmt.Errorf("field %q: array length %d: %w",
			name, count, ErrInvalidArgument)
	}
	if s.RecordByName(rec.Name()) != rec {
		return -1, fmt.Errorf("field %q: record type %q is not part of this schema: %w",
			name, rec.Name(), ErrInvalidArgument)
	}
	if err := s.checkName(name); err != nil {
		return -1, err
	}
	s.fields = append(s.fields, FieldDef{
		Name: name, Type: vtype.RecordArray, Count: count, Record: rec,
	})
	return len(s.fields) - 1, nil
}

// RecordByName returns the record type defined under the given field
// name, or nil if no such record field exists.
func (s *Schema) RecordByName(name string) *Record {
	for _, f := range s.fields {
		if f.Type == vtype.RecordType && f.Name == name {
			return f.Record
		}
	}
	return nil
}

// MetaSize returns the metadata byte size of the schema: metadata fields
// plus record type definitions.
func (s *Schema) MetaSize() int {
	var sz int
	for _, f := range s.fields {
		switch {
		case f.Type == vtype.RecordType:
			sz += f.Record.instSize()
		case f.IsMeta:
			sz += f.Type.ValueSize() * f.Count
		}
	}
	return sz
}

// DataSize returns the mutable data byte size of the schema: data fields,
// record arrays, and list heaps.
func (s *Schema) DataSize() int {
	var sz int
	for _, f := range s.fields {
		switch f.Type {
		case vtype.RecordType:
			// type definition only, accounted in MetaSize
		case vtype.RecordArray:
			sz += f.Record.instSize() * f.Count
		case vtype.List:
			sz += f.Count
		default:
			if !f.IsMeta {
				sz += f.Type.ValueSize() * f.Count
			}
		}
	}
	return sz
}
