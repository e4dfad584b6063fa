package metricschema

import (
	"fmt"

	"github.com/ovis-hpc/maestro/v1/vtype"
)

// Record is a named record type definition: an ordered collection of
// primitive and primitive-array members describing the shape of one
// structured value. Records are referenced, not owned, by record-array
// fields of the enclosing schema.
type Record struct {
	name   string
	fields []FieldDef
}

// NewRecord creates an empty record type definition.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the record type name.
func (r *Record) Name() string {
	return r.name
}

// Card returns the number of members.
func (r *Record) Card() int {
	return len(r.fields)
}

// Fields returns a snapshot of the member definitions in insertion order.
func (r *Record) Fields() []FieldDef {
	out := make([]FieldDef, len(r.fields))
	copy(out, r.fields)
	return out
}

// MetricAdd appends a member to the record. Only scalars and scalar
// arrays are allowed inside a record; count is the array length and must
// be 1 for scalars. Returns the index of the new member.
func (r *Record) MetricAdd(name, unit string, t vtype.ValueType, count int) (int, error) {
	switch {
	case t.IsScalar():
		count = 1
	case t.IsScalarArray():
		if count <= 0 {
			return -1, fmt.Errorf("record %q member %q: array length %d: %w",
				r.name, name, count, ErrInvalidArgument)
		}
	default:
		return -1, fmt.Errorf("record %q member %q: type %v not allowed in a record: %w",
			r.name, name, t, vtype.ErrInvalidType)
	}
	if name == "" {
		return -1, fmt.Errorf("record %q: empty member name: %w", r.name, ErrInvalidArgument)
	}
	for _, f := range r.fields {
		if f.Name == name {
			return -1, fmt.Errorf("record %q member %q: %w", r.name, name, ErrDuplicateName)
		}
	}
	r.fields = append(r.fields, FieldDef{
		Name: name, Unit: unit, Type: t, Count: count,
	})
	return len(r.fields) - 1, nil
}

// instSize is the byte size of one record instance.
func (r *Record) instSize() int {
	var sz int
	for _, f := range r.fields {
		sz += f.Type.ValueSize() * f.Count
	}
	return sz
}
