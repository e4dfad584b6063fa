package registry

import (
	"encoding/json"
	"fmt"

	"github.com/ovis-hpc/maestro/v1/metricschema"
	"github.com/ovis-hpc/maestro/v1/vtype"
)

// Canonical schema wire form:
//
//	{ "type": "record", "name": <string>, "fields": [ <field>, ... ] }
//
// Field shapes by kind:
//
//	scalar       {name, type: <wire name>[, units][, is_meta: true]}
//	scalar array {name, type: "array", items: <wire name>, len: N[, units][, is_meta]}
//	list         {name, type: "list", heap_sz: N[, units][, is_meta]}
//	record type  {name, type: "record", fields: [...]}
//	record array {name, type: "array", items: <record name>, len: N,
//	              record_type: <record name>[, units][, is_meta]}
//
// units and is_meta are omitted entirely when empty/false, never emitted
// as null or false.

type schemaObject struct {
	Type   string        `json:"type"`
	Name   string        `json:"name"`
	Fields []fieldObject `json:"fields"`
}

type fieldObject struct {
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Items      string        `json:"items,omitempty"`
	Len        int           `json:"len,omitempty"`
	HeapSz     int           `json:"heap_sz,omitempty"`
	RecordType string        `json:"record_type,omitempty"`
	Fields     []fieldObject `json:"fields,omitempty"`
	Units      string        `json:"units,omitempty"`
	IsMeta     bool          `json:"is_meta,omitempty"`
}

// EncodeSchema converts a schema definition to its canonical JSON wire
// form. Schemas containing non-representable type tags fail with
// ErrInvalidType.
func EncodeSchema(s *metricschema.Schema) ([]byte, error) {
	obj := schemaObject{
		Type:   "record",
		Name:   s.Name(),
		Fields: make([]fieldObject, 0, s.FieldCount()),
	}
	for _, f := range s.Fields() {
		fo, err := encodeField(f)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, fo)
	}
	return json.Marshal(obj)
}

func encodeField(f metricschema.FieldDef) (fieldObject, error) {
	fo := fieldObject{Name: f.Name}
	switch {
	case f.Type.IsScalar():
		fo.Type = f.Type.String()
	case f.Type.IsScalarArray():
		elem, err := vtype.ScalarOf(f.Type)
		if err != nil {
			return fo, fmt.Errorf("field %q: %w", f.Name, err)
		}
		fo.Type = "array"
		fo.Items = elem.String()
		fo.Len = f.Count
	case f.Type == vtype.List:
		fo.Type = "list"
		fo.HeapSz = f.Count
	case f.Type == vtype.RecordType:
		return encodeRecord(f.Name, f.Record)
	case f.Type == vtype.RecordArray:
		fo.Type = "array"
		fo.Items = f.Record.Name()
		fo.Len = f.Count
		fo.RecordType = f.Record.Name()
	default:
		// ListEntry, RecordInst, Timestamp, None: not wire-representable.
		return fo, fmt.Errorf("field %q: type %v: %w", f.Name, f.Type, ErrInvalidType)
	}
	fo.Units = f.Unit
	fo.IsMeta = f.IsMeta
	return fo, nil
}

func encodeRecord(name string, rec *metricschema.Record) (fieldObject, error) {
	fo := fieldObject{
		Name:   name,
		Type:   "record",
		Fields: make([]fieldObject, 0, rec.Card()),
	}
	for _, m := range rec.Fields() {
		mo, err := encodeField(m)
		if err != nil {
			return fo, fmt.Errorf("record %q: %w", name, err)
		}
		fo.Fields = append(fo.Fields, mo)
	}
	return fo, nil
}

// Decode envelopes. Pointer and RawMessage members distinguish a missing
// key from a present-but-empty one, which the format cares about.

type schemaWire struct {
	Name   *string           `json:"name"`
	Fields []json.RawMessage `json:"fields"`
}

type fieldWire struct {
	Name       *string           `json:"name"`
	Type       *string           `json:"type"`
	Items      string            `json:"items"`
	Len        int               `json:"len"`
	HeapSz     int               `json:"heap_sz"`
	RecordType string            `json:"record_type"`
	Fields     []json.RawMessage `json:"fields"`
	Units      string            `json:"units"`
	IsMeta     bool              `json:"is_meta"`
}

// DecodeSchema parses a canonical JSON wire form back into a schema
// definition. The top-level object may be the schema itself or wrap it
// under a "schema" key; both forms are accepted. Malformed shapes fail
// with ErrInvalidFormat and no partial schema is ever returned.
func DecodeSchema(data []byte) (*metricschema.Schema, error) {
	var envelope struct {
		Schema json.RawMessage `json:"schema"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("schema object: %v: %w", err, ErrInvalidFormat)
	}
	if envelope.Schema != nil {
		data = envelope.Schema
	}

	var sw schemaWire
	if err := json.Unmarshal(data, &sw); err != nil {
		return nil, fmt.Errorf("schema object: %v: %w", err, ErrInvalidFormat)
	}
	if sw.Name == nil {
		return nil, fmt.Errorf("schema missing name: %w", ErrInvalidFormat)
	}
	if sw.Fields == nil {
		return nil, fmt.Errorf("schema %q missing fields: %w", *sw.Name, ErrInvalidFormat)
	}

	sch := metricschema.New(*sw.Name)
	records := make(map[string]*metricschema.Record)
	for i, raw := range sw.Fields {
		if err := decodeField(sch, records, raw); err != nil {
			return nil, fmt.Errorf("schema %q field %d: %w", *sw.Name, i, err)
		}
	}
	return sch, nil
}

// resolveFieldType determines the value type and length of one decoded
// field. For {"type":"array"} the element name comes from "items" and the
// count from "len"; the resolved element is then promoted to its array
// variant. Lists read their length from "heap_sz" instead.
func resolveFieldType(fw *fieldWire) (vtype.ValueType, int, error) {
	if fw.Type == nil {
		return vtype.None, 0, fmt.Errorf("missing type: %w", ErrInvalidFormat)
	}
	wire := *fw.Type
	count := 1
	isArray := false
	if wire == "array" {
		isArray = true
		wire = fw.Items
		count = fw.Len
	}

	t, err := vtype.FromString(wire)
	if err != nil {
		// Some producers put the record type name in "items" directly
		// instead of the literal "record".
		if isArray && fw.RecordType != "" && wire == fw.RecordType {
			t = vtype.RecordType
		} else {
			return vtype.None, 0, fmt.Errorf("unknown type %q: %w", wire, ErrInvalidFormat)
		}
	}
	if isArray {
		t, err = vtype.ArrayOf(t)
		if err != nil {
			return vtype.None, 0, fmt.Errorf("type %q cannot be an array element: %w",
				wire, ErrInvalidFormat)
		}
	}
	if t == vtype.List {
		count = fw.HeapSz
	}
	return t, count, nil
}

func decodeField(sch *metricschema.Schema, records map[string]*metricschema.Record, raw json.RawMessage) error {
	var fw fieldWire
	if err := json.Unmarshal(raw, &fw); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidFormat)
	}
	if fw.Name == nil {
		return fmt.Errorf("missing name: %w", ErrInvalidFormat)
	}
	name := *fw.Name

	t, count, err := resolveFieldType(&fw)
	if err != nil {
		return err
	}

	switch {
	case t.IsScalar():
		if fw.IsMeta {
			_, err = sch.AddMeta(name, fw.Units, t)
		} else {
			_, err = sch.AddMetric(name, fw.Units, t)
		}
	case t.IsScalarArray():
		if fw.IsMeta {
			_, err = sch.AddMetaArray(name, fw.Units, t, count)
		} else {
			_, err = sch.AddMetricArray(name, fw.Units, t, count)
		}
	case t == vtype.RecordType:
		rec, rerr := decodeRecord(name, &fw)
		if rerr != nil {
			// The partial record is discarded, never attached.
			return rerr
		}
		if _, err = sch.AddRecord(rec); err == nil {
			records[name] = rec
		}
	case t == vtype.RecordArray:
		// Record types must be declared before being referenced; a
		// forward or dangling reference is malformed.
		rec := records[fw.RecordType]
		if rec == nil {
			return fmt.Errorf("field %q: record type %q not defined: %w",
				name, fw.RecordType, ErrInvalidFormat)
		}
		_, err = sch.AddRecordArray(name, rec, count)
	case t == vtype.List:
		_, err = sch.AddList(name, count)
	default:
		return fmt.Errorf("field %q: type %v: %w", name, t, ErrInvalidFormat)
	}
	return err
}

func decodeRecord(name string, fw *fieldWire) (*metricschema.Record, error) {
	if fw.Fields == nil {
		return nil, fmt.Errorf("record %q missing fields: %w", name, ErrInvalidFormat)
	}
	rec := metricschema.NewRecord(name)
	for i, raw := range fw.Fields {
		if err := decodeRecordMember(rec, raw); err != nil {
			return nil, fmt.Errorf("record %q member %d: %w", name, i, err)
		}
	}
	return rec, nil
}

func decodeRecordMember(rec *metricschema.Record, raw json.RawMessage) error {
	var fw fieldWire
	if err := json.Unmarshal(raw, &fw); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidFormat)
	}
	if fw.Name == nil {
		return fmt.Errorf("missing name: %w", ErrInvalidFormat)
	}
	t, count, err := resolveFieldType(&fw)
	if err != nil {
		return err
	}
	if !t.IsScalar() && !t.IsScalarArray() {
		return fmt.Errorf("member %q: type %v not allowed in a record: %w",
			*fw.Name, t, ErrInvalidFormat)
	}
	_, err = rec.MetricAdd(*fw.Name, fw.Units, t, count)
	return err
}
