package registry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ovis-hpc/maestro/v1/metricschema"
	"github.com/ovis-hpc/maestro/v1/vtype"
)

// buildFullSchema exercises every wire-representable field kind.
func buildFullSchema(t *testing.T) *metricschema.Schema {
	t.Helper()

	rec := metricschema.NewRecord("rec")
	if _, err := rec.MetricAdd("uno", "u_uno", vtype.S64, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := rec.MetricAdd("dos", "u_dos", vtype.S64, 1); err != nil {
		t.Fatal(err)
	}

	sch := metricschema.New("test")
	if _, err := sch.AddMetric("one", "u_one", vtype.S64); err != nil {
		t.Fatal(err)
	}
	if _, err := sch.AddMeta("two", "u_two", vtype.S64); err != nil {
		t.Fatal(err)
	}
	if _, err := sch.AddMetricArray("three", "u_three", vtype.D64Array, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := sch.AddRecord(rec); err != nil {
		t.Fatal(err)
	}
	if _, err := sch.AddRecordArray("rec_array", rec, 8); err != nil {
		t.Fatal(err)
	}
	if _, err := sch.AddMetricArray("u32_array", "", vtype.U32Array, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := sch.AddList("list", 512); err != nil {
		t.Fatal(err)
	}
	return sch
}

func sameFields(t *testing.T, prefix string, want, got []metricschema.FieldDef) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: field count = %d, want %d", prefix, len(got), len(want))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.Name != w.Name || g.Type != w.Type || g.Unit != w.Unit ||
			g.IsMeta != w.IsMeta || g.Count != w.Count {
			t.Errorf("%s: field %d = %+v, want %+v", prefix, i, g, w)
		}
		if (w.Record == nil) != (g.Record == nil) {
			t.Fatalf("%s: field %d record presence mismatch", prefix, i)
		}
		if w.Record != nil && w.Type == vtype.RecordType {
			sameFields(t, prefix+"/"+w.Name, w.Record.Fields(), g.Record.Fields())
		}
	}
}

func TestRoundTrip(t *testing.T) {
	sch := buildFullSchema(t)

	data, err := EncodeSchema(sch)
	if err != nil {
		t.Fatalf("EncodeSchema: %v", err)
	}
	back, err := DecodeSchema(data)
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}

	if back.Name() != sch.Name() {
		t.Errorf("name = %q, want %q", back.Name(), sch.Name())
	}
	sameFields(t, "schema", sch.Fields(), back.Fields())
}

func TestEncodeShape(t *testing.T) {
	sch := metricschema.New("test")
	if _, err := sch.AddMetric("one", "", vtype.S64); err != nil {
		t.Fatal(err)
	}

	data, err := EncodeSchema(sch)
	if err != nil {
		t.Fatalf("EncodeSchema: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if obj["type"] != "record" || obj["name"] != "test" {
		t.Errorf("header = %v", obj)
	}
	fields, ok := obj["fields"].([]any)
	if !ok || len(fields) != 1 {
		t.Fatalf("fields = %v", obj["fields"])
	}
	f := fields[0].(map[string]any)
	if f["name"] != "one" || f["type"] != "s64" {
		t.Errorf("field = %v", f)
	}
	// Optional keys must be absent, not null/false.
	for _, key := range []string{"units", "is_meta", "len", "heap_sz", "items"} {
		if _, present := f[key]; present {
			t.Errorf("key %q must be omitted for a bare scalar", key)
		}
	}
}

func TestEncodeOptionalKeys(t *testing.T) {
	sch := metricschema.New("opt")
	sch.AddMeta("m", "kB", vtype.U64)
	sch.AddList("l", 256)

	data, err := EncodeSchema(sch)
	if err != nil {
		t.Fatal(err)
	}
	var obj struct {
		Fields []map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatal(err)
	}
	meta := obj.Fields[0]
	if meta["units"] != "kB" || meta["is_meta"] != true {
		t.Errorf("meta field = %v", meta)
	}
	list := obj.Fields[1]
	if list["type"] != "list" || list["heap_sz"] != float64(256) {
		t.Errorf("list field = %v", list)
	}
	if _, present := list["len"]; present {
		t.Error("list field must use heap_sz, not len")
	}
}

func TestEncodeNonRepresentable(t *testing.T) {
	for _, typ := range []vtype.ValueType{vtype.None, vtype.ListEntry, vtype.RecordInst, vtype.Timestamp} {
		_, err := encodeField(metricschema.FieldDef{Name: "x", Type: typ, Count: 1})
		if !errors.Is(err, ErrInvalidType) {
			t.Errorf("encodeField(%v): expected ErrInvalidType, got %v", typ, err)
		}
	}
}

func TestDecodeWrappedSchema(t *testing.T) {
	const data = `{"schema": {"type":"record","name":"wrapped",
		"fields":[{"name":"one","type":"s64"}]}}`
	sch, err := DecodeSchema([]byte(data))
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	if sch.Name() != "wrapped" || sch.FieldCount() != 1 {
		t.Fatalf("decoded %q with %d fields", sch.Name(), sch.FieldCount())
	}
}

func TestDecodeAliases(t *testing.T) {
	const data = `{"name":"alias","fields":[
		{"name":"a","type":"double"},
		{"name":"b","type":"float"},
		{"name":"c","type":"long"}]}`
	sch, err := DecodeSchema([]byte(data))
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	want := []vtype.ValueType{vtype.D64, vtype.F32, vtype.S64}
	for i, f := range sch.Fields() {
		if f.Type != want[i] {
			t.Errorf("field %d type = %v, want %v", i, f.Type, want[i])
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"not an object", `[1,2,3]`},
		{"missing name", `{"fields":[]}`},
		{"name wrong type", `{"name":42,"fields":[]}`},
		{"missing fields", `{"name":"x"}`},
		{"fields wrong type", `{"name":"x","fields":"nope"}`},
		{"field not object", `{"name":"x","fields":[7]}`},
		{"field missing name", `{"name":"x","fields":[{"type":"s64"}]}`},
		{"field missing type", `{"name":"x","fields":[{"name":"a"}]}`},
		{"unknown type", `{"name":"x","fields":[{"name":"a","type":"u128"}]}`},
		{"record missing fields", `{"name":"x","fields":[{"name":"r","type":"record"}]}`},
		{"list in record", `{"name":"x","fields":[{"name":"r","type":"record",
			"fields":[{"name":"l","type":"list","heap_sz":8}]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSchema([]byte(tc.data)); !IsInvalidFormat(err) {
				t.Fatalf("expected ErrInvalidFormat, got %v", err)
			}
		})
	}
}

func TestDecodeRecordOrderDependency(t *testing.T) {
	const forward = `{"name":"x","fields":[
		{"name":"arr","type":"array","items":"rec","len":4,"record_type":"rec"},
		{"name":"rec","type":"record","fields":[{"name":"m","type":"u64"}]}]}`
	if _, err := DecodeSchema([]byte(forward)); !IsInvalidFormat(err) {
		t.Fatalf("forward reference: expected ErrInvalidFormat, got %v", err)
	}

	// The same JSON with the record moved before the array must decode.
	const ordered = `{"name":"x","fields":[
		{"name":"rec","type":"record","fields":[{"name":"m","type":"u64"}]},
		{"name":"arr","type":"array","items":"rec","len":4,"record_type":"rec"}]}`
	sch, err := DecodeSchema([]byte(ordered))
	if err != nil {
		t.Fatalf("ordered: %v", err)
	}
	fields := sch.Fields()
	if fields[1].Type != vtype.RecordArray || fields[1].Count != 4 {
		t.Fatalf("record array field = %+v", fields[1])
	}
	if fields[1].Record != fields[0].Record {
		t.Fatal("record array not bound to the declared record type")
	}
}

func TestDecodeRecordArrayItemsLiteral(t *testing.T) {
	// items may spell the literal "record" instead of the record name.
	const data = `{"name":"x","fields":[
		{"name":"rec","type":"record","fields":[{"name":"m","type":"u64"}]},
		{"name":"arr","type":"array","items":"record","len":2,"record_type":"rec"}]}`
	sch, err := DecodeSchema([]byte(data))
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	if sch.Fields()[1].Type != vtype.RecordArray {
		t.Fatalf("field type = %v", sch.Fields()[1].Type)
	}
}

func TestDecodeDuplicateFieldPropagates(t *testing.T) {
	const data = `{"name":"x","fields":[
		{"name":"a","type":"s64"},
		{"name":"a","type":"u32"}]}`
	_, err := DecodeSchema([]byte(data))
	if !metricschema.IsDuplicateName(err) {
		t.Fatalf("expected builder duplicate-name error, got %v", err)
	}
}

func TestDecodeIsMetaAndUnits(t *testing.T) {
	const data = `{"name":"x","fields":[
		{"name":"a","type":"u64","units":"kB","is_meta":true},
		{"name":"b","type":"array","items":"u8","len":16,"units":"B"}]}`
	sch, err := DecodeSchema([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	fields := sch.Fields()
	if !fields[0].IsMeta || fields[0].Unit != "kB" {
		t.Errorf("meta field = %+v", fields[0])
	}
	if fields[1].Type != vtype.U8Array || fields[1].Count != 16 || fields[1].Unit != "B" {
		t.Errorf("array field = %+v", fields[1])
	}
}
