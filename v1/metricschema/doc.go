// Package metricschema builds in-memory metric schema definitions: named,
// ordered collections of typed field definitions describing the structure
// of a metric set.
//
// A Schema owns its fields. Fields are primitive metrics (data or
// metadata), fixed-length arrays of primitives, heap-backed lists, nested
// record type definitions, or arrays of record instances bound to a record
// type defined earlier in the same schema. Insertion order is significant:
// it is the order fields travel on the wire.
//
// Basic usage:
//
//	rec := metricschema.NewRecord("rec")
//	rec.MetricAdd("uno", "u_uno", vtype.S64, 1)
//	rec.MetricAdd("dos", "u_dos", vtype.S64, 1)
//
//	sch := metricschema.New("test")
//	sch.AddMetric("one", "u_one", vtype.S64)
//	sch.AddMeta("two", "u_two", vtype.S64)
//	sch.AddMetricArray("three", "u_three", vtype.D64Array, 10)
//	sch.AddRecord(rec)
//	sch.AddRecordArray("rec_array", rec, 8)
//	sch.AddList("list", 512)
//
// Every schema has a content digest (see Digest) identifying its structure
// independent of any registry-assigned name or id.
package metricschema
