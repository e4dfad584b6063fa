package metricschema

import (
	"strings"
	"testing"

	"github.com/ovis-hpc/maestro/v1/vtype"
)

func TestDigestStringInverse(t *testing.T) {
	var d Digest
	for i := range d {
		d[i] = byte(i * 13)
	}
	s := d.String()
	if len(s) != 40 {
		t.Fatalf("digest string length = %d, want 40", len(s))
	}
	if s != strings.ToLower(s) {
		t.Fatalf("digest string %q is not lowercase", s)
	}
	back, err := ParseDigest(s)
	if err != nil {
		t.Fatalf("ParseDigest(%q): %v", s, err)
	}
	if back != d {
		t.Fatalf("ParseDigest(String()) = %v, want %v", back, d)
	}
}

func TestParseDigestRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"abcd",
		strings.Repeat("ab", 19),  // too short
		strings.Repeat("ab", 21),  // too long
		strings.Repeat("ab", 19) + "zz", // right length, bad hex
	}
	for _, s := range cases {
		if _, err := ParseDigest(s); err == nil {
			t.Errorf("ParseDigest(%q) succeeded", s)
		}
	}
}

func TestSchemaDigestIgnoresName(t *testing.T) {
	a := New("alpha")
	a.AddMetric("one", "u", vtype.S64)
	b := New("beta")
	b.AddMetric("one", "u", vtype.S64)

	if a.Digest() != b.Digest() {
		t.Fatal("digest depends on schema name")
	}
}

func TestSchemaDigestSensitivity(t *testing.T) {
	base := func() *Schema {
		s := New("s")
		s.AddMetric("one", "u", vtype.S64)
		s.AddMetric("two", "", vtype.U32)
		return s
	}
	d0 := base().Digest()

	renamed := New("s")
	renamed.AddMetric("one", "u", vtype.S64)
	renamed.AddMetric("deux", "", vtype.U32)
	if renamed.Digest() == d0 {
		t.Error("digest unchanged by field rename")
	}

	retyped := New("s")
	retyped.AddMetric("one", "u", vtype.S64)
	retyped.AddMetric("two", "", vtype.U64)
	if retyped.Digest() == d0 {
		t.Error("digest unchanged by field type change")
	}

	reordered := New("s")
	reordered.AddMetric("two", "", vtype.U32)
	reordered.AddMetric("one", "u", vtype.S64)
	if reordered.Digest() == d0 {
		t.Error("digest unchanged by field reorder")
	}

	meta := New("s")
	meta.AddMetric("one", "u", vtype.S64)
	meta.AddMeta("two", "", vtype.U32)
	if meta.Digest() == d0 {
		t.Error("digest unchanged by meta flag")
	}
}
