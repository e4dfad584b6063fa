package metricschema

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
)

// DigestSize is the byte length of a schema content digest.
const DigestSize = 20

// Digest is a content hash identifying a schema's canonical structure,
// independent of its registry-assigned name or id.
type Digest [DigestSize]byte

// String returns the canonical representation: 40 lowercase hex
// characters, two per byte, most-significant byte first, no delimiters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest is the exact inverse of Digest.String. It requires exactly
// 40 hex characters and fails with ErrInvalidDigest otherwise.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != 2*DigestSize {
		return d, fmt.Errorf("digest %q: length %d: %w", s, len(s), ErrInvalidDigest)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("digest %q: %w", s, ErrInvalidDigest)
	}
	copy(d[:], b)
	return d, nil
}

// Digest computes the content digest of the schema over its field
// definitions in insertion order. Two schemas with the same structure
// have the same digest regardless of their names.
func (s *Schema) Digest() Digest {
	h := sha1.New()
	for _, f := range s.fields {
		digestField(h, f)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func digestField(h hash.Hash, f FieldDef) {
	h.Write([]byte(f.Name))
	h.Write([]byte{0})
	h.Write([]byte(f.Unit))
	h.Write([]byte{0})
	var hdr [6]byte
	hdr[0] = byte(f.Type)
	binary.LittleEndian.PutUint32(hdr[1:5], uint32(f.Count))
	if f.IsMeta {
		hdr[5] = 1
	}
	h.Write(hdr[:6])
	if f.Record != nil {
		for _, m := range f.Record.fields {
			digestField(h, m)
		}
	}
}
