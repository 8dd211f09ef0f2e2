package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix
// enables future algorithm migration without ID collisions.
const (
	DomainRecord = "crossbind/record/v1"
	DomainBatch  = "crossbind/batch/v1"
)

// hashWithDomain computes SHA-256 with domain separation:
// SHA256(domain + 0x00 + data). The null byte prevents domain/data
// boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RecordID computes the content-addressed ID of a record. The ID covers the
// group, the declaration kind and name, and the canonicalized declaration
// body, but not the source location: re-capturing an unchanged declaration
// from a shifted line keeps its identity.
func RecordID(group string, rec Record) (string, error) {
	declJSON, err := json.Marshal(rec.Decl)
	if err != nil {
		return "", fmt.Errorf("RecordID: marshal decl: %w", err)
	}
	canonicalDecl, err := CanonicalizeJSON(declJSON)
	if err != nil {
		return "", fmt.Errorf("RecordID: %w", err)
	}
	// The decl is already canonical bytes; hash a two-part payload of the
	// canonical envelope followed by the decl bytes, null-separated.
	envelope, err := MarshalCanonical(map[string]any{
		"group": group,
		"kind":  string(rec.Kind),
		"name":  rec.Name,
	})
	if err != nil {
		return "", fmt.Errorf("RecordID: %w", err)
	}
	payload := make([]byte, 0, len(envelope)+1+len(canonicalDecl))
	payload = append(payload, envelope...)
	payload = append(payload, 0x00)
	payload = append(payload, canonicalDecl...)
	return hashWithDomain(DomainRecord, payload), nil
}

// MustRecordID is RecordID panicking on error. Use only in tests.
func MustRecordID(group string, rec Record) string {
	id, err := RecordID(group, rec)
	if err != nil {
		panic(err)
	}
	return id
}
