// Package hashchain computes the content hash that links ledger blocks.
package hashchain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
)

// Hash returns the lowercase hex SHA-256 digest of the draft's canonical
// JSON form. Accepting only a BlockDraft keeps the hash free of any stale
// or placeholder hash field: a sealed Block cannot be passed in.
func Hash(draft model.BlockDraft) (string, error) {
	canon, err := canonicalJSON(draft)
	if err != nil {
		return "", fmt.Errorf("canonicalize block draft: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalJSON re-encodes v through a generic tree so that object keys
// come out sorted. Two drafts with equal content hash identically no
// matter how they were constructed or which key order their JSON source
// used. Numbers pass through as json.Number to avoid float round-trips.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	return json.Marshal(tree)
}
