package hashchain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
)

func sampleDraft() model.BlockDraft {
	return model.BlockDraft{
		Index:     1,
		Timestamp: 1_700_000_000,
		Txs: model.Transactions{
			model.Mint{
				Wallet:    "VDC_BRANDON_001",
				Amount:    decimal.RequireFromString("2.38488"),
				Asset:     "VDC",
				Joules:    2_510_400,
				Timestamp: 1_700_000_000,
				Proof: model.ValidationProof{
					Protocol:       "PoM",
					AttestationRef: "BTC-OTS-deadbeefdeadbeef",
					ProofRef:       "VDC_BRANDON_001_ab12cd34",
				},
			},
		},
		Supply:   decimal.RequireFromString("2.38488"),
		PrevHash: "GENESIS_MOONSHOT_NOV2025",
	}
}

func TestHash_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := Hash(sampleDraft())
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := Hash(sampleDraft())
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first != second {
		t.Fatalf("hash not stable: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	for _, c := range first {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Fatalf("hash contains non-lowercase-hex char %q", c)
		}
	}
}

// The canonical form must be independent of the key order of the JSON the
// draft was decoded from.
func TestHash_StableAcrossFieldOrder(t *testing.T) {
	t.Parallel()

	want, err := Hash(sampleDraft())
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	reordered := `{
		"prev_hash": "GENESIS_MOONSHOT_NOV2025",
		"supply": "2.38488",
		"txs": [{
			"validation_proof": {
				"proof_ref": "VDC_BRANDON_001_ab12cd34",
				"attestation_ref": "BTC-OTS-deadbeefdeadbeef",
				"protocol": "PoM"
			},
			"timestamp": 1700000000,
			"joules": 2510400,
			"asset": "VDC",
			"amount": "2.38488",
			"wallet": "VDC_BRANDON_001",
			"type": "MINT"
		}],
		"timestamp": 1700000000,
		"index": 1
	}`

	var draft model.BlockDraft
	if err := json.Unmarshal([]byte(reordered), &draft); err != nil {
		t.Fatalf("unmarshal reordered draft: %v", err)
	}

	got, err := Hash(draft)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if got != want {
		t.Fatalf("hash changed with field order: %s != %s", got, want)
	}
}

func TestHash_SensitiveToContent(t *testing.T) {
	t.Parallel()

	base, err := Hash(sampleDraft())
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	changed := sampleDraft()
	changed.Index = 2
	other, err := Hash(changed)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if base == other {
		t.Fatal("hash ignored changed content")
	}
}

// Sealing a draft must not feed the hash back into itself: the sealed
// block's draft still hashes to the same value.
func TestHash_SealDoesNotAffectDraft(t *testing.T) {
	t.Parallel()

	draft := sampleDraft()
	hash, err := Hash(draft)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	block := draft.Seal(hash)
	rehashed, err := Hash(block.BlockDraft)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if rehashed != hash {
		t.Fatalf("sealed block draft hashes differently: %s != %s", rehashed, hash)
	}
}
