// Package attest handles the external evidence side of a mint: the
// on-disk proof bundle referenced by the transaction and the timestamp
// attestation collaborator that stamps and verifies it.
package attest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/clock"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
)

// Bundle is one mint attempt's proof directory.
type Bundle struct {
	Dir            string
	Name           string
	ManifestDigest string
}

// Store writes proof bundles under a root directory, one per mint
// attempt. Bundle names embed a random suffix so two attempts for the
// same wallet cannot collide.
type Store struct {
	root   string
	now    clock.NowFunc
	logger *zap.Logger
}

// NewStore builds a proof Store rooted at root.
func NewStore(root string, logger *zap.Logger) *Store {
	return &Store{
		root:   root,
		now:    time.Now,
		logger: logger.Named("proofstore"),
	}
}

type manifest struct {
	Wallet         string          `json:"wallet"`
	JoulesVerified uint64          `json:"joules_verified"`
	VDCMinted      decimal.Decimal `json:"vdc_minted"`
	IssuanceRate   decimal.Decimal `json:"issuance_rate"`
	TimestampLocal string          `json:"timestamp_local"`
}

// CreateBundle writes the manifest and the raw-activity placeholder for
// one mint attempt and returns the bundle together with the txid-style
// double-SHA-256 digest of its manifest.
func (s *Store) CreateBundle(wallet string, joules uint64, amount decimal.Decimal) (Bundle, error) {
	suffix := uuid.NewString()[:8]
	name := fmt.Sprintf("%s_%s", wallet, suffix)
	dir := filepath.Join(s.root, name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Bundle{}, fmt.Errorf("create bundle dir: %w", err)
	}

	activity := fmt.Sprintf("original_activity_%s.fit", suffix)
	if err := os.WriteFile(filepath.Join(dir, activity), []byte("MOCK_FIT_CONTENT"), 0o644); err != nil {
		return Bundle{}, fmt.Errorf("write activity file: %w", err)
	}

	m := manifest{
		Wallet:         wallet,
		JoulesVerified: joules,
		VDCMinted:      amount.Round(protocol.AmountPrecision),
		IssuanceRate:   protocol.AlphaJoulesToVDC,
		TimestampLocal: s.now().Format(time.RFC3339),
	}
	raw, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return Bundle{}, fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), raw, 0o644); err != nil {
		return Bundle{}, fmt.Errorf("write manifest: %w", err)
	}

	digest := chainhash.DoubleHashH(raw)
	s.logger.Info("proof bundle created",
		zap.String("bundle", name),
		zap.String("manifest_digest", digest.String()),
	)

	return Bundle{Dir: dir, Name: name, ManifestDigest: digest.String()}, nil
}

// WriteAttestationRef records the attestation id inside the bundle.
func (s *Store) WriteAttestationRef(b Bundle, attestationID string) error {
	if err := os.WriteFile(filepath.Join(b.Dir, "ots_txid.txt"), []byte(attestationID), 0o644); err != nil {
		return fmt.Errorf("write attestation ref: %w", err)
	}
	return nil
}
