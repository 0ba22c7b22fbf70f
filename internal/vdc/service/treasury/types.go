// Package treasury sequences mint and redeem operations over the ledger:
// validation, external attestation, and the final commit.
package treasury

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/attest"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the slice of the ledger repository the orchestrators use.
	Ledger interface {
		Commit(ctx context.Context, txs model.Transactions) (model.Block, error)
		BalanceOf(ctx context.Context, wallet string) (decimal.Decimal, error)
	}

	// Attestor stamps a proof manifest digest with the external timestamp
	// authority and verifies the resulting attestation. Verification
	// failure is a rejection, never retried here.
	Attestor interface {
		Stamp(ctx context.Context, manifestDigest string) (string, error)
		Verify(ctx context.Context, attestationID string) (bool, error)
	}

	// ProofBundler writes the per-attempt proof bundle the attestor
	// consumes.
	ProofBundler interface {
		CreateBundle(wallet string, joules uint64, amount decimal.Decimal) (attest.Bundle, error)
		WriteAttestationRef(b attest.Bundle, attestationID string) error
	}

	// Metrics records orchestrator outcomes.
	Metrics interface {
		ObserveMint(outcome string, started time.Time)
		ObserveRedeem(outcome string, started time.Time)
	}
)

var (
	// ErrValidationRejected reports that the physics gates failed.
	// Nothing was written.
	ErrValidationRejected = errors.New("validation rejected")

	// ErrAttestationFailed reports that external verification failed after
	// validation passed. The proof work already done is discarded and the
	// ledger is untouched.
	ErrAttestationFailed = errors.New("attestation failed")

	// ErrInsufficientBalance reports a redeem beyond the wallet's derived
	// balance. Nothing was written.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount reports a redeem request for a zero or negative
	// amount. Nothing was written.
	ErrInvalidAmount = errors.New("invalid amount")
)

// State names a step of the mint pipeline.
type State string

const (
	StateValidating         State = "validating"
	StateAttestationPending State = "attestation_pending"
	StateCommitting         State = "committing"
	StateDone               State = "done"
	StateRejected           State = "rejected"
)

const (
	outcomeMinted   = "minted"
	outcomeRedeemed = "redeemed"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)
