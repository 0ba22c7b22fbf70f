package treasury

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/attest"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/physics"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/txbuilder"
	"github.com/vdcprotocol/vdc-backend/pkg/safe"
)

// MintRequest carries one proof-of-motion claim.
type MintRequest struct {
	Wallet string
	Sample physics.Sample
}

// MintReceipt reports a completed issuance.
type MintReceipt struct {
	Block         model.Block
	Amount        decimal.Decimal
	Joules        uint64
	Verdict       physics.Verdict
	Balance       decimal.Decimal
	Supply        decimal.Decimal
	AttestationID string
	ProofRef      string
}

// MintOrchestrator drives a mint attempt through validation, external
// attestation, and ledger commit. Rejection at any step leaves the
// ledger untouched; the only write happens in the committing state and
// is atomic.
type MintOrchestrator struct {
	ledger   Ledger
	attestor Attestor
	proofs   ProofBundler
	builder  *txbuilder.Builder
	metrics  Metrics
	logger   *zap.Logger
	evaluate func(physics.Sample) physics.Verdict
}

// NewMintOrchestrator wires the mint pipeline.
func NewMintOrchestrator(
	ledger Ledger,
	attestor Attestor,
	proofs ProofBundler,
	builder *txbuilder.Builder,
	metrics Metrics,
	logger *zap.Logger,
) (*MintOrchestrator, error) {
	if metrics == nil {
		return nil, errors.New("treasury metrics is required")
	}
	return &MintOrchestrator{
		ledger:   ledger,
		attestor: attestor,
		proofs:   proofs,
		builder:  builder,
		metrics:  metrics,
		logger:   logger.Named("mint"),
		evaluate: physics.Evaluate,
	}, nil
}

// Mint runs the pipeline for one claim. On success the receipt carries
// the new block, the wallet's derived balance, and the new supply.
func (o *MintOrchestrator) Mint(ctx context.Context, req MintRequest) (*MintReceipt, error) {
	started := time.Now()
	outcome := outcomeError
	defer func() {
		o.metrics.ObserveMint(outcome, started)
	}()

	var (
		verdict   physics.Verdict
		amount    decimal.Decimal
		joules    uint64
		bundle    attest.Bundle
		attID     string
		receipt   *MintReceipt
		rejection error
	)

	state := StateValidating
	for {
		switch state {
		case StateValidating:
			verdict = o.evaluate(req.Sample)
			if !verdict.Accepted {
				rejection = fmt.Errorf("%w: %s", ErrValidationRejected, strings.Join(verdict.Reasons, "; "))
				state = StateRejected
				continue
			}
			var err error
			if joules, err = safe.Uint64FromFloat(math.Round(verdict.WorkJoules)); err != nil {
				rejection = fmt.Errorf("%w: %v", ErrValidationRejected, err)
				state = StateRejected
				continue
			}
			amount = decimal.NewFromFloat(verdict.WorkJoules).
				Mul(protocol.AlphaJoulesToVDC).
				Round(protocol.AmountPrecision)
			state = StateAttestationPending

		case StateAttestationPending:
			var err error
			if bundle, err = o.proofs.CreateBundle(req.Wallet, joules, amount); err != nil {
				return nil, fmt.Errorf("create proof bundle: %w", err)
			}
			if attID, err = o.attestor.Stamp(ctx, bundle.ManifestDigest); err != nil {
				return nil, fmt.Errorf("stamp manifest: %w", err)
			}
			if err = o.proofs.WriteAttestationRef(bundle, attID); err != nil {
				return nil, fmt.Errorf("write attestation ref: %w", err)
			}
			verified, err := o.attestor.Verify(ctx, attID)
			if err != nil {
				return nil, fmt.Errorf("verify attestation: %w", err)
			}
			if !verified {
				// The proof bundle already written stays on disk for
				// audit, but no ledger write happens.
				rejection = fmt.Errorf("%w: timestamp %s unverified", ErrAttestationFailed, attID)
				state = StateRejected
				continue
			}
			state = StateCommitting

		case StateCommitting:
			tx := o.builder.BuildMint(req.Wallet, amount, joules, attID, bundle.Name)
			block, err := o.ledger.Commit(ctx, model.Transactions{tx})
			if err != nil {
				return nil, fmt.Errorf("commit mint block: %w", err)
			}
			balance, err := o.ledger.BalanceOf(ctx, req.Wallet)
			if err != nil {
				return nil, fmt.Errorf("derive balance: %w", err)
			}
			receipt = &MintReceipt{
				Block:         block,
				Amount:        tx.Amount,
				Joules:        joules,
				Verdict:       verdict,
				Balance:       balance,
				Supply:        block.Supply,
				AttestationID: attID,
				ProofRef:      bundle.Name,
			}
			state = StateDone

		case StateDone:
			outcome = outcomeMinted
			o.logger.Info("mint committed",
				zap.String("wallet", req.Wallet),
				zap.Uint64("block_index", receipt.Block.Index),
				zap.String("amount", receipt.Amount.String()),
				zap.String("attestation_id", attID),
			)
			return receipt, nil

		case StateRejected:
			outcome = outcomeRejected
			o.logger.Warn("mint rejected",
				zap.String("wallet", req.Wallet),
				zap.Error(rejection),
			)
			return nil, rejection
		}
	}
}
