// Package txbuilder constructs well-formed ledger transactions from
// validated inputs.
package txbuilder

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vdcprotocol/vdc-backend/internal/clock"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
)

// Builder stamps transactions with its clock.
type Builder struct {
	now clock.NowFunc
}

// New builds a Builder. A nil now falls back to time.Now.
func New(now clock.NowFunc) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// BuildMint constructs a MINT carrying the references produced by the
// attestation flow. The amount is rounded to ledger precision.
func (b *Builder) BuildMint(wallet string, amount decimal.Decimal, joules uint64, attestationRef, proofRef string) model.Mint {
	return model.Mint{
		Wallet:    wallet,
		Amount:    amount.Round(protocol.AmountPrecision),
		Asset:     protocol.Asset,
		Joules:    joules,
		Timestamp: b.now().Unix(),
		Proof: model.ValidationProof{
			Protocol:       protocol.ProofProtocol,
			AttestationRef: attestationRef,
			ProofRef:       proofRef,
		},
	}
}

// BuildBurn constructs a BURN owing the commodity basket for amount, with
// a shipping reference derived from the wallet and the current time. The
// basket rates are protocol constants.
func (b *Builder) BuildBurn(wallet string, amount decimal.Decimal) model.Burn {
	now := b.now()
	amount = amount.Round(protocol.AmountPrecision)

	return model.Burn{
		Wallet: wallet,
		Amount: amount,
		Asset:  protocol.Asset,
		Basket: model.Basket{
			GoldGrams:   amount.Mul(protocol.GoldGramsPerVDC).Round(protocol.AmountPrecision),
			SilkGrams:   amount.Mul(protocol.SilkGramsPerVDC).Round(protocol.AmountPrecision),
			TencelGrams: amount.Mul(protocol.TencelGramsPerVDC).Round(protocol.AmountPrecision),
		},
		ShippingRef: shippingRef(wallet, now),
		Timestamp:   now.Unix(),
	}
}

func shippingRef(wallet string, at time.Time) string {
	short := wallet
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("SHIP-%s-%d", short, at.Unix())
}
