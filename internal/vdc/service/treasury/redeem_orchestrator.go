package treasury

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/txbuilder"
)

// RedeemReceipt reports a completed redemption.
type RedeemReceipt struct {
	Block       model.Block
	Amount      decimal.Decimal
	Basket      model.Basket
	ShippingRef string
	Balance     decimal.Decimal
	Supply      decimal.Decimal
}

// RedeemOrchestrator burns balance in exchange for the commodity basket.
type RedeemOrchestrator struct {
	ledger  Ledger
	builder *txbuilder.Builder
	metrics Metrics
	logger  *zap.Logger
}

// NewRedeemOrchestrator wires the redeem pipeline.
func NewRedeemOrchestrator(ledger Ledger, builder *txbuilder.Builder, metrics Metrics, logger *zap.Logger) (*RedeemOrchestrator, error) {
	if metrics == nil {
		return nil, errors.New("treasury metrics is required")
	}
	return &RedeemOrchestrator{
		ledger:  ledger,
		builder: builder,
		metrics: metrics,
		logger:  logger.Named("redeem"),
	}, nil
}

// Redeem checks the wallet's derived balance and, if sufficient, commits
// a BURN for amount. Insufficient balance leaves the ledger untouched.
func (o *RedeemOrchestrator) Redeem(ctx context.Context, wallet string, amount decimal.Decimal) (*RedeemReceipt, error) {
	started := time.Now()
	outcome := outcomeError
	defer func() {
		o.metrics.ObserveRedeem(outcome, started)
	}()

	amount = amount.Round(protocol.AmountPrecision)
	if amount.Sign() <= 0 {
		outcome = outcomeRejected
		return nil, fmt.Errorf("%w: redeem amount must be positive, got %s", ErrInvalidAmount, amount)
	}

	balance, err := o.ledger.BalanceOf(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("derive balance: %w", err)
	}
	if balance.LessThan(amount) {
		outcome = outcomeRejected
		o.logger.Warn("redeem rejected",
			zap.String("wallet", wallet),
			zap.String("balance", balance.String()),
			zap.String("requested", amount.String()),
		)
		return nil, fmt.Errorf("%w: have %s, want %s", ErrInsufficientBalance, balance, amount)
	}

	tx := o.builder.BuildBurn(wallet, amount)
	block, err := o.ledger.Commit(ctx, model.Transactions{tx})
	if err != nil {
		return nil, fmt.Errorf("commit burn block: %w", err)
	}

	newBalance, err := o.ledger.BalanceOf(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("derive balance: %w", err)
	}

	outcome = outcomeRedeemed
	o.logger.Info("redeem committed",
		zap.String("wallet", wallet),
		zap.Uint64("block_index", block.Index),
		zap.String("amount", tx.Amount.String()),
		zap.String("shipping_ref", tx.ShippingRef),
	)

	return &RedeemReceipt{
		Block:       block,
		Amount:      tx.Amount,
		Basket:      tx.Basket,
		ShippingRef: tx.ShippingRef,
		Balance:     newBalance,
		Supply:      block.Supply,
	}, nil
}
