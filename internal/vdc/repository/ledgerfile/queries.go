package ledgerfile

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
)

// BalanceOf derives a wallet's balance by replaying every transaction
// addressed to it across the full chain. Balances are never stored.
func (r *Repository) BalanceOf(ctx context.Context, wallet string) (decimal.Decimal, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("balance_of", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	var chain []model.Block
	if chain, err = r.readChain(); err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, block := range chain {
		for _, tx := range block.Txs {
			if tx.TxWallet() != wallet {
				continue
			}
			switch tx.Type() {
			case model.TxMint:
				balance = balance.Add(tx.TxAmount())
			case model.TxBurn:
				balance = balance.Sub(tx.TxAmount())
			}
		}
	}
	return balance.Round(protocol.AmountPrecision), nil
}

// CurrentSupply returns the running supply recorded on the latest block.
func (r *Repository) CurrentSupply(ctx context.Context) (decimal.Decimal, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("current_supply", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	var chain []model.Block
	if chain, err = r.readChain(); err != nil {
		return decimal.Zero, err
	}
	return chain[len(chain)-1].Supply, nil
}
