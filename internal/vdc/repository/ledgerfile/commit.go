package ledgerfile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/hashchain"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
)

// Commit appends a block carrying txs and atomically replaces the ledger
// file with the extended chain. The lock is held across load, build, and
// write: two racing commits would otherwise silently drop a block.
func (r *Repository) Commit(ctx context.Context, txs model.Transactions) (model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("commit", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return model.Block{}, err
	}

	// A nil batch would canonicalize as JSON null but reload as an empty
	// slice, so the stored hash could never be recomputed.
	if txs == nil {
		txs = model.Transactions{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var chain []model.Block
	if chain, err = r.readChain(); err != nil {
		return model.Block{}, err
	}
	prev := chain[len(chain)-1]

	supply := prev.Supply
	for _, tx := range txs {
		switch tx.Type() {
		case model.TxMint:
			supply = supply.Add(tx.TxAmount())
		case model.TxBurn:
			supply = supply.Sub(tx.TxAmount())
		}
	}

	draft := model.BlockDraft{
		Index:     prev.Index + 1,
		Timestamp: r.now().Unix(),
		Txs:       txs,
		Supply:    supply.Round(protocol.AmountPrecision),
		PrevHash:  prev.Hash,
	}

	var hash string
	if hash, err = hashchain.Hash(draft); err != nil {
		err = fmt.Errorf("hash block: %w", err)
		return model.Block{}, err
	}

	block := draft.Seal(hash)
	if err = r.writeChain(append(chain, block)); err != nil {
		return model.Block{}, err
	}

	r.logger.Info("block committed",
		zap.Uint64("index", block.Index),
		zap.Int("tx_count", len(txs)),
		zap.String("supply", block.Supply.String()),
	)
	return block, nil
}
