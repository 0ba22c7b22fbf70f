package ledgerfile

import (
	"context"
	"time"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
)

// Load reads and parses the full chain. A ledger that fails to parse is
// reported as ErrCorrupt.
func (r *Repository) Load(ctx context.Context) ([]model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var chain []model.Block
	chain, err = r.readChain()
	return chain, err
}
