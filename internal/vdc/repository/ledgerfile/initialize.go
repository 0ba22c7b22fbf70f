package ledgerfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
)

// Initialize creates the ledger file containing only the genesis block.
// Calling it against an existing ledger is a no-op.
func (r *Repository) Initialize(ctx context.Context) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("initialize", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, statErr := os.Stat(r.path); statErr == nil {
		return nil
	} else if !errors.Is(statErr, os.ErrNotExist) {
		err = fmt.Errorf("stat ledger: %w", statErr)
		return err
	}

	if err = r.writeChain([]model.Block{model.Genesis()}); err != nil {
		return err
	}

	r.logger.Info("ledger initialized", zap.String("path", r.path))
	return nil
}
