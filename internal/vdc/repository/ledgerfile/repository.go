// Package ledgerfile persists the VDC chain as a single JSON document,
// rewritten wholesale and atomically on every commit.
package ledgerfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/clock"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/model"
	"github.com/vdcprotocol/vdc-backend/pkg/atomicfile"
)

// ErrCorrupt reports that the stored chain cannot be parsed. There is no
// partial recovery; callers are expected to stop serving the ledger.
var ErrCorrupt = errors.New("ledger corrupt")

// Metrics records the duration and status of repository operations.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Repository owns one ledger file. All mutation goes through Commit,
// which is a read-modify-write over the whole file and therefore held
// under a process-local lock for its full duration.
type Repository struct {
	path    string
	mu      sync.Mutex
	now     clock.NowFunc
	metrics Metrics
	logger  *zap.Logger
}

// New builds a Repository over the ledger file at path.
func New(path string, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if metrics == nil {
		return nil, errors.New("ledger repository metrics is required")
	}
	return &Repository{
		path:    path,
		now:     time.Now,
		metrics: metrics,
		logger:  logger.Named("ledgerfile"),
	}, nil
}

// readChain loads and parses the full chain without taking the lock.
func (r *Repository) readChain() ([]model.Block, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var chain []model.Block
	if err := json.Unmarshal(raw, &chain); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: chain has no genesis block", ErrCorrupt)
	}
	return chain, nil
}

func (r *Repository) writeChain(chain []model.Block) error {
	raw, err := json.MarshalIndent(chain, "", "  ")
	if err != nil {
		return fmt.Errorf("encode chain: %w", err)
	}
	if err := atomicfile.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write chain: %w", err)
	}
	return nil
}
