package attest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/clock"
)

const (
	attestationIDPrefix = "BTC-OTS-"

	// digestPrefixLen is how much of the manifest digest the attestation
	// id embeds.
	digestPrefixLen = 16

	// Calendar servers throttle aggressively; one stamp per second keeps
	// the client well under their limits.
	stampsPerSecond          = 1
	defaultConfirmationWait = 50 * time.Millisecond
)

// OTS is a stand-in for an OpenTimestamps calendar client. It derives a
// bitcoin-txid-shaped attestation id from the manifest digest and reports
// every stamp as confirmed, while pacing calls the way a real calendar
// client has to. Swapping in a network-backed implementation changes
// nothing upstream: orchestrators only see the stamp/verify pair.
type OTS struct {
	rl               ratelimit.Limiter
	confirmationWait time.Duration
	logger           *zap.Logger
}

// NewOTS builds the calendar client stand-in.
func NewOTS(logger *zap.Logger) *OTS {
	return &OTS{
		rl:               ratelimit.New(stampsPerSecond),
		confirmationWait: defaultConfirmationWait,
		logger:           logger.Named("ots"),
	}
}

// Stamp submits the manifest digest for timestamping and returns the
// attestation id.
func (o *OTS) Stamp(ctx context.Context, manifestDigest string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(manifestDigest) < digestPrefixLen {
		return "", fmt.Errorf("manifest digest too short: %q", manifestDigest)
	}

	o.rl.Take()
	id := attestationIDPrefix + manifestDigest[:digestPrefixLen]
	o.logger.Info("manifest stamped", zap.String("attestation_id", id))
	return id, nil
}

// Verify waits out the confirmation window and reports whether the stamp
// is confirmed. Malformed ids are unverified, not errors.
func (o *OTS) Verify(ctx context.Context, attestationID string) (bool, error) {
	if !strings.HasPrefix(attestationID, attestationIDPrefix) {
		return false, nil
	}
	if err := clock.Sleep(ctx, o.confirmationWait); err != nil {
		return false, err
	}
	return true, nil
}
