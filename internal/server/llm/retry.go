package llm

import (
	"context"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/prompt"
	"github.com/sethvargo/go-retry"
)

// RetryPolicy retries Timeout, RateLimited and TransportError failures with
// capped exponential backoff. Other failures return immediately.
type RetryPolicy struct {
	MaxRetries uint64
	Base       time.Duration
	Max        time.Duration
}

func (p RetryPolicy) backoff() retry.Backoff {
	base := p.Base
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	b := retry.NewExponential(base)
	if p.Max > 0 {
		b = retry.WithCappedDuration(p.Max, b)
	}
	return retry.WithMaxRetries(p.MaxRetries, b)
}

// Do runs fn until it succeeds, fails with a non-retryable error or the
// retry budget is spent. It returns the last error and the attempt count.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) (int, error) {
	attempts := 0
	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		attempts++
		err := fn(ctx)
		if err != nil && errs.KindOf(err).Retryable() {
			return retry.RetryableError(err)
		}
		return err
	})
	return attempts, err
}

// Retrying wraps a Client with a policy.
type Retrying struct {
	next   Client
	policy RetryPolicy
	log    logging.Logger
}

func NewRetrying(next Client, policy RetryPolicy, log logging.Logger) *Retrying {
	return &Retrying{next: next, policy: policy, log: log.With("module", "llm")}
}

func (r *Retrying) Invoke(ctx context.Context, p prompt.Bundle, cfg InvokeConfig) (string, error) {
	var out string
	attempts, err := r.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.Invoke(ctx, p, cfg)
		if err != nil && errs.KindOf(err).Retryable() {
			r.log.Warn(ctx, "model invocation failed, will retry", "stage", p.Stage, "kind", errs.KindOf(err), "error", err)
		}
		return err
	})
	if err != nil {
		r.log.Error(ctx, "model invocation failed", "stage", p.Stage, "attempts", attempts, "kind", errs.KindOf(err))
		return "", err
	}
	return out, nil
}
