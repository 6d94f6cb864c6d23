package mock

import (
	"context"

	"github.com/fwojciec/bbsdoc"
)

var _ bbsdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of bbsdoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ bbsdoc.Throttler = (*Throttler)(nil)

// Throttler is a mock implementation of bbsdoc.Throttler.
type Throttler struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttler) Wait(ctx context.Context) error {
	return t.WaitFn(ctx)
}
