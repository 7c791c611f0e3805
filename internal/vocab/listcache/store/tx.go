package store

import (
	"context"
	"time"

	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/platform/tx"
)

const defaultTxTimeout = 5 * time.Second

// RunInTx runs fn with a transaction in its context; every statement the
// store issues through that context commits or rolls back together.
func (p *Postgres) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTxTimeout)
		defer cancel()
	}

	t, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Rollback()
	}()

	if err := fn(tx.WithTx(ctx, t)); err != nil {
		return err
	}
	return t.Commit()
}
