package dbx

import (
	"context"
	"fmt"
)

// AdvisoryXactLock takes a Postgres advisory lock scoped to the current
// transaction. The lock is released on commit or rollback, so tx must be a
// transactional handle obtained from WithTx.
func AdvisoryXactLock(ctx context.Context, tx DBTX, key string) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("advisory lock %q: %w", key, err)
	}
	return nil
}
