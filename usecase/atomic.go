package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// runAtomic executes fn inside a MongoDB transaction so multi-document
// pipelines (rating + aggregates + reputation, or cascade + delete +
// reputation) commit or roll back together. Transient conflicts are
// retried by the driver; a conflict that survives retrying comes back as
// ErrConflict. When transactions are disabled (standalone deployments)
// fn runs directly and single-document atomicity still holds.
func runAtomic(ctx context.Context, client *mongo.Client, enabled bool, fn func(ctx context.Context) error) error {
	if !enabled || client == nil {
		return fn(ctx)
	}

	session, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil {
		if cmdErr, ok := err.(mongo.CommandError); ok && cmdErr.HasErrorLabel("TransientTransactionError") {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return err
	}
	return nil
}
