package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wtwr-app/wtwr-api/internal/store"
)

// translateError maps driver-level failures to the store's sentinel errors.
// notFound is the entity-specific not-found sentinel to use for
// ErrNoDocuments; everything else is wrapped so the raw driver error stays
// available for logging while errors.Is keeps working against the sentinels.
func translateError(err error, entity, operation string, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case mongo.IsDuplicateKeyError(err):
		if entity == "user" {
			return store.ErrEmailExists
		}
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	default:
		return store.NewStoreError(entity, operation, "database operation failed", err)
	}
}
