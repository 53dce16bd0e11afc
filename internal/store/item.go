package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wtwr-app/wtwr-api/internal/domain"
)

// ItemStore defines the interface for clothing item persistence.
//
// AddLike and RemoveLike are atomic single-document set mutations: the
// implementation must guarantee that a user ID appears in an item's likes
// at most once, and that removing an absent like is a no-op rather than an
// error.
type ItemStore interface {
	// Create saves a new clothing item to the store.
	// Returns ErrInvalidEntity wrapping the validation failure if the item
	// data is invalid.
	Create(ctx context.Context, item *domain.ClothingItem) error

	// GetAll retrieves every clothing item, newest first.
	GetAll(ctx context.Context) ([]domain.ClothingItem, error)

	// GetByID retrieves a clothing item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ClothingItem, error)

	// Delete removes a clothing item from the store by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	// The caller is responsible for the ownership check; Delete itself
	// enforces nothing beyond existence.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddLike adds the user to the item's likes set and returns the updated
	// item. Adding an already present like leaves the set unchanged.
	// Returns ErrItemNotFound if the item does not exist.
	AddLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error)

	// RemoveLike removes the user from the item's likes set and returns the
	// updated item. Removing an absent like is a no-op.
	// Returns ErrItemNotFound if the item does not exist.
	RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error)
}
