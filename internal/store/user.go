package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wtwr-app/wtwr-api/internal/domain"
)

// UserUpdate carries the mutable profile fields for a partial user update.
// A nil field is left unchanged.
type UserUpdate struct {
	Name   *string
	Avatar *string
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	// Returns ErrInvalidEntity wrapping the validation failure if the user
	// data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies a partial update to the user's mutable profile fields
	// and returns the updated user.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*domain.User, error)
}
