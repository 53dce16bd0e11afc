package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wtwr-app/wtwr-api/internal/domain"
	"github.com/wtwr-app/wtwr-api/internal/store"
)

// MongoUserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type MongoUserStore struct {
	collection *mongo.Collection
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface. It accepts a database handle that should be initialized and
// managed by the caller.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{
		collection: db.Collection(collectionUsers),
	}
}

// EnsureIndexes creates the unique index on email that backs the
// one-email-per-user invariant.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

// Create implements store.UserStore.Create
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return translateError(err, "user", "create", store.ErrUserNotFound)
	}
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, translateError(err, "user", "get", store.ErrUserNotFound)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, translateError(err, "user", "get", store.ErrUserNotFound)
	}
	return &user, nil
}

// Update implements store.UserStore.Update. Only the fields set in the
// update are touched; the filter-then-return round trip is a single
// FindOneAndUpdate so concurrent updates cannot interleave.
func (s *MongoUserStore) Update(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) (*domain.User, error) {
	set := bson.M{}
	if update.Name != nil {
		if nameLen := len([]rune(*update.Name)); nameLen < 2 || nameLen > 30 {
			return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrNameLength)
		}
		set["name"] = *update.Name
	}
	if update.Avatar != nil {
		set["avatar"] = *update.Avatar
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		return nil, translateError(err, "user", "update", store.ErrUserNotFound)
	}
	return &user, nil
}
