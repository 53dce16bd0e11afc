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

// MongoItemStore implements the store.ItemStore interface using a MongoDB
// collection as the storage backend. Like/unlike are expressed as
// $addToSet/$pull so set semantics and idempotence come from the store's
// per-document atomicity rather than in-process locking.
type MongoItemStore struct {
	collection *mongo.Collection
}

// Ensure MongoItemStore implements store.ItemStore interface
var _ store.ItemStore = (*MongoItemStore)(nil)

// NewMongoItemStore creates a new MongoDB implementation of the ItemStore
// interface.
func NewMongoItemStore(db *mongo.Database) *MongoItemStore {
	return &MongoItemStore{
		collection: db.Collection(collectionItems),
	}
}

// EnsureIndexes creates the owner index used by ownership lookups.
func (s *MongoItemStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create item indexes: %w", err)
	}
	return nil
}

// Create implements store.ItemStore.Create
func (s *MongoItemStore) Create(ctx context.Context, item *domain.ClothingItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return translateError(err, "item", "create", store.ErrItemNotFound)
	}
	return nil
}

// GetAll implements store.ItemStore.GetAll
func (s *MongoItemStore) GetAll(ctx context.Context) ([]domain.ClothingItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateError(err, "item", "list", store.ErrItemNotFound)
	}
	defer cursor.Close(ctx)

	items := []domain.ClothingItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, translateError(err, "item", "list", store.ErrItemNotFound)
	}
	return items, nil
}

// GetByID implements store.ItemStore.GetByID
func (s *MongoItemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ClothingItem, error) {
	var item domain.ClothingItem
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, translateError(err, "item", "get", store.ErrItemNotFound)
	}
	return &item, nil
}

// Delete implements store.ItemStore.Delete
func (s *MongoItemStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateError(err, "item", "delete", store.ErrItemNotFound)
	}
	if res.DeletedCount == 0 {
		return store.ErrItemNotFound
	}
	return nil
}

// AddLike implements store.ItemStore.AddLike
func (s *MongoItemStore) AddLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error) {
	return s.updateLikes(ctx, id, bson.M{"$addToSet": bson.M{"likes": userID}})
}

// RemoveLike implements store.ItemStore.RemoveLike
func (s *MongoItemStore) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error) {
	return s.updateLikes(ctx, id, bson.M{"$pull": bson.M{"likes": userID}})
}

// updateLikes applies an atomic likes-set mutation and returns the item as
// it stands after the update.
func (s *MongoItemStore) updateLikes(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.ClothingItem, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item domain.ClothingItem
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&item)
	if err != nil {
		return nil, translateError(err, "item", "update likes", store.ErrItemNotFound)
	}
	return &item, nil
}
