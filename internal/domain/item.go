package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common clothing item validation errors.
var (
	ErrInvalidWeather = errors.New("weather must be one of: hot, warm, cold")
	ErrEmptyImageURL  = errors.New("image URL cannot be empty")
	ErrEmptyOwner     = errors.New("owner cannot be empty")
	ErrItemNameLength = errors.New("item name must be between 2 and 30 characters")
)

// Weather is the weather category a clothing item is suited for.
type Weather string

// Valid weather categories.
const (
	WeatherHot  Weather = "hot"
	WeatherWarm Weather = "warm"
	WeatherCold Weather = "cold"
)

// Valid reports whether w is one of the enumerated weather categories.
func (w Weather) Valid() bool {
	switch w {
	case WeatherHot, WeatherWarm, WeatherCold:
		return true
	}
	return false
}

// ClothingItem represents a clothing item owned by a user. The owner is set
// once at creation and never changes; likes is a set of user IDs, each
// present at most once.
type ClothingItem struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string               `bson:"name"          json:"name"`
	Weather   Weather              `bson:"weather"       json:"weather"`
	ImageURL  string               `bson:"imageUrl"      json:"imageUrl"`
	Owner     primitive.ObjectID   `bson:"owner"         json:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"         json:"likes"`
	CreatedAt time.Time            `bson:"createdAt"     json:"createdAt"`
}

// NewClothingItem creates a new ClothingItem owned by the given user.
// The likes set starts empty and the creation timestamp is set to now.
// Returns an error if validation fails.
func NewClothingItem(name string, weather Weather, imageURL string, owner primitive.ObjectID) (*ClothingItem, error) {
	item := &ClothingItem{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Weather:   weather,
		ImageURL:  imageURL,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the ClothingItem has valid data.
// Returns an error if any field fails validation.
func (i *ClothingItem) Validate() error {
	if nameLen := len([]rune(i.Name)); nameLen < 2 || nameLen > 30 {
		return ErrItemNameLength
	}
	if !i.Weather.Valid() {
		return ErrInvalidWeather
	}
	if i.ImageURL == "" {
		return ErrEmptyImageURL
	}
	if i.Owner.IsZero() {
		return ErrEmptyOwner
	}
	return nil
}

// IsOwnedBy reports whether the item belongs to the given user.
func (i *ClothingItem) IsOwnedBy(userID primitive.ObjectID) bool {
	return i.Owner == userID
}

// IsLikedBy reports whether the given user is in the item's likes set.
func (i *ClothingItem) IsLikedBy(userID primitive.ObjectID) bool {
	for _, id := range i.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
