package domain

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common user validation errors.
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrNameLength          = errors.New("name must be between 2 and 30 characters")
)

// Defaults applied when a user signs up without a name or avatar.
const (
	DefaultUserName   = "Elise Bouer"
	DefaultUserAvatar = "https://practicum-content.s3.us-west-1.amazonaws.com/resources/moved_avatar_1604080799.jpg"
)

// User represents a registered user of the WTWR application.
// The password is stored only as a bcrypt hash and is never serialized
// into API responses.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name"          json:"name"`
	Avatar         string             `bson:"avatar"        json:"avatar"`
	Email          string             `bson:"email"         json:"email"`
	HashedPassword string             `bson:"password"      json:"-"`
	CreatedAt      time.Time          `bson:"createdAt"     json:"createdAt"`
}

// NewUser creates a new User with the given profile fields and an already
// hashed password. Name and avatar fall back to their defaults when empty.
// Returns an error if validation fails.
func NewUser(name, avatar, email, hashedPassword string) (*User, error) {
	if name == "" {
		name = DefaultUserName
	}
	if avatar == "" {
		avatar = DefaultUserAvatar
	}

	user := &User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Avatar:         avatar,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if nameLen := len([]rune(u.Name)); nameLen < 2 || nameLen > 30 {
		return ErrNameLength
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// validEmailFormat performs basic validation of email shape: a non-empty
// local part, an @, and a domain containing an interior dot. Request-level
// validation applies the stricter validator tag; this is a last line of
// defense for users constructed outside the API layer.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
