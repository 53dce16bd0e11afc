package auth

import (
	"context"

	"github.com/wtwr-app/wtwr-api/internal/domain"
	"github.com/wtwr-app/wtwr-api/internal/store"
)

// dummyHash is a bcrypt hash of a throwaway value, compared against when the
// email is unknown so both failure paths cost roughly the same amount of time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// CredentialService verifies email/password pairs against the user store.
type CredentialService struct {
	userStore store.UserStore
	verifier  PasswordVerifier
}

// NewCredentialService creates a new CredentialService with the given dependencies.
func NewCredentialService(userStore store.UserStore, verifier PasswordVerifier) *CredentialService {
	return &CredentialService{
		userStore: userStore,
		verifier:  verifier,
	}
}

// Authenticate looks up the user by email and compares the password against
// the stored hash. Both an unknown email and a wrong password yield the same
// ErrInvalidCredentials; any other store failure propagates unchanged.
func (s *CredentialService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Burn a comparison so the unknown-email path is not
			// observably faster than a password mismatch.
			_ = s.verifier.Compare(dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
