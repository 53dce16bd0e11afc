package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		userName    string
		avatar      string
		email       string
		hashed      string
		expectedErr error
	}{
		{
			name:     "valid user",
			userName: "Ann",
			avatar:   "http://example.com/a.png",
			email:    "a@x.com",
			hashed:   "$2a$10$somethinghashed",
		},
		{
			name:     "defaults applied for empty name and avatar",
			userName: "",
			avatar:   "",
			email:    "a@x.com",
			hashed:   "$2a$10$somethinghashed",
		},
		{
			name:        "empty email",
			userName:    "Ann",
			email:       "",
			hashed:      "$2a$10$somethinghashed",
			expectedErr: ErrEmptyEmail,
		},
		{
			name:        "malformed email",
			userName:    "Ann",
			email:       "not-an-email",
			hashed:      "$2a$10$somethinghashed",
			expectedErr: ErrInvalidEmail,
		},
		{
			name:        "email missing domain dot",
			userName:    "Ann",
			email:       "a@localhost",
			hashed:      "$2a$10$somethinghashed",
			expectedErr: ErrInvalidEmail,
		},
		{
			name:        "name too short",
			userName:    "A",
			email:       "a@x.com",
			hashed:      "$2a$10$somethinghashed",
			expectedErr: ErrNameLength,
		},
		{
			name:        "name too long",
			userName:    "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", // 31 chars
			email:       "a@x.com",
			hashed:      "$2a$10$somethinghashed",
			expectedErr: ErrNameLength,
		},
		{
			name:        "missing hashed password",
			userName:    "Ann",
			email:       "a@x.com",
			hashed:      "",
			expectedErr: ErrEmptyHashedPassword,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tc.userName, tc.avatar, tc.email, tc.hashed)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.False(t, user.ID.IsZero())
			assert.Equal(t, tc.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestNewUserDefaults(t *testing.T) {
	t.Parallel()

	user, err := NewUser("", "", "a@x.com", "hashhashhash")
	require.NoError(t, err)
	assert.Equal(t, DefaultUserName, user.Name)
	assert.Equal(t, DefaultUserAvatar, user.Avatar)
}
