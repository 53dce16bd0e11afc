package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wtwr-app/wtwr-api/internal/domain"
	"github.com/wtwr-app/wtwr-api/internal/service/auth"
	"github.com/wtwr-app/wtwr-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"generic duplicate", store.ErrDuplicate, http.StatusConflict},
		{"invalid id", store.ErrInvalidID, http.StatusBadRequest},
		{"invalid domain id", domain.ErrInvalidID, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation failure", domain.ErrValidation, http.StatusBadRequest},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
		{
			"wrapped item not found",
			fmt.Errorf("delete item: %w", store.ErrItemNotFound),
			http.StatusNotFound,
		},
		{
			"wrapped validation error",
			domain.NewValidationError("weather", "must be hot, warm, or cold", domain.ErrValidation),
			http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{"nil error", nil, "An error occurred on the server"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Incorrect email or password"},
		{"invalid token", auth.ErrInvalidToken, "Authorization required"},
		{"expired token", auth.ErrExpiredToken, "Authorization required"},
		{"forbidden", domain.ErrForbidden, "You are not authorized to delete this item"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"item not found", store.ErrItemNotFound, "Item not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"invalid id", store.ErrInvalidID, "Invalid ID format"},
		{"domain invalid id", domain.ErrInvalidID, "Invalid ID format"},
		{"validation failure", domain.ErrValidation, "Invalid data provided"},
		{"unknown error leaks nothing", errors.New("pq: relation does not exist"), "An error occurred on the server"},
		{
			"wrapped duplicate",
			fmt.Errorf("create user: %w", store.ErrEmailExists),
			"Email already exists",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expectedMessage, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		errMsg   string
		expected string
	}{
		{
			"required tag",
			"Key: 'SignupRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
			"Invalid Email: required field",
		},
		{
			"email tag",
			"Key: 'SignupRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag",
			"Invalid Email: invalid email format",
		},
		{
			"oneof tag",
			"Key: 'CreateItemRequest.Weather' Error:Field validation for 'Weather' failed on the 'oneof' tag",
			"Invalid Weather: invalid value",
		},
		{
			"unrecognized error shape",
			"something went wrong",
			"Validation error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, SanitizeValidationError(errors.New(tc.errMsg)))
		})
	}
}
