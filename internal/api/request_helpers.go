package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wtwr-app/wtwr-api/internal/api/shared"
	"github.com/wtwr-app/wtwr-api/internal/domain"
	"github.com/wtwr-app/wtwr-api/internal/platform/logger"
)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The user ID is placed in the context by the authentication
// middleware; a missing or zero ID means the middleware did not run.
func getUserIDFromContext(r *http.Request) (primitive.ObjectID, bool) {
	return shared.GetUserID(r.Context())
}

// getPathObjectID extracts a document ID from the URL path parameters.
// A missing parameter or one that is not a well-formed ObjectID hex string
// maps to the bad-request side of the taxonomy, never a 500.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := primitive.ObjectIDFromHex(pathParam)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handleUserIDAndPathID is a composite helper that extracts both the user ID
// from context and a document ID from the path parameters. It writes an
// error response if either extraction fails.
func handleUserIDAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (userID, pathID primitive.ObjectID, ok bool) {
	log := logger.FromContext(r.Context())

	userID, found := getUserIDFromContext(r)
	if !found {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	pathID, err := getPathObjectID(r, paramName)
	if err != nil {
		log.Warn("invalid path parameter",
			"param_name", paramName,
			"value", chi.URLParam(r, paramName))
		HandleAPIError(w, r, err, "")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	return userID, pathID, true
}
