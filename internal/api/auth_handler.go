package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/wtwr-app/wtwr-api/internal/api/shared"
	"github.com/wtwr-app/wtwr-api/internal/domain"
	"github.com/wtwr-app/wtwr-api/internal/platform/logger"
	"github.com/wtwr-app/wtwr-api/internal/service/auth"
	"github.com/wtwr-app/wtwr-api/internal/store"
)

// AuthHandler handles the public authentication endpoints: signup and signin.
type AuthHandler struct {
	userStore   store.UserStore
	jwtService  auth.JWTService
	credentials *auth.CredentialService
	hasher      auth.PasswordHasher
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	credentials *auth.CredentialService,
	hasher auth.PasswordHasher,
) *AuthHandler {
	return &AuthHandler{
		userStore:   userStore,
		jwtService:  jwtService,
		credentials: credentials,
		hasher:      hasher,
		validator:   validator.New(),
	}
}

// Signup handles POST /signup. On success the created user is returned with
// a 201 status; the password never appears in the response in any form.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := domain.NewUser(req.Name, req.Avatar, req.Email, hashed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid data provided")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if !errors.Is(err, store.ErrEmailExists) {
			log.Error("failed to create user", "error", err)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Signin handles POST /signin. On success the response carries a bearer
// token; every credential mismatch answers with the same 401 message.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SigninRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.credentials.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error("failed to authenticate user", "error", err)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID.Hex())
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
