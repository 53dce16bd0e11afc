package api

// Common request/response structures

// SignupRequest defines the payload for the user registration endpoint.
// Name and avatar are optional; the domain defaults apply when absent.
type SignupRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar"   validate:"omitempty,url"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest defines the payload for the user login endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest defines the payload for the profile update endpoint.
// Both fields are optional; a present field must still validate.
type UpdateUserRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=2,max=30"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}

// CreateItemRequest defines the payload for the item creation endpoint.
// The owner is never part of the payload: it is always the authenticated
// caller.
type CreateItemRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=30"`
	Weather  string `json:"weather"  validate:"required,oneof=hot warm cold"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}
