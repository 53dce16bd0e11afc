package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wtwr-app/wtwr-api/internal/api"
	apiMiddleware "github.com/wtwr-app/wtwr-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Public routes (signup, signin, item listing) are wired
// before the authenticated group; everything else requires a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.credentials, app.hasher)
	userHandler := api.NewUserHandler(app.userStore)
	itemHandler := api.NewItemHandler(app.itemStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public routes
	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)
	r.Get("/items", itemHandler.ListItems)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/items", itemHandler.CreateItem)
		r.Delete("/items/{itemId}", itemHandler.DeleteItem)
		r.Put("/items/{itemId}/likes", itemHandler.LikeItem)
		r.Delete("/items/{itemId}/likes", itemHandler.DislikeItem)

		r.Get("/users/me", userHandler.GetCurrentUser)
		r.Patch("/users/me", userHandler.UpdateUser)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Unknown routes share the fixed not-found body
	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.NotFoundHandler)

	return r
}
