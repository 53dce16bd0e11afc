package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wtwr-app/wtwr-api/internal/api/shared"
	"github.com/wtwr-app/wtwr-api/internal/domain"
	"github.com/wtwr-app/wtwr-api/internal/service/auth"
	"github.com/wtwr-app/wtwr-api/internal/store"
)

// mockUserStore is a function-field mock of store.UserStore.
type mockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) (*domain.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) Update(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil, store.ErrUserNotFound
}

// mockItemStore is a function-field mock of store.ItemStore.
type mockItemStore struct {
	CreateFn     func(ctx context.Context, item *domain.ClothingItem) error
	GetAllFn     func(ctx context.Context) ([]domain.ClothingItem, error)
	GetByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.ClothingItem, error)
	DeleteFn     func(ctx context.Context, id primitive.ObjectID) error
	AddLikeFn    func(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error)
	RemoveLikeFn func(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error)
}

func (m *mockItemStore) Create(ctx context.Context, item *domain.ClothingItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}
	return nil
}

func (m *mockItemStore) GetAll(ctx context.Context) ([]domain.ClothingItem, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}

func (m *mockItemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ClothingItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrItemNotFound
}

func (m *mockItemStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockItemStore) AddLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error) {
	if m.AddLikeFn != nil {
		return m.AddLikeFn(ctx, id, userID)
	}
	return nil, store.ErrItemNotFound
}

func (m *mockItemStore) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.ClothingItem, error) {
	if m.RemoveLikeFn != nil {
		return m.RemoveLikeFn(ctx, id, userID)
	}
	return nil, store.ErrItemNotFound
}

// mockJWTService is a function-field mock of auth.JWTService.
type mockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID primitive.ObjectID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID primitive.ObjectID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return "mock-token", nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}

// withUserID returns a copy of the request with the user ID in its context,
// the way the auth middleware would have set it.
func withUserID(r *http.Request, userID primitive.ObjectID) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

// withPathParam returns a copy of the request with a chi URL parameter set,
// as the router would for a matched route pattern.
func withPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
