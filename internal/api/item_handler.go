package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/wtwr-app/wtwr-api/internal/api/shared"
	"github.com/wtwr-app/wtwr-api/internal/domain"
	"github.com/wtwr-app/wtwr-api/internal/platform/logger"
	"github.com/wtwr-app/wtwr-api/internal/store"
)

// ItemHandler handles the clothing item endpoints.
type ItemHandler struct {
	itemStore store.ItemStore
	validator *validator.Validate
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(itemStore store.ItemStore) *ItemHandler {
	return &ItemHandler{
		itemStore: itemStore,
		validator: validator.New(),
	}
}

// ListItems handles GET /items. The listing is public: no auth, no
// pagination, no filtering.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemStore.GetAll(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list items", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// CreateItem handles POST /items. The owner is always the authenticated
// caller; an owner value in the request body is ignored.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := domain.NewClothingItem(req.Name, domain.Weather(req.Weather), req.ImageURL, userID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid data provided")
		return
	}

	if err := h.itemStore.Create(r.Context(), item); err != nil {
		logger.FromContext(r.Context()).Error("failed to create item",
			"error", err, "user_id", userID.Hex())
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// DeleteItem handles DELETE /items/{itemId}. The existence check always
// precedes the ownership check: a missing item answers 404 even when the
// caller could never have owned it, and a non-owner gets 403 with the item
// left untouched.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, itemID, ok := handleUserIDAndPathID(w, r, "itemId")
	if !ok {
		return
	}

	item, err := h.itemStore.GetByID(r.Context(), itemID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContext(r.Context()).Error("failed to fetch item for deletion",
				"error", err, "item_id", itemID.Hex())
		}
		HandleAPIError(w, r, err, "")
		return
	}

	if !item.IsOwnedBy(userID) {
		HandleAPIError(w, r, domain.ErrForbidden, "")
		return
	}

	if err := h.itemStore.Delete(r.Context(), itemID); err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContext(r.Context()).Error("failed to delete item",
				"error", err, "item_id", itemID.Hex())
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Item deleted successfully"})
}

// LikeItem handles PUT /items/{itemId}/likes: an idempotent set-add of the
// caller to the item's likes.
func (h *ItemHandler) LikeItem(w http.ResponseWriter, r *http.Request) {
	userID, itemID, ok := handleUserIDAndPathID(w, r, "itemId")
	if !ok {
		return
	}

	item, err := h.itemStore.AddLike(r.Context(), itemID, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContext(r.Context()).Error("failed to like item",
				"error", err, "item_id", itemID.Hex())
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// DislikeItem handles DELETE /items/{itemId}/likes: an idempotent set-remove
// of the caller from the item's likes. Removing an absent like is a no-op.
func (h *ItemHandler) DislikeItem(w http.ResponseWriter, r *http.Request) {
	userID, itemID, ok := handleUserIDAndPathID(w, r, "itemId")
	if !ok {
		return
	}

	item, err := h.itemStore.RemoveLike(r.Context(), itemID, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContext(r.Context()).Error("failed to dislike item",
				"error", err, "item_id", itemID.Hex())
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}
