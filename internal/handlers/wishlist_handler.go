package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"estateFront/internal/models"
	"estateFront/internal/services"
)

type WishlistHandler struct {
	Service *services.WishlistService
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items := h.Service.Items(r.Context(), visitorID(r))
	if items == nil {
		items = []models.WishlistItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var item models.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if strings.TrimSpace(item.ID) == "" {
		jsonError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	items, err := h.Service.Add(r.Context(), visitorID(r), item)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Failed to save wishlist")
		return
	}
	writeJSON(w, http.StatusCreated, items)
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(getParam(r, "id"))
	if id == "" {
		jsonError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	items, err := h.Service.Remove(r.Context(), visitorID(r), id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Failed to save wishlist")
		return
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *WishlistHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var item models.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if strings.TrimSpace(item.ID) == "" {
		jsonError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	items, added, err := h.Service.Toggle(r.Context(), visitorID(r), item)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Failed to save wishlist")
		return
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "added": added})
}

func (h *WishlistHandler) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(getParam(r, "id"))
	saved := id != "" && h.Service.Has(r.Context(), visitorID(r), id)
	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(r.Context(), visitorID(r)); err != nil {
		jsonError(w, http.StatusInternalServerError, "Failed to clear wishlist")
		return
	}
	writeJSON(w, http.StatusOK, []models.WishlistItem{})
}
