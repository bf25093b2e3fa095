package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"estateFront/internal/backend"
	"estateFront/internal/filters"
	"estateFront/internal/models"
	"estateFront/internal/services"
)

type PropertyHandler struct {
	Search   *services.SearchService
	Backend  *backend.Client
	Sessions *services.SessionService
	Validate *validator.Validate
}

// searchResponse carries the results plus the canonical URL re-encoded from
// the effective filter state, so the page address stays shareable.
type searchResponse struct {
	models.SearchResult
	Meaningful bool   `json:"meaningful"`
	Pathname   string `json:"pathname"`
	Search     string `json:"search"`
}

func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	f := filters.Decode(getParam(r, "city"), r.URL.Query())

	res, err := h.Search.Search(r.Context(), f)
	if err != nil {
		if errors.Is(err, models.ErrStaleSearch) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		backendError(w, err)
		return
	}
	if res.Listings == nil {
		res.Listings = []models.Listing{}
	}

	pathname, rawQuery := filters.Encode(f)
	writeJSON(w, http.StatusOK, searchResponse{
		SearchResult: res,
		Meaningful:   f.IsMeaningful(),
		Pathname:     pathname,
		Search:       rawQuery,
	})
}

func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(getParam(r, "id"))
	if id == "" {
		jsonError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	listing, err := h.Backend.GetProperty(r.Context(), id)
	if err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *PropertyHandler) RateProperty(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(getParam(r, "id"))
	if id == "" {
		jsonError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var body struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if body.Rating < 1 || body.Rating > 5 {
		jsonError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	if err := h.Backend.RateProperty(authContext(r, h.Sessions), id, body.Rating); err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Rating submitted"})
}

func (h *PropertyHandler) SubmitPropertyQuery(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(getParam(r, "id"))
	if id == "" {
		jsonError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var q models.PropertyQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	q.PropertyID = id
	if err := h.Validate.Struct(q); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	msg, err := h.Backend.SubmitQuery(authContext(r, h.Sessions), q)
	if err != nil {
		backendError(w, err)
		return
	}
	if msg == "" {
		msg = "Query submitted"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}
