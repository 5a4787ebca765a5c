package http

import (
	"encoding/json"
	"net/http"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/service"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type adjustRequestDTO struct {
	Action domain.AdjustAction `json:"action"`
}

func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var line domain.CartLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if line.CartID == "" || line.BuyerEmail == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "cartId and buyerEmail are required")
		return
	}

	added, err := h.carts.AddLine(r.Context(), &line)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

func (h *CartHandler) ListLines(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	lines, err := h.carts.ListLines(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	respondJSON(w, http.StatusOK, lines)
}

func (h *CartHandler) AdjustLine(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid cart line id")
		return
	}

	var req adjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	line, errAdjust := h.carts.AdjustLine(r.Context(), id, req.Action)
	if errAdjust != nil {
		respondServiceError(w, errAdjust)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid cart line id")
		return
	}

	if err := h.carts.RemoveLine(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

func (h *CartHandler) ClearLines(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	deleted, err := h.carts.ClearLines(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
