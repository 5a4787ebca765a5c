package http

import (
	"encoding/json"
	"net/http"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdHandler struct {
	ads repository.AdRepository
}

func NewAdHandler(ads repository.AdRepository) *AdHandler {
	return &AdHandler{ads: ads}
}

type adStatusRequestDTO struct {
	Status domain.AdStatus `json:"status"`
}

func (h *AdHandler) RequestAd(w http.ResponseWriter, r *http.Request) {
	var ad domain.Ad
	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	created, err := h.ads.Insert(r.Context(), &ad)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *AdHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ads, err := h.ads.ListBySeller(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if ads == nil {
		ads = []domain.Ad{}
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	ads, err := h.ads.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if ads == nil {
		ads = []domain.Ad{}
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	ads, err := h.ads.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if ads == nil {
		ads = []domain.Ad{}
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid ad id")
		return
	}

	var req adStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "status is required")
		return
	}

	if err := h.ads.UpdateStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}

func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid ad id")
		return
	}

	if err := h.ads.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}
