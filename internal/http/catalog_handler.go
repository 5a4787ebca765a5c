package http

import (
	"encoding/json"
	"net/http"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogHandler struct {
	medicines  repository.MedicineRepository
	categories repository.CategoryRepository
}

func NewCatalogHandler(medicines repository.MedicineRepository, categories repository.CategoryRepository) *CatalogHandler {
	return &CatalogHandler{medicines: medicines, categories: categories}
}

func (h *CatalogHandler) AddMedicine(w http.ResponseWriter, r *http.Request) {
	var med domain.Medicine
	if err := json.NewDecoder(r.Body).Decode(&med); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	created, err := h.medicines.Insert(r.Context(), &med)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	meds, err := h.medicines.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if meds == nil {
		meds = []domain.Medicine{}
	}
	respondJSON(w, http.StatusOK, meds)
}

func (h *CatalogHandler) ListMedicinesBySeller(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	meds, err := h.medicines.ListBySeller(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if meds == nil {
		meds = []domain.Medicine{}
	}
	respondJSON(w, http.StatusOK, meds)
}

func (h *CatalogHandler) ListMedicinesByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	meds, err := h.medicines.ListByCategory(r.Context(), category)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if meds == nil {
		meds = []domain.Medicine{}
	}
	respondJSON(w, http.StatusOK, meds)
}

func (h *CatalogHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid medicine id")
		return
	}

	if err := h.medicines.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

func (h *CatalogHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	created, err := h.categories.Insert(r.Context(), &category)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) ListCategoriesByAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	categories, err := h.categories.ListByAdmin(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid category id")
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}
