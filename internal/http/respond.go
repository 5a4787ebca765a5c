package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/auth"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/payment"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/service"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondServiceError maps sentinel errors from the core onto HTTP
// statuses. Anything unclassified is an internal failure.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrLineNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Cart item not found!")
	case errors.Is(err, repository.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Order not found")
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrMedicineNotFound),
		errors.Is(err, repository.ErrAdNotFound),
		errors.Is(err, repository.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, repository.ErrLineExists):
		respondError(w, http.StatusBadRequest, "already_in_cart", "This product is already in your cart!")
	case errors.Is(err, repository.ErrOutOfStock):
		respondError(w, http.StatusBadRequest, "out_of_stock", "Stock not available!")
	case errors.Is(err, repository.ErrCannotDecrease):
		respondError(w, http.StatusBadRequest, "invalid_state", "Cannot decrease below 0!")
	case errors.Is(err, service.ErrInvalidAction):
		respondError(w, http.StatusBadRequest, "invalid_action", "Invalid action!")
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "Cart not found!")
	case errors.Is(err, service.ErrStatusRequired):
		respondError(w, http.StatusBadRequest, "status_required", "Status is required")
	case errors.Is(err, payment.ErrProvider):
		respondError(w, http.StatusBadGateway, "payment_provider_error", err.Error())
	case errors.Is(err, auth.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden", "Forbidden Access!")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
