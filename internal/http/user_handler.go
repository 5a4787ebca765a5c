package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/auth"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewUserHandler(users repository.UserRepository, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

type tokenRequestDTO struct {
	Email string `json:"email"`
}

type roleRequestDTO struct {
	Role domain.Role `json:"role"`
}

// IssueToken exchanges a user identity claim for a bearer credential.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "email is required")
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to issue token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" || !strings.Contains(email, "@") {
		respondError(w, http.StatusBadRequest, "invalid_email", "Valid email is required")
		return
	}

	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.users.Upsert(r.Context(), email, &user); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		// An unknown user has no role rather than being an error; the
		// client probes this endpoint before sign-up completes.
		respondJSON(w, http.StatusOK, map[string]domain.Role{"role": ""})
		return
	}
	respondJSON(w, http.StatusOK, map[string]domain.Role{"role": user.Role})
}

func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req roleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Role == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "role is required")
		return
	}

	if err := h.users.UpdateRole(r.Context(), email, req.Role); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}
