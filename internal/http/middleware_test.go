package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/auth"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	users map[string]domain.Role
}

func (s *stubDirectory) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	role, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &domain.User{Email: email, Role: role}, nil
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts/a@b.c", nil)
	Authenticate(tokens)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticate_BadToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts/a@b.c", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	Authenticate(tokens)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	signed, err := tokens.Issue("a@b.c")
	require.NoError(t, err)

	next, called := okHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts/a@b.c", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	Authenticate(tokens)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireRole_Forbidden(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	gate := auth.NewGate(&stubDirectory{users: map[string]domain.Role{
		"seller@x.y": domain.RoleSeller,
	}})
	signed, err := tokens.Issue("seller@x.y")
	require.NoError(t, err)

	next, called := okHandler()
	wrapped := Authenticate(tokens)(RequireRole(gate, domain.RoleAdmin)(next))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/revenue", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestRequireRole_Allowed(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	gate := auth.NewGate(&stubDirectory{users: map[string]domain.Role{
		"admin@x.y": domain.RoleAdmin,
	}})
	signed, err := tokens.Issue("admin@x.y")
	require.NoError(t, err)

	next, called := okHandler()
	wrapped := Authenticate(tokens)(RequireRole(gate, domain.RoleAdmin)(next))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/revenue", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}
