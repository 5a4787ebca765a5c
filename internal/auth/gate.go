package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
)

var ErrForbidden = errors.New("forbidden: insufficient role")

// RoleDirectory answers "does principal P hold role R". Backed by the user
// repository in production.
type RoleDirectory interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Gate is the capability check wrapping entry to role-scoped operations.
// A Forbidden result must short-circuit with no side effects.
type Gate struct {
	directory RoleDirectory
}

func NewGate(directory RoleDirectory) *Gate {
	return &Gate{directory: directory}
}

func (g *Gate) RequireRole(ctx context.Context, email string, role domain.Role) error {
	user, err := g.directory.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrForbidden
		}
		return fmt.Errorf("role lookup failed: %w", err)
	}
	if user.Role != role {
		return ErrForbidden
	}
	return nil
}
