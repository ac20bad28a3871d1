package userRepo

import (
	"context"

	"slotwise/models"
)

// UserRepository is the account store contract.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
