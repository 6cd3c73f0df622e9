package repository

import (
	"context"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	ListActiveIDs(ctx context.Context) ([]int, error)
}
