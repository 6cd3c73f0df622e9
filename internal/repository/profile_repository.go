package repository

import (
	"context"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	ListActive(ctx context.Context) ([]*domain.Profile, error)
}
