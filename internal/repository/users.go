package repository

import (
	"context"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	AddCityToUser(ctx context.Context, email string, cityID uuid.UUID) error
	ListCitiesForUser(ctx context.Context, email string) ([]entity.City, error)
}
