package repository

import (
	"context"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/google/uuid"
)

type CityRepository interface {
	FindByName(ctx context.Context, name string) (*entity.City, error)
	FindByCoordinates(ctx context.Context, lat, lng float64) (*entity.City, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error)
	FindAll(ctx context.Context) ([]entity.City, error)
	Insert(ctx context.Context, city *entity.City) error
	Update(ctx context.Context, city *entity.City) error
	Delete(ctx context.Context, id uuid.UUID) error
}
