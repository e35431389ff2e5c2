package service

import (
	"context"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
)

type SearchService interface {
	Resolve(ctx context.Context, identity string, params entity.SearchQueryParams) (*entity.City, error)
	Create(ctx context.Context, req entity.CreateCityRequest) (*entity.City, error)
	Update(ctx context.Context, id string, req entity.UpdateCityRequest) (*entity.City, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]entity.City, error)
	ListForUser(ctx context.Context, identity string) ([]entity.City, error)
}
