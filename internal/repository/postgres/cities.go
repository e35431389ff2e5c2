package postgres

import (
	"context"
	"errors"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/apperr"
	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Find* return (nil, nil) on a miss so callers can branch on cache presence
// without unwrapping errors.

func (r *RepoDatabase) FindByName(ctx context.Context, name string) (*entity.City, error) {
	var city entity.City
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "find city by name", Err: err}
	}
	return &city, nil
}

func (r *RepoDatabase) FindByCoordinates(ctx context.Context, lat, lng float64) (*entity.City, error) {
	var city entity.City
	err := r.DB.WithContext(ctx).Where("lat = ? AND lng = ?", lat, lng).First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "find city by coordinates", Err: err}
	}
	return &city, nil
}

func (r *RepoDatabase) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	var city entity.City
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "find city by id", Err: err}
	}
	return &city, nil
}

func (r *RepoDatabase) FindAll(ctx context.Context) ([]entity.City, error) {
	var cities []entity.City
	if err := r.DB.WithContext(ctx).Find(&cities).Error; err != nil {
		return nil, &apperr.PersistenceError{Op: "list cities", Err: err}
	}
	return cities, nil
}

func (r *RepoDatabase) Insert(ctx context.Context, city *entity.City) error {
	if err := r.DB.WithContext(ctx).Create(city).Error; err != nil {
		return &apperr.PersistenceError{Op: "insert city", Err: err}
	}
	return nil
}

func (r *RepoDatabase) Update(ctx context.Context, city *entity.City) error {
	if err := r.DB.WithContext(ctx).Save(city).Error; err != nil {
		return &apperr.PersistenceError{Op: "update city", Err: err}
	}
	return nil
}

func (r *RepoDatabase) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.DB.WithContext(ctx).Delete(&entity.City{}, "id = ?", id)
	if result.Error != nil {
		return &apperr.PersistenceError{Op: "delete city", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &apperr.NotFoundError{Resource: "city", ID: id.String()}
	}
	return nil
}
