package postgres

import (
	"context"
	"errors"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/apperr"
	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *RepoDatabase) Create(ctx context.Context, user *entity.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return &apperr.PersistenceError{Op: "create user", Err: err}
	}
	return nil
}

func (r *RepoDatabase) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "find user by email", Err: err}
	}
	return &user, nil
}

// AddCityToUser links a city to a user's saved searches, add-if-absent.
func (r *RepoDatabase) AddCityToUser(ctx context.Context, email string, cityID uuid.UUID) error {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return &apperr.NotFoundError{Resource: "user", ID: email}
	}

	link := entity.UserCity{UserID: user.ID, CityID: cityID}
	err = r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
	if err != nil {
		return &apperr.PersistenceError{Op: "add city to user", Err: err}
	}
	return nil
}

// ListCitiesForUser returns the cities a user has saved. Links whose city
// has been deleted are skipped, not reported.
func (r *RepoDatabase) ListCitiesForUser(ctx context.Context, email string) ([]entity.City, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: email}
	}

	var cities []entity.City
	err = r.DB.WithContext(ctx).
		Joins("JOIN user_cities ON user_cities.city_id = cities.id").
		Where("user_cities.user_id = ?", user.ID).
		Find(&cities).Error
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "list cities for user", Err: err}
	}
	return cities, nil
}
