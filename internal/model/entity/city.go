package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City is a resolved location stored in the 'cities' table. A row is the
// cached result of one upstream resolution; lat/lng identify it for
// coordinate lookups, name for city-name lookups.
type City struct {
	ID               uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string           `json:"name" gorm:"index"`
	State            string           `json:"state"`
	Country          string           `json:"country"`
	FormattedAddress string           `json:"formatted_address"`
	CurrentTime      string           `json:"current_time"`
	Lat              float64          `json:"lat" gorm:"uniqueIndex:idx_cities_lat_lng"`
	Lng              float64          `json:"lng" gorm:"uniqueIndex:idx_cities_lat_lng"`
	PhotoURL         *string          `json:"photo_url,omitempty"`
	PlacesOfInterest PointsOfInterest `json:"places_of_interest" gorm:"type:jsonb"`
	CreatedAt        time.Time        `json:"-"`
	UpdatedAt        time.Time        `json:"-"`
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// PointOfInterest is one nearby attraction embedded in a City. Optional
// fields are pointers so an absent value round-trips as absent, not zero.
type PointOfInterest struct {
	Name        string   `json:"name"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Address     *string  `json:"address,omitempty"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// PointsOfInterest is stored as a single jsonb column.
type PointsOfInterest []PointOfInterest

func (p PointsOfInterest) Value() (driver.Value, error) {
	if p == nil {
		p = PointsOfInterest{}
	}
	return json.Marshal(p)
}

func (p *PointsOfInterest) Scan(value interface{}) error {
	if value == nil {
		*p = PointsOfInterest{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for places_of_interest: %T", value)
	}
	return json.Unmarshal(data, p)
}

// SearchQueryParams carries the query string of GET /search. Exactly one of
// City or the Lat/Lng pair must be supplied.
type SearchQueryParams struct {
	City string `query:"city"`
	Lat  string `query:"lat"`
	Lng  string `query:"lng"`
}

// CreateCityRequest is the body of POST /search.
type CreateCityRequest struct {
	Name             string           `json:"name" validate:"required"`
	State            string           `json:"state"`
	Country          string           `json:"country"`
	FormattedAddress string           `json:"formatted_address"`
	CurrentTime      string           `json:"current_time"`
	Lat              float64          `json:"lat" validate:"min=-90,max=90"`
	Lng              float64          `json:"lng" validate:"min=-180,max=180"`
	PhotoURL         *string          `json:"photo_url,omitempty"`
	PlacesOfInterest PointsOfInterest `json:"places_of_interest"`
}

// UpdateCityRequest is the body of PUT /search/:id. Nil fields are left
// untouched by the merge.
type UpdateCityRequest struct {
	Name             string            `json:"name"`
	State            string            `json:"state"`
	Country          string            `json:"country"`
	FormattedAddress string            `json:"formatted_address"`
	CurrentTime      string            `json:"current_time"`
	PhotoURL         *string           `json:"photo_url"`
	PlacesOfInterest *PointsOfInterest `json:"places_of_interest"`
}
