package entity

import "time"

type PropertyType string

const (
	PropertyKonut  PropertyType = "konut"
	PropertyTicari PropertyType = "ticari"
	PropertyArsa   PropertyType = "arsa"
	PropertyVasita PropertyType = "vasita"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyKonut, PropertyTicari, PropertyArsa, PropertyVasita:
		return true
	}
	return false
}

type ListingStatus string

const (
	StatusSatilik ListingStatus = "satilik"
	StatusKiralik ListingStatus = "kiralik"
)

type Listing struct {
	ID           string
	Title        string
	Description  string
	Price        float64
	PropertyType PropertyType
	Status       ListingStatus
	IsActive     bool
	IsFeatured   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ListingFilter struct {
	Query        string
	PropertyType PropertyType
	Status       ListingStatus
	MinPrice     float64
	MaxPrice     float64
	OnlyActive   bool
	OnlyFeatured bool
	Page         int64
	Limit        int64
}
