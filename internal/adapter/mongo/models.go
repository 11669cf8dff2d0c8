package mongo

import (
	"github.com/ceyhunemlak/listing-service/internal/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listings use the client-visible id as _id: the wizard may pre-generate
// it before the first save, so it cannot be a mongo ObjectID.
type listingDocument struct {
	ID           string             `bson:"_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Price        float64            `bson:"price"`
	PropertyType string             `bson:"property_type"`
	Status       string             `bson:"listing_status"`
	IsActive     bool               `bson:"is_active"`
	IsFeatured   bool               `bson:"is_featured"`
	CreatedAt    primitive.DateTime `bson:"created_at"`
	UpdatedAt    primitive.DateTime `bson:"updated_at"`
}

func toListingDocument(l *entity.Listing) *listingDocument {
	return &listingDocument{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Price:        l.Price,
		PropertyType: string(l.PropertyType),
		Status:       string(l.Status),
		IsActive:     l.IsActive,
		IsFeatured:   l.IsFeatured,
		CreatedAt:    primitive.NewDateTimeFromTime(l.CreatedAt),
		UpdatedAt:    primitive.NewDateTimeFromTime(l.UpdatedAt),
	}
}

func toListingEntity(doc *listingDocument) *entity.Listing {
	return &entity.Listing{
		ID:           doc.ID,
		Title:        doc.Title,
		Description:  doc.Description,
		Price:        doc.Price,
		PropertyType: entity.PropertyType(doc.PropertyType),
		Status:       entity.ListingStatus(doc.Status),
		IsActive:     doc.IsActive,
		IsFeatured:   doc.IsFeatured,
		CreatedAt:    doc.CreatedAt.Time(),
		UpdatedAt:    doc.UpdatedAt.Time(),
	}
}

// Photos are keyed by the storage id shared with the blob store.
type photoDocument struct {
	StorageID  string             `bson:"_id"`
	ListingID  string             `bson:"listing_id"`
	URL        string             `bson:"url"`
	OrderIndex int                `bson:"order_index"`
	IsCover    bool               `bson:"is_cover"`
	CreatedAt  primitive.DateTime `bson:"created_at"`
}

func toPhotoDocument(p *entity.Photo) *photoDocument {
	return &photoDocument{
		StorageID:  p.StorageID,
		ListingID:  p.ListingID,
		URL:        p.URL,
		OrderIndex: p.OrderIndex,
		IsCover:    p.IsCover,
		CreatedAt:  primitive.NewDateTimeFromTime(p.CreatedAt),
	}
}

func toPhotoEntity(doc *photoDocument) entity.Photo {
	return entity.Photo{
		StorageID:  doc.StorageID,
		ListingID:  doc.ListingID,
		URL:        doc.URL,
		OrderIndex: doc.OrderIndex,
		IsCover:    doc.IsCover,
		CreatedAt:  doc.CreatedAt.Time(),
	}
}

type addressDocument struct {
	ListingID    string `bson:"_id"`
	Province     string `bson:"province"`
	District     string `bson:"district"`
	Neighborhood string `bson:"neighborhood"`
	FullAddress  string `bson:"full_address"`
}

func toAddressDocument(a *entity.Address) *addressDocument {
	return &addressDocument{
		ListingID:    a.ListingID,
		Province:     a.Province,
		District:     a.District,
		Neighborhood: a.Neighborhood,
		FullAddress:  a.FullAddress,
	}
}

func toAddressEntity(doc *addressDocument) *entity.Address {
	return &entity.Address{
		ListingID:    doc.ListingID,
		Province:     doc.Province,
		District:     doc.District,
		Neighborhood: doc.Neighborhood,
		FullAddress:  doc.FullAddress,
	}
}

type konutDetailsDocument struct {
	ListingID        string  `bson:"_id"`
	KonutType        string  `bson:"konut_type"`
	GrossArea        float64 `bson:"gross_sqm"`
	NetArea          float64 `bson:"net_sqm"`
	RoomCount        string  `bson:"room_count"`
	BuildingAge      int     `bson:"building_age"`
	Floor            int     `bson:"floor"`
	TotalFloors      int     `bson:"total_floors"`
	Heating          string  `bson:"heating"`
	HasBalcony       bool    `bson:"balcony"`
	HasElevator      bool    `bson:"elevator"`
	IsFurnished      bool    `bson:"furnished"`
	IsTradeable      bool    `bson:"tradeable"`
	IsCreditEligible bool    `bson:"credit_eligible"`
}

type ticariDetailsDocument struct {
	ListingID   string  `bson:"_id"`
	TicariType  string  `bson:"ticari_type"`
	GrossArea   float64 `bson:"gross_sqm"`
	NetArea     float64 `bson:"net_sqm"`
	RoomCount   string  `bson:"room_count"`
	BuildingAge int     `bson:"building_age"`
	Floor       *int    `bson:"floor"`
	TotalFloors *int    `bson:"total_floors"`
	Heating     *string `bson:"heating"`
}

type arsaDetailsDocument struct {
	ListingID        string   `bson:"_id"`
	ArsaType         string   `bson:"arsa_type"`
	Area             float64  `bson:"sqm"`
	Kaks             *float64 `bson:"kaks"`
	IsTradeable      bool     `bson:"tradeable"`
	IsCreditEligible bool     `bson:"credit_eligible"`
}

type vasitaDetailsDocument struct {
	ListingID       string `bson:"_id"`
	Brand           string `bson:"brand"`
	Model           string `bson:"model"`
	SubModel        string `bson:"sub_model"`
	Kilometers      int    `bson:"km"`
	FuelType        string `bson:"fuel_type"`
	Transmission    string `bson:"transmission"`
	Color           string `bson:"color"`
	HasWarranty     bool   `bson:"warranty"`
	HasDamageRecord bool   `bson:"damage_record"`
	IsTradeable     bool   `bson:"tradeable"`
}
