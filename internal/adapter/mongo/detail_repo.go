package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ceyhunemlak/listing-service/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Each property type keeps its detail rows in its own collection, keyed
// by listing id.
const (
	konutDetailsCollection  = "konut_details"
	ticariDetailsCollection = "ticari_details"
	arsaDetailsCollection   = "arsa_details"
	vasitaDetailsCollection = "vasita_details"
)

type DetailMongoRepository struct {
	db *mongo.Database
}

func NewDetailMongoRepository(client *mongo.Client, dbName string) *DetailMongoRepository {
	return &DetailMongoRepository{db: client.Database(dbName)}
}

func detailCollectionName(propertyType entity.PropertyType) (string, error) {
	switch propertyType {
	case entity.PropertyKonut:
		return konutDetailsCollection, nil
	case entity.PropertyTicari:
		return ticariDetailsCollection, nil
	case entity.PropertyArsa:
		return arsaDetailsCollection, nil
	case entity.PropertyVasita:
		return vasitaDetailsCollection, nil
	}
	return "", fmt.Errorf("unknown property type %q", propertyType)
}

func (r *DetailMongoRepository) Upsert(ctx context.Context, details entity.ListingDetails) error {
	name, err := detailCollectionName(details.PropertyType())
	if err != nil {
		return err
	}

	var doc interface{}
	switch d := details.(type) {
	case entity.KonutDetails:
		doc = &konutDetailsDocument{
			ListingID:        d.ListingID,
			KonutType:        d.KonutType,
			GrossArea:        d.GrossArea,
			NetArea:          d.NetArea,
			RoomCount:        d.RoomCount,
			BuildingAge:      d.BuildingAge,
			Floor:            d.Floor,
			TotalFloors:      d.TotalFloors,
			Heating:          d.Heating,
			HasBalcony:       d.HasBalcony,
			HasElevator:      d.HasElevator,
			IsFurnished:      d.IsFurnished,
			IsTradeable:      d.IsTradeable,
			IsCreditEligible: d.IsCreditEligible,
		}
	case entity.TicariDetails:
		doc = &ticariDetailsDocument{
			ListingID:   d.ListingID,
			TicariType:  d.TicariType,
			GrossArea:   d.GrossArea,
			NetArea:     d.NetArea,
			RoomCount:   d.RoomCount,
			BuildingAge: d.BuildingAge,
			Floor:       d.Floor,
			TotalFloors: d.TotalFloors,
			Heating:     d.Heating,
		}
	case entity.ArsaDetails:
		doc = &arsaDetailsDocument{
			ListingID:        d.ListingID,
			ArsaType:         d.ArsaType,
			Area:             d.Area,
			Kaks:             d.Kaks,
			IsTradeable:      d.IsTradeable,
			IsCreditEligible: d.IsCreditEligible,
		}
	case entity.VasitaDetails:
		doc = &vasitaDetailsDocument{
			ListingID:       d.ListingID,
			Brand:           d.Brand,
			Model:           d.Model,
			SubModel:        d.SubModel,
			Kilometers:      d.Kilometers,
			FuelType:        d.FuelType,
			Transmission:    d.Transmission,
			Color:           d.Color,
			HasWarranty:     d.HasWarranty,
			HasDamageRecord: d.HasDamageRecord,
			IsTradeable:     d.IsTradeable,
		}
	default:
		return fmt.Errorf("unsupported details type %T", details)
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.db.Collection(name).ReplaceOne(ctx, bson.M{"_id": details.OwnerID()}, doc, opts); err != nil {
		return fmt.Errorf("failed to upsert %s details for %s in mongo: %w", details.PropertyType(), details.OwnerID(), err)
	}
	return nil
}

func (r *DetailMongoRepository) GetByListingID(ctx context.Context, propertyType entity.PropertyType, listingID string) (entity.ListingDetails, error) {
	name, err := detailCollectionName(propertyType)
	if err != nil {
		return nil, err
	}

	res := r.db.Collection(name).FindOne(ctx, bson.M{"_id": listingID})
	switch propertyType {
	case entity.PropertyKonut:
		var doc konutDetailsDocument
		if err := decodeDetail(res, &doc); err != nil {
			return nil, err
		}
		return entity.KonutDetails{
			ListingID:        doc.ListingID,
			KonutType:        doc.KonutType,
			GrossArea:        doc.GrossArea,
			NetArea:          doc.NetArea,
			RoomCount:        doc.RoomCount,
			BuildingAge:      doc.BuildingAge,
			Floor:            doc.Floor,
			TotalFloors:      doc.TotalFloors,
			Heating:          doc.Heating,
			HasBalcony:       doc.HasBalcony,
			HasElevator:      doc.HasElevator,
			IsFurnished:      doc.IsFurnished,
			IsTradeable:      doc.IsTradeable,
			IsCreditEligible: doc.IsCreditEligible,
		}, nil
	case entity.PropertyTicari:
		var doc ticariDetailsDocument
		if err := decodeDetail(res, &doc); err != nil {
			return nil, err
		}
		return entity.TicariDetails{
			ListingID:   doc.ListingID,
			TicariType:  doc.TicariType,
			GrossArea:   doc.GrossArea,
			NetArea:     doc.NetArea,
			RoomCount:   doc.RoomCount,
			BuildingAge: doc.BuildingAge,
			Floor:       doc.Floor,
			TotalFloors: doc.TotalFloors,
			Heating:     doc.Heating,
		}, nil
	case entity.PropertyArsa:
		var doc arsaDetailsDocument
		if err := decodeDetail(res, &doc); err != nil {
			return nil, err
		}
		return entity.ArsaDetails{
			ListingID:        doc.ListingID,
			ArsaType:         doc.ArsaType,
			Area:             doc.Area,
			Kaks:             doc.Kaks,
			IsTradeable:      doc.IsTradeable,
			IsCreditEligible: doc.IsCreditEligible,
		}, nil
	default:
		var doc vasitaDetailsDocument
		if err := decodeDetail(res, &doc); err != nil {
			return nil, err
		}
		return entity.VasitaDetails{
			ListingID:       doc.ListingID,
			Brand:           doc.Brand,
			Model:           doc.Model,
			SubModel:        doc.SubModel,
			Kilometers:      doc.Kilometers,
			FuelType:        doc.FuelType,
			Transmission:    doc.Transmission,
			Color:           doc.Color,
			HasWarranty:     doc.HasWarranty,
			HasDamageRecord: doc.HasDamageRecord,
			IsTradeable:     doc.IsTradeable,
		}, nil
	}
}

func decodeDetail(res *mongo.SingleResult, out interface{}) error {
	if err := res.Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.ErrDetailsNotFound
		}
		return fmt.Errorf("failed to decode detail document: %w", err)
	}
	return nil
}

func (r *DetailMongoRepository) Delete(ctx context.Context, propertyType entity.PropertyType, listingID string) error {
	name, err := detailCollectionName(propertyType)
	if err != nil {
		return err
	}
	res, err := r.db.Collection(name).DeleteOne(ctx, bson.M{"_id": listingID})
	if err != nil {
		return fmt.Errorf("failed to delete %s details for %s in mongo: %w", propertyType, listingID, err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrDetailsNotFound
	}
	return nil
}
