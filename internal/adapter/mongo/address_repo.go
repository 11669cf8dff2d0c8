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

const addressesCollectionName = "addresses"

type AddressMongoRepository struct {
	db *mongo.Database
}

func NewAddressMongoRepository(client *mongo.Client, dbName string) *AddressMongoRepository {
	return &AddressMongoRepository{db: client.Database(dbName)}
}

func (r *AddressMongoRepository) collection() *mongo.Collection {
	return r.db.Collection(addressesCollectionName)
}

func (r *AddressMongoRepository) Upsert(ctx context.Context, address *entity.Address) error {
	doc := toAddressDocument(address)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection().ReplaceOne(ctx, bson.M{"_id": doc.ListingID}, doc, opts); err != nil {
		return fmt.Errorf("failed to upsert address for %s in mongo: %w", address.ListingID, err)
	}
	return nil
}

func (r *AddressMongoRepository) GetByListingID(ctx context.Context, listingID string) (*entity.Address, error) {
	var doc addressDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": listingID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to find address for %s in mongo: %w", listingID, err)
	}
	return toAddressEntity(&doc), nil
}

func (r *AddressMongoRepository) Delete(ctx context.Context, listingID string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": listingID})
	if err != nil {
		return fmt.Errorf("failed to delete address for %s in mongo: %w", listingID, err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrAddressNotFound
	}
	return nil
}
