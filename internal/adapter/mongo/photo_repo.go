package mongo

import (
	"context"
	"fmt"

	"github.com/ceyhunemlak/listing-service/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const imagesCollectionName = "images"

type PhotoMongoRepository struct {
	db *mongo.Database
}

func NewPhotoMongoRepository(client *mongo.Client, dbName string) *PhotoMongoRepository {
	return &PhotoMongoRepository{db: client.Database(dbName)}
}

func (r *PhotoMongoRepository) collection() *mongo.Collection {
	return r.db.Collection(imagesCollectionName)
}

func (r *PhotoMongoRepository) Insert(ctx context.Context, photo *entity.Photo) error {
	if _, err := r.collection().InsertOne(ctx, toPhotoDocument(photo)); err != nil {
		return fmt.Errorf("failed to insert photo %s in mongo: %w", photo.StorageID, err)
	}
	return nil
}

func (r *PhotoMongoRepository) DeleteByStorageID(ctx context.Context, storageID string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": storageID})
	if err != nil {
		return fmt.Errorf("failed to delete photo %s in mongo: %w", storageID, err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoMongoRepository) DeleteByListingID(ctx context.Context, listingID string) error {
	if _, err := r.collection().DeleteMany(ctx, bson.M{"listing_id": listingID}); err != nil {
		return fmt.Errorf("failed to delete photos of listing %s in mongo: %w", listingID, err)
	}
	return nil
}

func (r *PhotoMongoRepository) ListByListingID(ctx context.Context, listingID string) ([]entity.Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{"listing_id": listingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos of listing %s in mongo: %w", listingID, err)
	}
	defer cursor.Close(ctx)

	var photos []entity.Photo
	for cursor.Next(ctx) {
		var doc photoDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode photo document: %w", err)
		}
		photos = append(photos, toPhotoEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("photo cursor error: %w", err)
	}
	return photos, nil
}

func (r *PhotoMongoRepository) UpdateOrder(ctx context.Context, storageID string, orderIndex int, isCover bool) error {
	update := bson.M{"$set": bson.M{"order_index": orderIndex, "is_cover": isCover}}
	res, err := r.collection().UpdateByID(ctx, storageID, update)
	if err != nil {
		return fmt.Errorf("failed to update photo order %s in mongo: %w", storageID, err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrPhotoNotFound
	}
	return nil
}

// UpdateStorageID replaces the row keyed by oldID with one keyed by
// newID. The storage id is the _id, so this is a delete and re-insert of
// the same row data.
func (r *PhotoMongoRepository) UpdateStorageID(ctx context.Context, oldID, newID, newURL string) error {
	var doc photoDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": oldID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ErrPhotoNotFound
		}
		return fmt.Errorf("failed to find photo %s in mongo: %w", oldID, err)
	}

	doc.StorageID = newID
	doc.URL = newURL
	if _, err := r.collection().InsertOne(ctx, &doc); err != nil {
		return fmt.Errorf("failed to insert renamed photo %s in mongo: %w", newID, err)
	}
	if _, err := r.collection().DeleteOne(ctx, bson.M{"_id": oldID}); err != nil {
		return fmt.Errorf("failed to remove old photo row %s in mongo: %w", oldID, err)
	}
	return nil
}
