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

const listingsCollectionName = "listings"

type ListingMongoRepository struct {
	db *mongo.Database
}

func NewListingMongoRepository(client *mongo.Client, dbName string) *ListingMongoRepository {
	return &ListingMongoRepository{db: client.Database(dbName)}
}

func (r *ListingMongoRepository) collection() *mongo.Collection {
	return r.db.Collection(listingsCollectionName)
}

func (r *ListingMongoRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if _, err := r.collection().InsertOne(ctx, toListingDocument(listing)); err != nil {
		return fmt.Errorf("failed to create listing in mongo: %w", err)
	}
	return nil
}

// Update rewrites the mutable core fields; created_at is left alone.
func (r *ListingMongoRepository) Update(ctx context.Context, listing *entity.Listing) error {
	doc := toListingDocument(listing)
	update := bson.M{"$set": bson.M{
		"title":          doc.Title,
		"description":    doc.Description,
		"price":          doc.Price,
		"property_type":  doc.PropertyType,
		"listing_status": doc.Status,
		"is_active":      doc.IsActive,
		"is_featured":    doc.IsFeatured,
		"updated_at":     doc.UpdatedAt,
	}}
	res, err := r.collection().UpdateByID(ctx, listing.ID, update)
	if err != nil {
		return fmt.Errorf("failed to update listing %s in mongo: %w", listing.ID, err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrListingNotFound
	}
	return nil
}

func (r *ListingMongoRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res, err := r.collection().UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to patch listing %s in mongo: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrListingNotFound
	}
	return nil
}

func (r *ListingMongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing %s in mongo: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrListingNotFound
	}
	return nil
}

func (r *ListingMongoRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	var doc listingDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to find listing %s in mongo: %w", id, err)
	}
	return toListingEntity(&doc), nil
}

func (r *ListingMongoRepository) List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	query := bson.M{}
	if filter.Query != "" {
		query["title"] = bson.M{"$regex": filter.Query, "$options": "i"}
	}
	if filter.PropertyType != "" {
		query["property_type"] = string(filter.PropertyType)
	}
	if filter.Status != "" {
		query["listing_status"] = string(filter.Status)
	}
	if filter.OnlyActive {
		query["is_active"] = true
	}
	if filter.OnlyFeatured {
		query["is_featured"] = true
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	total, err := r.collection().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count listings in mongo: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
		if filter.Page > 1 {
			opts.SetSkip((filter.Page - 1) * filter.Limit)
		}
	}

	cursor, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings in mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []*entity.Listing
	for cursor.Next(ctx) {
		var doc listingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode listing document: %w", err)
		}
		listings = append(listings, toListingEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("listing cursor error: %w", err)
	}
	return listings, total, nil
}
