package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookstore-catalog/internal/domains/book/model"
)

// mongoRepository implements RepositoryInterface against a MongoDB collection
type mongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates a new MongoDB repository
func NewRepository(col *mongo.Collection) RepositoryInterface {
	return &mongoRepository{col: col}
}

// Create implements Repository.Create
func (r *mongoRepository) Create(ctx context.Context, book *model.Book) error {
	if _, err := r.col.InsertOne(ctx, book); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrBookAlreadyExists
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

// GetByID implements Repository.GetByID
func (r *mongoRepository) GetByID(ctx context.Context, id string) (*model.Book, error) {
	var book model.Book
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book %s: %w", id, err)
	}
	return &book, nil
}

// Update implements Repository.Update as a single $set of only the fields
// present in the patch, so concurrent partial updates never clobber fields
// they did not touch.
func (r *mongoRepository) Update(ctx context.Context, id string, patch model.BookPatch) (*model.Book, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.SoldCount != nil {
		set["sold_count"] = *patch.SoldCount
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Book
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book %s: %w", id, err)
	}
	return &updated, nil
}

// Delete implements Repository.Delete
func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete book %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// List implements Repository.List
func (r *mongoRepository) List(ctx context.Context) ([]model.Book, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := []model.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

// Search implements Repository.Search. Substring filters are quoted so user
// input is matched literally, never as a regex.
func (r *mongoRepository) Search(ctx context.Context, query model.SearchQuery) ([]model.Book, error) {
	filter := bson.M{}

	if query.Title != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(query.Title), Options: "i"}
	}
	if query.Author != "" {
		filter["author"] = primitive.Regex{Pattern: regexp.QuoteMeta(query.Author), Options: "i"}
	}

	price := bson.M{}
	if query.MinPrice != nil {
		price["$gte"] = *query.MinPrice
	}
	if query.MaxPrice != nil {
		price["$lte"] = *query.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}

	books := []model.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return books, nil
}

// PurchaseOne implements Repository.PurchaseOne.
// The stock guard lives in the filter of one FindOneAndUpdate, so the
// check-and-decrement is a single store-evaluated operation: two concurrent
// purchases of the last copy can never both match. A miss is disambiguated
// with one follow-up read, never a retry loop.
func (r *mongoRepository) PurchaseOne(ctx context.Context, id string) (*model.Book, error) {
	filter := bson.M{
		"_id":   id,
		"stock": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"stock": -1, "sold_count": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var book model.Book
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&book)
	if err == nil {
		return &book, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to purchase book %s: %w", id, err)
	}

	// No match: either the book does not exist or its stock is exhausted.
	lookupErr := r.col.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(lookupErr, mongo.ErrNoDocuments) {
		return nil, model.ErrBookNotFound
	}
	if lookupErr != nil {
		return nil, fmt.Errorf("failed to look up book %s after purchase miss: %w", id, lookupErr)
	}
	return nil, model.ErrOutOfStock
}

// CountAll implements Repository.CountAll
func (r *mongoRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// TopSelling implements Repository.TopSelling
func (r *mongoRepository) TopSelling(ctx context.Context, limit int) ([]model.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sold_count", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query top selling books: %w", err)
	}

	books := []model.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode top selling books: %w", err)
	}
	return books, nil
}

// TopAuthors implements Repository.TopAuthors.
// The secondary sort on _id (the author name) makes ties deterministic.
func (r *mongoRepository) TopAuthors(ctx context.Context, limit int) ([]model.AuthorCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top authors: %w", err)
	}

	authors := []model.AuthorCount{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("failed to decode top authors: %w", err)
	}
	return authors, nil
}

// InsertMany implements Repository.InsertMany
func (r *mongoRepository) InsertMany(ctx context.Context, books []model.Book) error {
	docs := make([]interface{}, len(books))
	for i := range books {
		docs[i] = books[i]
	}

	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrBookAlreadyExists
		}
		return fmt.Errorf("failed to bulk insert books: %w", err)
	}
	return nil
}

// EnsureIndexes implements Repository.EnsureIndexes.
// _id is unique by definition; the rest are plain secondary indexes for
// search and the stats sorts.
func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "sold_count", Value: -1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
