package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Aggregate document ids inside the products collection. Product docs use
// their own ids, these two hold derived views for cheap page loads.
const (
	docFeatured       = "featured"
	docCategoryPrefix = "category:"
)

// RemoteCatalog mirrors the product list into the shared document store.
type RemoteCatalog struct {
	col *mongo.Collection
}

func NewRemoteCatalog(col *mongo.Collection) *RemoteCatalog {
	return &RemoteCatalog{col: col}
}

// UpsertAll batch-upserts every product by id.
func (r *RemoteCatalog) UpsertAll(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(products))
	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range products {
		p.UpdatedAt = now
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}

	_, err := r.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

// SaveCategory writes the per-category aggregate document.
func (r *RemoteCatalog) SaveCategory(ctx context.Context, category Category, products []Product) error {
	doc := bson.M{
		"category":  category,
		"products":  products,
		"count":     len(products),
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}

	_, err := r.col.UpdateByID(ctx, docCategoryPrefix+string(category),
		bson.M{"$set": doc}, options.Update().SetUpsert(true))
	return err
}

// SaveFeatured writes the featured aggregate document.
func (r *RemoteCatalog) SaveFeatured(ctx context.Context, featured []Product) error {
	doc := bson.M{
		"products":  featured,
		"count":     len(featured),
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}

	_, err := r.col.UpdateByID(ctx, docFeatured,
		bson.M{"$set": doc}, options.Update().SetUpsert(true))
	return err
}

// DeleteProduct removes one product document. Aggregate docs are
// rewritten by the caller on the next sync.
func (r *RemoteCatalog) DeleteProduct(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// LoadAll fetches every product document, skipping the aggregate docs.
func (r *RemoteCatalog) LoadAll(ctx context.Context) ([]Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{"name": bson.M{"$exists": true}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
