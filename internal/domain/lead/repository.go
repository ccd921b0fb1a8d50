package lead

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brightfuture/internal/remote"
)

// Repository is the persistence port for leads. The production
// implementation talks to the remote document store; tests supply
// an in-memory double.
type Repository interface {
	Insert(ctx context.Context, lead *Lead) error
	List(ctx context.Context, filters Filters) ([]Lead, error)
	Get(ctx context.Context, id string) (*Lead, error)
	UpdateStatus(ctx context.Context, id string, status Status, notes string, updatedAt string) error
	MarkRead(ctx context.Context, id string, updatedAt string) error
	Delete(ctx context.Context, id string) error
}

// Filters narrows admin lead listings. Search is applied by the
// service after fetch, not here.
type Filters struct {
	Status      Status
	ProjectType string
	Search      string
}

type mongoRepository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(remote.ColLeads)}
}

func (r *mongoRepository) Insert(ctx context.Context, lead *Lead) error {
	if lead.ID == "" {
		lead.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, lead); err != nil {
		return err
	}
	return nil
}

func (r *mongoRepository) List(ctx context.Context, filters Filters) ([]Lead, error) {
	query := bson.M{}
	if filters.Status != "" {
		query["status"] = filters.Status
	}
	if filters.ProjectType != "" {
		query["projectType"] = filters.ProjectType
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *mongoRepository) Get(ctx context.Context, id string) (*Lead, error) {
	var lead Lead
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *mongoRepository) UpdateStatus(ctx context.Context, id string, status Status, notes string, updatedAt string) error {
	update := bson.M{"status": status, "updatedAt": updatedAt}
	if notes != "" {
		update["notes"] = notes
	}
	result, err := r.col.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func (r *mongoRepository) MarkRead(ctx context.Context, id string, updatedAt string) error {
	result, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"read": true, "updatedAt": updatedAt}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrLeadNotFound
	}
	return nil
}
