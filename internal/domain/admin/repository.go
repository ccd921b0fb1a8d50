package admin

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brightfuture/internal/remote"
)

// Repository is the persistence port for admin accounts and the
// audit log.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
	RecordAudit(ctx context.Context, entry *AuditEntry) error
	ListAudit(ctx context.Context, limit int64) ([]AuditEntry, error)
}

type mongoRepository struct {
	admins *mongo.Collection
	logs   *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		admins: db.Collection(remote.ColAdmins),
		logs:   db.Collection(remote.ColAdminLogs),
	}
}

func (r *mongoRepository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	err := r.admins.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *mongoRepository) Create(ctx context.Context, admin *Admin) error {
	if admin.ID == "" {
		admin.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.admins.InsertOne(ctx, admin)
	return err
}

func (r *mongoRepository) RecordAudit(ctx context.Context, entry *AuditEntry) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.logs.InsertOne(ctx, entry)
	return err
}

func (r *mongoRepository) ListAudit(ctx context.Context, limit int64) ([]AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(limit)
	cursor, err := r.logs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
