// Package remote owns the MongoDB connection. Mongo is the system of
// record for leads and the shared copy of the product catalog.
package remote

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	ColLeads     = "leads"
	ColProducts  = "products"
	ColAdmins    = "admins"
	ColAdminLogs = "admin_logs"
)

// Connect establishes the client and verifies the server within timeout.
// A timeout here is terminal: callers must not fall back to treating the
// mirror as a lead store.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("remote: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("remote: ping: %w", err)
	}

	db := client.Database(dbName)
	if err := ensureCollections(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureCollections(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("remote: list collections: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range []string{ColLeads, ColProducts, ColAdmins, ColAdminLogs} {
		if have[name] {
			continue
		}
		log.Printf("remote: creating collection %s", name)
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("remote: create collection %s: %w", name, err)
		}
	}

	return nil
}

// Disconnect closes the underlying client.
func Disconnect(db *mongo.Database) {
	if db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = db.Client().Disconnect(ctx)
}
