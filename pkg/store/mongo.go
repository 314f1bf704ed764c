package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rahulkhanna/dukaan/pkg/metrics"
)

// Mongo is the production Store driver.
type Mongo struct {
	client  *mongo.Client
	db      *mongo.Database
	indexes []Index
}

// ConnectMongo opens a client, pings the deployment, and ensures the
// declared indexes. The caller owns the lifecycle and must Close.
func ConnectMongo(ctx context.Context, uri, database string, indexes []Index) (*Mongo, error) {
	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(database), indexes: indexes}
	if err := m.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

// Database exposes the underlying database handle (used by the Mongo
// log sink, which shares this client).
func (m *Mongo) Database() *mongo.Database { return m.db }

// EnsureIndexes creates the declared indexes; CreateOne is a no-op for
// indexes that already exist.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	for _, ix := range m.indexes {
		direction := 1
		if ix.Descending {
			direction = -1
		}
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: ix.Field, Value: direction}},
			Options: options.Index().SetUnique(ix.Unique),
		}
		if _, err := m.db.Collection(ix.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("store: ensure index %s.%s: %w", ix.Collection, ix.Field, err)
		}
	}
	return nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc interface{}) error {
	defer metrics.ObserveStoreOp("mongo", "insert", collection, time.Now())

	_, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if dup := m.duplicateKey(collection, err); dup != nil {
			return dup
		}
		return fmt.Errorf("store: insert into %s: %w", collection, err)
	}
	return nil
}

func (m *Mongo) FindByID(ctx context.Context, collection string, id primitive.ObjectID, out interface{}) error {
	defer metrics.ObserveStoreOp("mongo", "find", collection, time.Now())

	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("store: find in %s: %w", collection, err)
	}
	return nil
}

func (m *Mongo) FindAll(ctx context.Context, collection string, out interface{}) error {
	defer metrics.ObserveStoreOp("mongo", "list", collection, time.Now())

	cur, err := m.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("store: list %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("store: decode %s: %w", collection, err)
	}
	return nil
}

func (m *Mongo) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc interface{}) error {
	defer metrics.ObserveStoreOp("mongo", "replace", collection, time.Now())

	res, err := m.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if dup := m.duplicateKey(collection, err); dup != nil {
			return dup
		}
		return fmt.Errorf("store: replace in %s: %w", collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, collection string, id primitive.ObjectID) (bool, error) {
	defer metrics.ObserveStoreOp("mongo", "delete", collection, time.Now())

	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("store: delete from %s: %w", collection, err)
	}
	return res.DeletedCount > 0, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// duplicateKey translates a Mongo duplicate-key error into a
// *DuplicateKeyError naming the unique field of the collection.
func (m *Mongo) duplicateKey(collection string, err error) *DuplicateKeyError {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	fields := uniqueFields(m.indexes, collection)
	field := "_id"
	if len(fields) > 0 {
		field = fields[0]
	}
	return &DuplicateKeyError{Collection: collection, Field: field}
}
