package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Counter counts documents with a field equal to a value. It satisfies
// remote.DocumentCounter.
type Counter struct {
	db *mongo.Database
}

// NewCounter binds a Counter to db.
func NewCounter(db *mongo.Database) *Counter {
	return &Counter{db: db}
}

// CountEqual counts at most limit documents in collection whose field equals
// value. A limit of zero counts all of them.
func (c *Counter) CountEqual(ctx context.Context, collection, field string, value any, limit int64) (int64, error) {
	opts := options.Count()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return c.db.Collection(collection).CountDocuments(ctx, bson.D{{Key: field, Value: value}}, opts)
}
