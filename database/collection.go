package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDocuments is returned by FindOne when the filter matches nothing.
var ErrNoDocuments = mongo.ErrNoDocuments

// Collection is the narrow persistence gateway the services depend on. Every
// endpoint reduces to one or two of these calls; side effects stay inside the
// targeted collection and no call spans two collections atomically.
type Collection interface {
	// FindOne decodes the first match into out, or returns ErrNoDocuments.
	FindOne(ctx context.Context, filter any, out any) error
	// Find decodes all matches into out (a pointer to a slice).
	Find(ctx context.Context, filter any, out any) error
	// InsertOne returns the generated object id.
	InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error)
	// UpdateOne returns the number of matched documents.
	UpdateOne(ctx context.Context, filter any, update any) (int64, error)
	// DeleteOne returns the number of deleted documents.
	DeleteOne(ctx context.Context, filter any) (int64, error)
	// Aggregate runs a pipeline and decodes all results into out.
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) FindOne(ctx context.Context, filter any, out any) error {
	return c.coll.FindOne(ctx, filter).Decode(out)
}

func (c *mongoCollection) Find(ctx context.Context, filter any, out any) error {
	cur, err := c.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an object id")
	}
	return oid, nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter any, update any) (int64, error) {
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter any) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *mongoCollection) Aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
