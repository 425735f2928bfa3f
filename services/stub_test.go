package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BiniyamTG/Injera-Beyond/database"
)

// stubCollection implements database.Collection with per-test callbacks. A nil
// callback means the test does not expect that call.
type stubCollection struct {
	findOne   func(filter any, out any) error
	find      func(filter any, out any) error
	insertOne func(doc any) (primitive.ObjectID, error)
	updateOne func(filter any, update any) (int64, error)
	deleteOne func(filter any) (int64, error)
	aggregate func(pipeline mongo.Pipeline, out any) error
}

var _ database.Collection = (*stubCollection)(nil)

func (s *stubCollection) FindOne(_ context.Context, filter any, out any) error {
	if s.findOne == nil {
		return errors.New("unexpected FindOne")
	}
	return s.findOne(filter, out)
}

func (s *stubCollection) Find(_ context.Context, filter any, out any) error {
	if s.find == nil {
		return errors.New("unexpected Find")
	}
	return s.find(filter, out)
}

func (s *stubCollection) InsertOne(_ context.Context, doc any) (primitive.ObjectID, error) {
	if s.insertOne == nil {
		return primitive.NilObjectID, errors.New("unexpected InsertOne")
	}
	return s.insertOne(doc)
}

func (s *stubCollection) UpdateOne(_ context.Context, filter any, update any) (int64, error) {
	if s.updateOne == nil {
		return 0, errors.New("unexpected UpdateOne")
	}
	return s.updateOne(filter, update)
}

func (s *stubCollection) DeleteOne(_ context.Context, filter any) (int64, error) {
	if s.deleteOne == nil {
		return 0, errors.New("unexpected DeleteOne")
	}
	return s.deleteOne(filter)
}

func (s *stubCollection) Aggregate(_ context.Context, pipeline mongo.Pipeline, out any) error {
	if s.aggregate == nil {
		return errors.New("unexpected Aggregate")
	}
	return s.aggregate(pipeline, out)
}
