package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/models"
)

// CatalogService resolves an id that may point into either entity collection.
// Foods are probed first, drinks on a miss; the order is part of the contract.
type CatalogService struct {
	foods  database.Collection
	drinks database.Collection
}

func NewCatalogService(db *database.DB) *CatalogService {
	return &CatalogService{foods: db.Foods, drinks: db.Drinks}
}

// FindItem returns the food or drink with the given id, or ErrNotFound when
// neither collection holds it.
func (s *CatalogService) FindItem(ctx context.Context, oid primitive.ObjectID) (models.CatalogItem, error) {
	var food models.Food
	err := s.foods.FindOne(ctx, bson.M{"_id": oid}, &food)
	if err == nil {
		return &food, nil
	}
	if !errors.Is(err, database.ErrNoDocuments) {
		return nil, fmt.Errorf("find food: %w", err)
	}

	var drink models.Drink
	err = s.drinks.FindOne(ctx, bson.M{"_id": oid}, &drink)
	if err == nil {
		return &drink, nil
	}
	if !errors.Is(err, database.ErrNoDocuments) {
		return nil, fmt.Errorf("find drink: %w", err)
	}
	return nil, ErrNotFound
}
