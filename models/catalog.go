package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CatalogItem is the polymorphic view over foods and drinks used wherever an
// id may point into either collection (favorites, tried items,
// recommendations).
type CatalogItem interface {
	ItemID() primitive.ObjectID
	DisplayName(lang string) string
	Serialize(lang string) any
}

var (
	_ CatalogItem = (*Food)(nil)
	_ CatalogItem = (*Drink)(nil)
)
