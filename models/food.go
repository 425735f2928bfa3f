package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a catalog entry as stored in the foods collection. The same struct
// binds create and update request bodies; fields left at their zero value are
// treated as not supplied.
type Food struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                  string             `bson:"name" json:"name" binding:"required"`
	Type                  string             `bson:"type" json:"type"`
	Region                string             `bson:"region" json:"region" binding:"required"`
	Difficulty            string             `bson:"difficulty,omitempty" json:"difficulty"`
	SpicyLevel            string             `bson:"spicy_level,omitempty" json:"spicy_level"`
	Description           string             `bson:"description,omitempty" json:"description"`
	Ingredients           []string           `bson:"ingredients" json:"ingredients"`
	PhotoURLs             []string           `bson:"photo_urls" json:"photo_urls"`
	RestaurantSuggestions []string           `bson:"restaurant_suggestions" json:"restaurant_suggestions"`
	Trivia                string             `bson:"trivia,omitempty" json:"trivia"`
	Vegetarian            bool               `bson:"vegetarian" json:"vegetarian"`
	NameAmharic           string             `bson:"name_amharic,omitempty" json:"name_amharic"`
	Ratings               []Rating           `bson:"ratings" json:"ratings"`
	CreatedAt             time.Time          `bson:"created_at" json:"created_at"`
}

// FoodResponse is the serialized projection returned by the API.
type FoodResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type"`
	Region                string    `json:"region"`
	Difficulty            string    `json:"difficulty"`
	SpicyLevel            string    `json:"spicy_level"`
	Description           string    `json:"description"`
	Ingredients           []string  `json:"ingredients"`
	PhotoURLs             []string  `json:"photo_urls"`
	RestaurantSuggestions []string  `json:"restaurant_suggestions"`
	Trivia                string    `json:"trivia"`
	Vegetarian            bool      `json:"vegetarian"`
	NameAmharic           string    `json:"name_amharic"`
	Ratings               []Rating  `json:"ratings"`
	CreatedAt             time.Time `json:"created_at"`
}

// ItemID implements CatalogItem.
func (f *Food) ItemID() primitive.ObjectID { return f.ID }

// DisplayName returns the Amharic name for lang "am" when one is set,
// otherwise the default name.
func (f *Food) DisplayName(lang string) string {
	if lang == "am" && f.NameAmharic != "" {
		return f.NameAmharic
	}
	return f.Name
}

// Serialize builds the response projection. Language substitution happens here
// only; stored data is never rewritten.
func (f *Food) Serialize(lang string) any {
	return FoodResponse{
		ID:                    f.ID.Hex(),
		Name:                  f.DisplayName(lang),
		Type:                  "food",
		Region:                f.Region,
		Difficulty:            f.Difficulty,
		SpicyLevel:            f.SpicyLevel,
		Description:           f.Description,
		Ingredients:           orEmpty(f.Ingredients),
		PhotoURLs:             orEmpty(f.PhotoURLs),
		RestaurantSuggestions: orEmpty(f.RestaurantSuggestions),
		Trivia:                f.Trivia,
		Vegetarian:            f.Vegetarian,
		NameAmharic:           f.NameAmharic,
		Ratings:               orEmptyRatings(f.Ratings),
		CreatedAt:             f.CreatedAt,
	}
}

// Document prepares the food for insertion: type and creation timestamp are
// server-assigned, ratings start empty.
func (f *Food) Document(now time.Time) *Food {
	f.ID = primitive.NilObjectID
	f.Type = "food"
	f.CreatedAt = now
	if f.Ratings == nil {
		f.Ratings = []Rating{}
	}
	return f
}

// UpdateDocument builds the $set payload for a partial update. Zero-valued
// fields are skipped, so a supplied false/empty value is indistinguishable
// from an omitted one and can never clear stored data.
func (f *Food) UpdateDocument() bson.M {
	set := bson.M{}
	setString(set, "name", f.Name)
	setString(set, "region", f.Region)
	setString(set, "difficulty", f.Difficulty)
	setString(set, "spicy_level", f.SpicyLevel)
	setString(set, "description", f.Description)
	setString(set, "trivia", f.Trivia)
	setString(set, "name_amharic", f.NameAmharic)
	setStrings(set, "ingredients", f.Ingredients)
	setStrings(set, "photo_urls", f.PhotoURLs)
	setStrings(set, "restaurant_suggestions", f.RestaurantSuggestions)
	if f.Vegetarian {
		set["vegetarian"] = true
	}
	return set
}

func setString(set bson.M, key, val string) {
	if val != "" {
		set[key] = val
	}
}

func setStrings(set bson.M, key string, vals []string) {
	if len(vals) > 0 {
		set[key] = vals
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyRatings(r []Rating) []Rating {
	if r == nil {
		return []Rating{}
	}
	return r
}
