package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Drink mirrors Food minus the food-only fields (ingredients, difficulty,
// spiciness, vegetarian flag, restaurant suggestions).
type Drink struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Type        string             `bson:"type" json:"type"`
	Region      string             `bson:"region" json:"region" binding:"required"`
	Description string             `bson:"description,omitempty" json:"description"`
	PhotoURLs   []string           `bson:"photo_urls" json:"photo_urls"`
	Trivia      string             `bson:"trivia,omitempty" json:"trivia"`
	NameAmharic string             `bson:"name_amharic,omitempty" json:"name_amharic"`
	Ratings     []Rating           `bson:"ratings" json:"ratings"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type DrinkResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Region      string    `json:"region"`
	Description string    `json:"description"`
	PhotoURLs   []string  `json:"photo_urls"`
	Trivia      string    `json:"trivia"`
	NameAmharic string    `json:"name_amharic"`
	Ratings     []Rating  `json:"ratings"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemID implements CatalogItem.
func (d *Drink) ItemID() primitive.ObjectID { return d.ID }

func (d *Drink) DisplayName(lang string) string {
	if lang == "am" && d.NameAmharic != "" {
		return d.NameAmharic
	}
	return d.Name
}

func (d *Drink) Serialize(lang string) any {
	return DrinkResponse{
		ID:          d.ID.Hex(),
		Name:        d.DisplayName(lang),
		Type:        "drink",
		Region:      d.Region,
		Description: d.Description,
		PhotoURLs:   orEmpty(d.PhotoURLs),
		Trivia:      d.Trivia,
		NameAmharic: d.NameAmharic,
		Ratings:     orEmptyRatings(d.Ratings),
		CreatedAt:   d.CreatedAt,
	}
}

func (d *Drink) Document(now time.Time) *Drink {
	d.ID = primitive.NilObjectID
	d.Type = "drink"
	d.CreatedAt = now
	if d.Ratings == nil {
		d.Ratings = []Rating{}
	}
	return d
}

func (d *Drink) UpdateDocument() bson.M {
	set := bson.M{}
	setString(set, "name", d.Name)
	setString(set, "region", d.Region)
	setString(set, "description", d.Description)
	setString(set, "trivia", d.Trivia)
	setString(set, "name_amharic", d.NameAmharic)
	setStrings(set, "photo_urls", d.PhotoURLs)
	return set
}
