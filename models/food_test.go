package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFoodSerialize(t *testing.T) {
	food := Food{
		ID:          primitive.NewObjectID(),
		Name:        "Doro Wat",
		Region:      "Amhara",
		NameAmharic: "ዶሮ ወጥ",
	}

	t.Run("default language keeps the name", func(t *testing.T) {
		resp := food.Serialize("en").(FoodResponse)
		if resp.Name != "Doro Wat" {
			t.Errorf("name = %q, want Doro Wat", resp.Name)
		}
		if resp.Type != "food" {
			t.Errorf("type = %q, want food", resp.Type)
		}
		if resp.ID != food.ID.Hex() {
			t.Errorf("id = %q, want %q", resp.ID, food.ID.Hex())
		}
	})

	t.Run("am substitutes the Amharic name", func(t *testing.T) {
		resp := food.Serialize("am").(FoodResponse)
		if resp.Name != "ዶሮ ወጥ" {
			t.Errorf("name = %q, want the Amharic name", resp.Name)
		}
		// The dedicated field is untouched either way.
		if resp.NameAmharic != "ዶሮ ወጥ" {
			t.Errorf("name_amharic = %q, want the Amharic name", resp.NameAmharic)
		}
	})

	t.Run("am without an Amharic name falls back", func(t *testing.T) {
		plain := Food{ID: primitive.NewObjectID(), Name: "Tibs"}
		resp := plain.Serialize("am").(FoodResponse)
		if resp.Name != "Tibs" {
			t.Errorf("name = %q, want the default name", resp.Name)
		}
	})

	t.Run("nil lists serialize as empty", func(t *testing.T) {
		resp := food.Serialize("en").(FoodResponse)
		if resp.Ingredients == nil || resp.PhotoURLs == nil || resp.RestaurantSuggestions == nil || resp.Ratings == nil {
			t.Error("nil slices should serialize as empty lists, not null")
		}
	})
}

func TestFoodDocument(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	food := Food{ID: primitive.NewObjectID(), Name: "Kitfo"}
	doc := food.Document(now)

	if !doc.ID.IsZero() {
		t.Error("client-supplied id should be cleared before insert")
	}
	if doc.Type != "food" {
		t.Errorf("type = %q, want food", doc.Type)
	}
	if !doc.CreatedAt.Equal(now) {
		t.Errorf("created_at = %v, want the supplied construction time", doc.CreatedAt)
	}
	if doc.Ratings == nil || len(doc.Ratings) != 0 {
		t.Error("ratings should start as an empty list")
	}
}

func TestFoodUpdateDocument(t *testing.T) {
	t.Run("only non-zero fields are set", func(t *testing.T) {
		food := Food{Name: "Shiro", SpicyLevel: "mild"}
		set := food.UpdateDocument()
		if len(set) != 2 {
			t.Fatalf("set has %d keys, want 2: %v", len(set), set)
		}
		if set["name"] != "Shiro" || set["spicy_level"] != "mild" {
			t.Errorf("unexpected set payload: %v", set)
		}
	})

	t.Run("false vegetarian is indistinguishable from omitted", func(t *testing.T) {
		food := Food{Vegetarian: false}
		if set := food.UpdateDocument(); len(set) != 0 {
			t.Errorf("vegetarian:false must not produce an update, got %v", set)
		}
	})

	t.Run("true vegetarian is set", func(t *testing.T) {
		food := Food{Vegetarian: true}
		set := food.UpdateDocument()
		if set["vegetarian"] != true {
			t.Errorf("vegetarian:true should be set, got %v", set)
		}
	})

	t.Run("empty lists are skipped", func(t *testing.T) {
		food := Food{Ingredients: []string{}, PhotoURLs: []string{}}
		if set := food.UpdateDocument(); len(set) != 0 {
			t.Errorf("empty lists must not clear stored data, got %v", set)
		}
	})

	t.Run("non-empty list is set", func(t *testing.T) {
		food := Food{Ingredients: []string{"teff", "berbere"}}
		set := food.UpdateDocument()
		if _, ok := set["ingredients"]; !ok {
			t.Errorf("ingredients should be set, got %v", set)
		}
	})
}
