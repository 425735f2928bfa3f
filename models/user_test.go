package models

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserSerialize(t *testing.T) {
	fav := primitive.NewObjectID()
	user := User{
		ID:        primitive.NewObjectID(),
		Username:  "abebe",
		Email:     "abebe@example.com",
		Password:  "$2a$10$secret-hash",
		Favorites: []primitive.ObjectID{fav},
	}

	resp := user.Serialize()
	if resp.ID != user.ID.Hex() {
		t.Errorf("id = %q, want %q", resp.ID, user.ID.Hex())
	}
	if len(resp.Favorites) != 1 || resp.Favorites[0] != fav.Hex() {
		t.Errorf("favorites = %v, want the hex id", resp.Favorites)
	}
	if resp.TriedItems == nil {
		t.Error("nil tried_items should serialize as an empty list")
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "secret-hash") || strings.Contains(string(raw), "password") {
		t.Errorf("password must never be serialized: %s", raw)
	}
}
