package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document. The password field holds only the bcrypt hash
// and is never serialized out.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username   string               `bson:"username" json:"username"`
	Email      string               `bson:"email" json:"email"`
	Password   string               `bson:"password" json:"-"`
	Favorites  []primitive.ObjectID `bson:"favorites" json:"favorites"`
	TriedItems []primitive.ObjectID `bson:"tried_items" json:"tried_items"`
	CreatedAt  time.Time            `bson:"created_at" json:"created_at"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Favorites  []string  `json:"favorites"`
	TriedItems []string  `json:"tried_items"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) Serialize() UserResponse {
	return UserResponse{
		ID:         u.ID.Hex(),
		Username:   u.Username,
		Email:      u.Email,
		Favorites:  hexIDs(u.Favorites),
		TriedItems: hexIDs(u.TriedItems),
		CreatedAt:  u.CreatedAt,
	}
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
