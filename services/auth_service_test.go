package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/models"
	"github.com/BiniyamTG/Injera-Beyond/utils"
)

var testSecret = []byte("test-secret")

func authServiceWith(users *stubCollection) *AuthService {
	return NewAuthService(&database.DB{Users: users}, testSecret, nil)
}

func TestRegister(t *testing.T) {
	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := authServiceWith(&stubCollection{
			findOne: func(filter, out any) error {
				*(out.(*models.User)) = models.User{ID: primitive.NewObjectID(), Email: "taken@example.com"}
				return nil
			},
		})
		_, err := svc.Register(context.Background(), "abebe", "taken@example.com", "pw")
		if !errors.Is(err, ErrConflict) {
			t.Errorf("err = %v, want ErrConflict", err)
		}
	})

	t.Run("stores a hash, never the plaintext", func(t *testing.T) {
		oid := primitive.NewObjectID()
		var stored *models.User
		svc := authServiceWith(&stubCollection{
			findOne: func(filter, out any) error {
				f := filter.(bson.M)
				if _, byEmail := f["email"]; byEmail {
					return database.ErrNoDocuments
				}
				u := *stored
				u.ID = oid
				*(out.(*models.User)) = u
				return nil
			},
			insertOne: func(doc any) (primitive.ObjectID, error) {
				stored = doc.(*models.User)
				return oid, nil
			},
		})

		resp, err := svc.Register(context.Background(), "abebe", "abebe@example.com", "injera123")
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if stored.Password == "injera123" {
			t.Error("plaintext password must not be stored")
		}
		if !utils.CheckPasswordHash("injera123", stored.Password) {
			t.Error("stored hash should verify the original password")
		}
		if stored.Favorites == nil || stored.TriedItems == nil {
			t.Error("favorites and tried_items should start as empty sets")
		}
		if stored.CreatedAt.IsZero() || time.Since(stored.CreatedAt) > time.Minute {
			t.Errorf("created_at = %v, want a fresh timestamp", stored.CreatedAt)
		}
		if resp.ID != oid.Hex() {
			t.Errorf("response id = %q, want the generated id", resp.ID)
		}
	})
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("injera123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{ID: primitive.NewObjectID(), Email: "abebe@example.com", Password: hash}

	t.Run("unknown email", func(t *testing.T) {
		svc := authServiceWith(&stubCollection{
			findOne: func(filter, out any) error { return database.ErrNoDocuments },
		})
		if _, err := svc.Login(context.Background(), "ghost@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := authServiceWith(&stubCollection{
			findOne: func(filter, out any) error {
				*(out.(*models.User)) = user
				return nil
			},
		})
		if _, err := svc.Login(context.Background(), user.Email, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("issued token authenticates back to the user", func(t *testing.T) {
		svc := authServiceWith(&stubCollection{
			findOne: func(filter, out any) error {
				*(out.(*models.User)) = user
				return nil
			},
		})
		token, err := svc.Login(context.Background(), user.Email, "injera123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		got, err := svc.Authenticate(context.Background(), token)
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("authenticated user = %v, want %v", got.ID, user.ID)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("garbage token is unauthorized", func(t *testing.T) {
		svc := authServiceWith(&stubCollection{})
		if _, err := svc.Authenticate(context.Background(), "garbage"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("valid token with a vanished user is not found", func(t *testing.T) {
		token, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), testSecret)
		if err != nil {
			t.Fatalf("GenerateJWT: %v", err)
		}
		svc := authServiceWith(&stubCollection{
			findOne: func(filter, out any) error { return database.ErrNoDocuments },
		})
		if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
