package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/models"
	"github.com/BiniyamTG/Injera-Beyond/utils"
)

// AuthService handles registration, login and token authentication. It is the
// single authorization gate reused by every write-class endpoint.
type AuthService struct {
	users  database.Collection
	secret []byte
	mailer *utils.Mailer
}

// NewAuthService takes the JWT secret and an optional mailer (nil disables the
// welcome email).
func NewAuthService(db *database.DB, secret []byte, mailer *utils.Mailer) *AuthService {
	return &AuthService{users: db.Users, secret: secret, mailer: mailer}
}

// Register creates an account, rejecting duplicate emails. The plaintext
// password is discarded right after hashing.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserResponse, error) {
	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}, &existing)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, database.ErrNoDocuments) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:   username,
		Email:      email,
		Password:   hashed,
		Favorites:  []primitive.ObjectID{},
		TriedItems: []primitive.ObjectID{},
		CreatedAt:  time.Now().UTC(),
	}
	oid, err := s.users.InsertOne(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	var created models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}, &created); err != nil {
		return nil, fmt.Errorf("read back user: %w", err)
	}

	if s.mailer != nil {
		// Best effort; registration never fails on a mail error.
		go s.mailer.SendWelcomeEmail(context.Background(), created.Email, created.Username)
	}

	resp := created.Serialize()
	return &resp, nil
}

// Login verifies credentials and issues a one-hour bearer token with the user
// id as subject.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}, &user); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	token, err := utils.GenerateJWT(user.ID.Hex(), s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Authenticate validates a bearer token and resolves its subject to a user.
// A bad token is ErrInvalidToken (401); a valid token whose subject no longer
// resolves is ErrNotFound (404).
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	sub, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	oid, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}, &user); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// ListUsers returns every account projection. The route is authenticated.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	var users []models.User
	if err := s.users.Find(ctx, bson.M{}, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].Serialize())
	}
	return out, nil
}
