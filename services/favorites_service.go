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

// FavoritesService maintains the set-valued favorites and tried_items
// relations on user documents. Existence check and mutation are two separate
// store calls; a concurrent delete of the item in between is an accepted race.
type FavoritesService struct {
	users   database.Collection
	catalog *CatalogService
}

func NewFavoritesService(db *database.DB, catalog *CatalogService) *FavoritesService {
	return &FavoritesService{users: db.Users, catalog: catalog}
}

// AddFavorite records an item in the user's favorites set. Adding an item
// already present is a no-op, not an error.
func (s *FavoritesService) AddFavorite(ctx context.Context, userID primitive.ObjectID, itemID string) error {
	return s.addTo(ctx, "favorites", userID, itemID)
}

// AddTried records an item in the user's tried_items set.
func (s *FavoritesService) AddTried(ctx context.Context, userID primitive.ObjectID, itemID string) error {
	return s.addTo(ctx, "tried_items", userID, itemID)
}

func (s *FavoritesService) addTo(ctx context.Context, field string, userID primitive.ObjectID, itemID string) error {
	oid, err := parseID(itemID)
	if err != nil {
		return err
	}
	if _, err := s.catalog.FindItem(ctx, oid); err != nil {
		return err
	}

	matched, err := s.users.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{field: oid}})
	if err != nil {
		return fmt.Errorf("update user %s: %w", field, err)
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFavorites resolves each stored favorite against the catalog; ids that no
// longer resolve are silently dropped.
func (s *FavoritesService) ListFavorites(ctx context.Context, userID primitive.ObjectID, lang string) ([]any, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.Favorites, lang)
}

// ListTried resolves each stored tried item the same way.
func (s *FavoritesService) ListTried(ctx context.Context, userID primitive.ObjectID, lang string) ([]any, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.TriedItems, lang)
}

func (s *FavoritesService) findUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}, &user); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *FavoritesService) resolve(ctx context.Context, ids []primitive.ObjectID, lang string) ([]any, error) {
	items := make([]any, 0, len(ids))
	for _, id := range ids {
		item, err := s.catalog.FindItem(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, item.Serialize(lang))
	}
	return items, nil
}
