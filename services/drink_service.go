package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/models"
)

// DrinkService mirrors FoodService over the drinks collection. Drinks carry no
// ingredients, so there is no quiz.
type DrinkService struct {
	drinks database.Collection
}

func NewDrinkService(db *database.DB) *DrinkService {
	return &DrinkService{drinks: db.Drinks}
}

func (s *DrinkService) Create(ctx context.Context, drink *models.Drink) (any, error) {
	doc := drink.Document(time.Now().UTC())
	oid, err := s.drinks.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert drink: %w", err)
	}

	var created models.Drink
	if err := s.drinks.FindOne(ctx, bson.M{"_id": oid}, &created); err != nil {
		return nil, fmt.Errorf("read back drink: %w", err)
	}
	return created.Serialize(""), nil
}

func (s *DrinkService) List(ctx context.Context, lang string) ([]any, error) {
	var drinks []models.Drink
	if err := s.drinks.Find(ctx, bson.M{}, &drinks); err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	out := make([]any, 0, len(drinks))
	for i := range drinks {
		out = append(out, drinks[i].Serialize(lang))
	}
	return out, nil
}

func (s *DrinkService) Get(ctx context.Context, id, lang string) (any, error) {
	drink, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return drink.Serialize(lang), nil
}

func (s *DrinkService) Update(ctx context.Context, id string, drink *models.Drink) (any, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if set := drink.UpdateDocument(); len(set) > 0 {
		matched, err := s.drinks.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("update drink: %w", err)
		}
		if matched == 0 {
			return nil, ErrNotFound
		}
	}

	var updated models.Drink
	if err := s.drinks.FindOne(ctx, bson.M{"_id": oid}, &updated); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read back drink: %w", err)
	}
	return updated.Serialize(""), nil
}

func (s *DrinkService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.drinks.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete drink: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DrinkService) Random(ctx context.Context, lang string) (any, error) {
	var drinks []models.Drink
	if err := s.drinks.Aggregate(ctx, samplePipeline(1), &drinks); err != nil {
		return nil, fmt.Errorf("sample drink: %w", err)
	}
	if len(drinks) == 0 {
		return nil, ErrNotFound
	}
	return drinks[0].Serialize(lang), nil
}

func (s *DrinkService) Rate(ctx context.Context, id, userID string, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	matched, err := s.drinks.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$push": bson.M{"ratings": models.Rating{UserID: userID, Score: score}}})
	if err != nil {
		return fmt.Errorf("rate drink: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DrinkService) Share(ctx context.Context, id, lang string) (string, error) {
	drink, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return shareText(drink.DisplayName(lang), drink.Description), nil
}

func (s *DrinkService) Popular(ctx context.Context, limit int, lang string) ([]any, error) {
	if limit <= 0 {
		limit = 10
	}
	var drinks []models.Drink
	if err := s.drinks.Aggregate(ctx, popularPipeline(limit), &drinks); err != nil {
		return nil, fmt.Errorf("rank drinks: %w", err)
	}
	out := make([]any, 0, len(drinks))
	for i := range drinks {
		out = append(out, drinks[i].Serialize(lang))
	}
	return out, nil
}

func (s *DrinkService) AddPhoto(ctx context.Context, id, url string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	matched, err := s.drinks.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$push": bson.M{"photo_urls": url}})
	if err != nil {
		return fmt.Errorf("add drink photo: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DrinkService) find(ctx context.Context, id string) (*models.Drink, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var drink models.Drink
	if err := s.drinks.FindOne(ctx, bson.M{"_id": oid}, &drink); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find drink: %w", err)
	}
	return &drink, nil
}
