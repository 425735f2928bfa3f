package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/models"
)

// FoodService owns all operations over the foods collection.
type FoodService struct {
	foods database.Collection
}

func NewFoodService(db *database.DB) *FoodService {
	return &FoodService{foods: db.Foods}
}

// QuizResponse pairs one food's ingredient list with four candidate names.
// The first sampled food is always the correct answer.
type QuizResponse struct {
	Ingredients   []string `json:"ingredients"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// parseID normalizes malformed hex ids to ErrNotFound so they never surface
// as a server error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func samplePipeline(n int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	}
}

// popularPipeline ranks entries by how many users have the entry in their
// tried_items set. Ties keep the store's stable order for the run.
func popularPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "tried_items"},
			{Key: "as", Value: "tried_by"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "tried_count", Value: bson.D{{Key: "$size", Value: "$tried_by"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "tried_count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

func (s *FoodService) Create(ctx context.Context, food *models.Food) (any, error) {
	doc := food.Document(time.Now().UTC())
	oid, err := s.foods.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert food: %w", err)
	}

	var created models.Food
	if err := s.foods.FindOne(ctx, bson.M{"_id": oid}, &created); err != nil {
		return nil, fmt.Errorf("read back food: %w", err)
	}
	return created.Serialize(""), nil
}

func (s *FoodService) List(ctx context.Context, vegetarian *bool, spicyLevel, lang string) ([]any, error) {
	filter := bson.M{}
	if vegetarian != nil {
		filter["vegetarian"] = *vegetarian
	}
	if spicyLevel != "" {
		filter["spicy_level"] = spicyLevel
	}

	var foods []models.Food
	if err := s.foods.Find(ctx, filter, &foods); err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	out := make([]any, 0, len(foods))
	for i := range foods {
		out = append(out, foods[i].Serialize(lang))
	}
	return out, nil
}

func (s *FoodService) Get(ctx context.Context, id, lang string) (any, error) {
	food, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return food.Serialize(lang), nil
}

func (s *FoodService) Update(ctx context.Context, id string, food *models.Food) (any, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if set := food.UpdateDocument(); len(set) > 0 {
		matched, err := s.foods.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("update food: %w", err)
		}
		if matched == 0 {
			return nil, ErrNotFound
		}
	}

	var updated models.Food
	if err := s.foods.FindOne(ctx, bson.M{"_id": oid}, &updated); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read back food: %w", err)
	}
	return updated.Serialize(""), nil
}

func (s *FoodService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.foods.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FoodService) Random(ctx context.Context, lang string) (any, error) {
	var foods []models.Food
	if err := s.foods.Aggregate(ctx, samplePipeline(1), &foods); err != nil {
		return nil, fmt.Errorf("sample food: %w", err)
	}
	if len(foods) == 0 {
		return nil, ErrNotFound
	}
	return foods[0].Serialize(lang), nil
}

func (s *FoodService) Quiz(ctx context.Context) (*QuizResponse, error) {
	var foods []models.Food
	if err := s.foods.Aggregate(ctx, samplePipeline(4), &foods); err != nil {
		return nil, fmt.Errorf("sample foods: %w", err)
	}
	if len(foods) == 0 {
		return nil, ErrNotFound
	}

	options := make([]string, 0, len(foods))
	for i := range foods {
		options = append(options, foods[i].Name)
	}
	ingredients := foods[0].Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return &QuizResponse{
		Ingredients:   ingredients,
		Options:       options,
		CorrectAnswer: foods[0].Name,
	}, nil
}

func (s *FoodService) Rate(ctx context.Context, id, userID string, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	matched, err := s.foods.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$push": bson.M{"ratings": models.Rating{UserID: userID, Score: score}}})
	if err != nil {
		return fmt.Errorf("rate food: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FoodService) Share(ctx context.Context, id, lang string) (string, error) {
	food, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return shareText(food.DisplayName(lang), food.Description), nil
}

func (s *FoodService) Popular(ctx context.Context, limit int, lang string) ([]any, error) {
	if limit <= 0 {
		limit = 10
	}
	var foods []models.Food
	if err := s.foods.Aggregate(ctx, popularPipeline(limit), &foods); err != nil {
		return nil, fmt.Errorf("rank foods: %w", err)
	}
	out := make([]any, 0, len(foods))
	for i := range foods {
		out = append(out, foods[i].Serialize(lang))
	}
	return out, nil
}

func (s *FoodService) AddPhoto(ctx context.Context, id, url string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	matched, err := s.foods.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$push": bson.M{"photo_urls": url}})
	if err != nil {
		return fmt.Errorf("add food photo: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FoodService) find(ctx context.Context, id string) (*models.Food, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var food models.Food
	if err := s.foods.FindOne(ctx, bson.M{"_id": oid}, &food); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find food: %w", err)
	}
	return &food, nil
}

// shareText renders the promotional blurb, tolerating a missing description.
func shareText(name, description string) string {
	text := fmt.Sprintf("Try %s in Ethiopia!", name)
	if description != "" {
		text += " " + description
	}
	return text
}
