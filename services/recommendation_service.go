package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/models"
	"github.com/BiniyamTG/Injera-Beyond/utils"
)

// nearbyRadiusKm bounds the proximity search for restaurant suggestions.
const nearbyRadiusKm = 10.0

// RecommendationService builds read-only derived views over both entity
// collections. All of its endpoints are unauthenticated.
type RecommendationService struct {
	foods  database.Collection
	drinks database.Collection
}

func NewRecommendationService(db *database.DB) *RecommendationService {
	return &RecommendationService{foods: db.Foods, drinks: db.Drinks}
}

// RandomAny picks one of the two collections uniformly at random and samples a
// single document from it. An empty chosen collection is ErrNotFound; there is
// deliberately no fallback to the other collection.
func (s *RecommendationService) RandomAny(ctx context.Context, lang string) (any, error) {
	if rand.Intn(2) == 0 {
		var foods []models.Food
		if err := s.foods.Aggregate(ctx, samplePipeline(1), &foods); err != nil {
			return nil, fmt.Errorf("sample food: %w", err)
		}
		if len(foods) == 0 {
			return nil, ErrNotFound
		}
		return foods[0].Serialize(lang), nil
	}

	var drinks []models.Drink
	if err := s.drinks.Aggregate(ctx, samplePipeline(1), &drinks); err != nil {
		return nil, fmt.Errorf("sample drink: %w", err)
	}
	if len(drinks) == 0 {
		return nil, ErrNotFound
	}
	return drinks[0].Serialize(lang), nil
}

// ByRegion unions foods and drinks whose region matches exactly.
func (s *RecommendationService) ByRegion(ctx context.Context, region, lang string) ([]any, error) {
	var foods []models.Food
	if err := s.foods.Find(ctx, bson.M{"region": region}, &foods); err != nil {
		return nil, fmt.Errorf("find foods by region: %w", err)
	}
	var drinks []models.Drink
	if err := s.drinks.Find(ctx, bson.M{"region": region}, &drinks); err != nil {
		return nil, fmt.Errorf("find drinks by region: %w", err)
	}

	items := make([]any, 0, len(foods)+len(drinks))
	for i := range foods {
		items = append(items, foods[i].Serialize(lang))
	}
	for i := range drinks {
		items = append(items, drinks[i].Serialize(lang))
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

// Daily samples one random food, falling back to a drink only when no foods
// exist. The food bias is intentional.
func (s *RecommendationService) Daily(ctx context.Context, lang string) (any, error) {
	var foods []models.Food
	if err := s.foods.Aggregate(ctx, samplePipeline(1), &foods); err != nil {
		return nil, fmt.Errorf("sample food: %w", err)
	}
	if len(foods) > 0 {
		return foods[0].Serialize(lang), nil
	}

	var drinks []models.Drink
	if err := s.drinks.Aggregate(ctx, samplePipeline(1), &drinks); err != nil {
		return nil, fmt.Errorf("sample drink: %w", err)
	}
	if len(drinks) > 0 {
		return drinks[0].Serialize(lang), nil
	}
	return nil, ErrNotFound
}

// Nearby returns foods that have at least one restaurant suggestion within
// 10 km of the query point. Suggestions that cannot be parsed are skipped and
// each food appears at most once however many of its restaurants qualify.
func (s *RecommendationService) Nearby(ctx context.Context, lat, lon float64, lang string) ([]any, error) {
	var foods []models.Food
	if err := s.foods.Find(ctx, bson.M{}, &foods); err != nil {
		return nil, fmt.Errorf("scan foods: %w", err)
	}

	items := make([]any, 0)
	for i := range foods {
		if foodWithinRadius(&foods[i], lat, lon) {
			items = append(items, foods[i].Serialize(lang))
		}
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func foodWithinRadius(food *models.Food, lat, lon float64) bool {
	for _, suggestion := range food.RestaurantSuggestions {
		rLat, rLon, ok := utils.ParseRestaurantCoords(suggestion)
		if !ok {
			continue
		}
		if utils.HaversineKm(lat, lon, rLat, rLon) < nearbyRadiusKm {
			return true
		}
	}
	return false
}
