package utils

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		if d := HaversineKm(9.03, 38.74, 9.03, 38.74); d != 0 {
			t.Errorf("distance between identical points = %f, want 0", d)
		}
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := HaversineKm(0, 0, 1, 0)
		if math.Abs(d-111.19) > 0.1 {
			t.Errorf("one degree of latitude = %f km, want ~111.19", d)
		}
	})

	// Reference point is Addis Ababa; 0.0890 degrees of latitude is ~9.9 km,
	// 0.0990 is ~11 km. These bracket the 10 km nearby radius.
	t.Run("9.9 km is inside the 10 km radius", func(t *testing.T) {
		d := HaversineKm(9.03, 38.74, 9.03+0.0890, 38.74)
		if d < 9.8 || d > 10.0 {
			t.Fatalf("distance = %f km, want ~9.9", d)
		}
		if d >= 10 {
			t.Errorf("distance %f should be inside the 10 km radius", d)
		}
	})

	t.Run("11 km is outside the 10 km radius", func(t *testing.T) {
		d := HaversineKm(9.03, 38.74, 9.03+0.0990, 38.74)
		if d < 10.9 || d > 11.1 {
			t.Fatalf("distance = %f km, want ~11", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineKm(9.03, 38.74, 13.49, 39.47)
		b := HaversineKm(13.49, 39.47, 9.03, 38.74)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("distance not symmetric: %f vs %f", a, b)
		}
	})
}

func TestParseRestaurantCoords(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		lat, lon, ok := ParseRestaurantCoords("Kategna, Bole Road, 9.0107, 38.7613, Addis Ababa")
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		if lat != 9.0107 || lon != 38.7613 {
			t.Errorf("got (%f, %f), want (9.0107, 38.7613)", lat, lon)
		}
	})

	t.Run("exactly four fields", func(t *testing.T) {
		_, _, ok := ParseRestaurantCoords("Yod Abyssinia, Wollo Sefer, 8.9936, 38.7846")
		if !ok {
			t.Error("expected parse to succeed with four fields")
		}
	})

	t.Run("too few fields", func(t *testing.T) {
		if _, _, ok := ParseRestaurantCoords("Kategna, Bole Road"); ok {
			t.Error("expected parse to fail with two fields")
		}
	})

	t.Run("non-numeric latitude", func(t *testing.T) {
		if _, _, ok := ParseRestaurantCoords("Kategna, Bole Road, north, 38.76"); ok {
			t.Error("expected parse to fail on non-numeric latitude")
		}
	})

	t.Run("non-numeric longitude", func(t *testing.T) {
		if _, _, ok := ParseRestaurantCoords("Kategna, Bole Road, 9.01, east"); ok {
			t.Error("expected parse to fail on non-numeric longitude")
		}
	})

	t.Run("empty string", func(t *testing.T) {
		if _, _, ok := ParseRestaurantCoords(""); ok {
			t.Error("expected parse to fail on empty string")
		}
	})
}
