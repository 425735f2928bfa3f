package utils

import (
	"math"
	"strconv"
	"strings"
)

const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance in kilometers between two
// points given in degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ParseRestaurantCoords extracts coordinates from a free-text restaurant
// suggestion of the form "name, address, lat, lon, ...". Entries with fewer
// than four fields or non-numeric coordinates are rejected, never fatal.
func ParseRestaurantCoords(suggestion string) (lat, lon float64, ok bool) {
	parts := strings.Split(suggestion, ", ")
	if len(parts) < 4 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
