// Package geo computes great-circle distance and travel time between two
// WGS-84 points. It has no dependency on anything else in the module.
package geo

import (
	"math"

	"github.com/attendite/transferengine/internal/transfer/domain"
)

// earthRadiusKM is the mean Earth radius used for the Haversine formula.
const earthRadiusKM = 6371.0

const (
	groundSpeedKMH = 50.0
	airSpeedKMH    = 200.0
)

// DistanceKM returns the great-circle distance between two points in
// kilometers.
func DistanceKM(a, b domain.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)

	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

// SpeedKMH returns the travel speed for a transport mode. Ground is the
// default for any mode value other than Air.
func SpeedKMH(mode domain.TransportMode) float64 {
	if mode == domain.TransportAir {
		return airSpeedKMH
	}
	return groundSpeedKMH
}

// ETAMinutes returns travel time in minutes between two points at the
// speed implied by mode.
func ETAMinutes(a, b domain.GeoPoint, mode domain.TransportMode) float64 {
	km := DistanceKM(a, b)
	return (km / SpeedKMH(mode)) * 60
}
