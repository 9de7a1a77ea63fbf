package geo

import (
	"math"

	"github.com/golang/geo/r2"
)

// EuclideanDistance straight-line distance between two planar points (x, y).
func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	from := r2.Point{X: x1, Y: y1}
	to := r2.Point{X: x2, Y: y2}
	return to.Sub(from).Norm()
}

// haversine distance
const earthRadiusKM = 6371.0

type Location struct {
	Latitude  float64
	Longitude float64
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func NewLocation(latDegree float64, lonDegree float64) Location {
	return Location{
		Latitude:  degreeToRadians(latDegree),
		Longitude: degreeToRadians(lonDegree),
	}
}

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func havFormula(locationOne Location, locationTwo Location) float64 {
	latitudeDiff := locationOne.Latitude - locationTwo.Latitude
	longitudeDiff := locationOne.Longitude - locationTwo.Longitude

	havLatitude := havFunction(latitudeDiff)
	havLongitude := havFunction(longitudeDiff)

	return havLatitude + math.Cos(locationOne.Latitude)*math.Cos(locationTwo.Latitude)*havLongitude
}

func archaversine(havAngle float64) float64 {
	return 2.0 * math.Asin(math.Sqrt(havAngle))
}

// HaversineDistance great-circle distance in km.
func HaversineDistance(locationOne Location, locationTwo Location) float64 {
	centralAngleRad := archaversine(havFormula(locationOne, locationTwo))
	return earthRadiusKM * centralAngleRad
}

// ProjectEquirectangular project lat/lon (degrees) ke bidang datar (km) relatif terhadap titik referensi.
// cukup akurat untuk jarak antar stasiun dalam satu kota.
func ProjectEquirectangular(lat, lon, refLat, refLon float64) (x, y float64) {
	x = earthRadiusKM * degreeToRadians(lon-refLon) * math.Cos(degreeToRadians(refLat))
	y = earthRadiusKM * degreeToRadians(lat-refLat)
	return x, y
}
