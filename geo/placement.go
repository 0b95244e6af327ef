// Package geo maps geographic coordinates onto the unit sphere used by the globe.
package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Placement returns the point on the unit sphere for a latitude and longitude in
// degrees. Latitude 0, longitude 0 maps to +Z, longitude 90 to +X and the north pole
// to +Y. Inputs are not range checked.
func Placement(latDeg, lonDeg float64) mgl64.Vec3 {
	lat := DegreesToRadians(latDeg)
	lon := DegreesToRadians(lonDeg)
	cosLat := math.Cos(lat)
	return mgl64.Vec3{
		cosLat * math.Sin(lon),
		math.Sin(lat),
		cosLat * math.Cos(lon),
	}
}

// TextureUV returns equirectangular texture coordinates for a latitude and longitude.
// u runs 0..1 from longitude -180 to 180, v runs 0..1 from the north pole to the south.
func TextureUV(latDeg, lonDeg float64) (u, v float64) {
	return (lonDeg + 180) / 360, (90 - latDeg) / 180
}

func DegreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
