package core

import "math"

// Flattening of the WGS84 reference ellipsoid.
const wgs84Flattening = 1 / 298.257223563

// EpicentralDistanceDeg returns the great-circle distance in degrees
// between two geographic points given as latitude, longitude degree
// pairs, by the haversine formula.
func EpicentralDistanceDeg(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dp := (lat2 - lat1) * math.Pi / 180
	dl := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)) * 180 / math.Pi
}

// AzimuthDeg returns the initial bearing in degrees east of north for the
// great circle from point 1 to point 2, in [0, 360).
func AzimuthDeg(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dl := (lon2 - lon1) * math.Pi / 180
	y := math.Sin(dl) * math.Cos(p2)
	x := math.Cos(p1)*math.Sin(p2) - math.Sin(p1)*math.Cos(p2)*math.Cos(dl)
	az := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(az+360, 360)
}

// GeocentricLatitudeDeg converts a geodetic latitude in degrees to the
// geocentric latitude the correction formula expects.
func GeocentricLatitudeDeg(geodeticLatDeg float64) float64 {
	lat := geodeticLatDeg * math.Pi / 180
	g := (1 - wgs84Flattening) * (1 - wgs84Flattening)
	return math.Atan(g*math.Tan(lat)) * 180 / math.Pi
}
