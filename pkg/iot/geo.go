package iot

import (
	"math"

	"liyu1981.xyz/co2-monitor/pkg/models"
)

// Bounds centres a map on the located devices. It reports false when no
// device has coordinates.
func Bounds(devices []models.Device) (models.MapBounds, bool) {
	var b models.MapBounds
	var sumLat, sumLon float64

	b.MinLatitude, b.MinLongitude = math.Inf(1), math.Inf(1)
	b.MaxLatitude, b.MaxLongitude = math.Inf(-1), math.Inf(-1)

	for _, d := range devices {
		if !d.Located() {
			continue
		}
		lat, lon := *d.Latitude, *d.Longitude
		sumLat += lat
		sumLon += lon
		b.MinLatitude = math.Min(b.MinLatitude, lat)
		b.MaxLatitude = math.Max(b.MaxLatitude, lat)
		b.MinLongitude = math.Min(b.MinLongitude, lon)
		b.MaxLongitude = math.Max(b.MaxLongitude, lon)
		b.Devices++
	}

	if b.Devices == 0 {
		return models.MapBounds{}, false
	}

	b.CenterLatitude = sumLat / float64(b.Devices)
	b.CenterLongitude = sumLon / float64(b.Devices)
	return b, true
}
