// Package downsample reduces time ordered chart samples for display.
package downsample

import (
	"errors"
	"math"

	"liyu1981.xyz/co2-monitor/pkg/models"
)

var ErrInvalidArgument = errors.New("downsample: ratio must be a positive integer")

// Stride keeps every ratio-th point starting with the first one.
func Stride(points []models.Point, ratio int) ([]models.Point, error) {
	if ratio <= 0 {
		return nil, ErrInvalidArgument
	}

	result := make([]models.Point, 0, (len(points)+ratio-1)/ratio)
	for i := 0; i < len(points); i += ratio {
		result = append(result, points[i])
	}
	return result, nil
}

// MaxBucket splits points into consecutive buckets of ratio and keeps the
// point with the greatest Y of each bucket, first one on ties.
//
// Each bucket starts from the {0, 0} sentinel, so a bucket holding only
// values <= 0 yields the sentinel itself. Callers feed it readings above a
// positive threshold, where the sentinel cannot occur.
func MaxBucket(points []models.Point, ratio int) ([]models.Point, error) {
	if ratio <= 0 {
		return nil, ErrInvalidArgument
	}

	result := make([]models.Point, 0, (len(points)+ratio-1)/ratio)
	for i := 0; i < len(points); i += ratio {
		maxElement := models.Point{X: 0, Y: 0}
		for j := i; j < i+ratio && j < len(points); j++ {
			if points[j].Y > maxElement.Y {
				maxElement = points[j]
			}
		}
		result = append(result, maxElement)
	}
	return result, nil
}

// ChartRatio is the stride used for a history window of the given hours:
// twice the rounded square root, so longer windows are thinned harder.
func ChartRatio(hours int) int {
	if hours <= 0 {
		return 1
	}
	ratio := 2 * int(math.Round(math.Sqrt(float64(hours))))
	if ratio < 1 {
		return 1
	}
	return ratio
}
