package iot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/downsample"
	"liyu1981.xyz/co2-monitor/pkg/models"
)

// HistoryRanges are the selectable history windows in hours: last hour,
// 3 hours, day, week and month.
var HistoryRanges = []int{1, 3, 24, 168, 720}

const alertBucketSize = 3

func ValidHistoryRange(hours int) bool {
	for _, h := range HistoryRanges {
		if h == hours {
			return true
		}
	}
	return false
}

// History loads the readings of the last hours and prepares the chart series
// and the alert list of readings above the warning threshold.
func (i *IOT) History(ctx context.Context, deviceID string, hours int) (*models.DeviceHistory, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTHistory),
	)

	if hours <= 0 {
		return nil, fmt.Errorf("history window must be positive, got %d hours", hours)
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	readings, err := i.Backend.RetrieveReadings(ctx, deviceID, since)
	if err != nil {
		logger.Error("Failed to retrieve readings", zap.String("device_id", deviceID), zap.Error(err))
		return nil, fmt.Errorf("%w: retrieve readings %s: %w", ErrNetwork, deviceID, err)
	}

	points := common.Mapper(readings, func(r models.Reading) models.Point {
		return models.Point{X: r.GenDate.UnixMilli(), Y: r.CO2}
	})

	chart, err := downsample.Stride(points, downsample.ChartRatio(hours))
	if err != nil {
		return nil, err
	}

	aboveThreshold := common.Filter(points, func(p models.Point) bool {
		return p.Y > i.WarningThreshold
	})
	alerts, err := downsample.MaxBucket(aboveThreshold, alertBucketSize)
	if err != nil {
		return nil, err
	}

	history := &models.DeviceHistory{
		DeviceID: deviceID,
		Hours:    hours,
		Readings: points,
		Chart:    chart,
		Alerts:   alerts,
	}
	if len(points) > 0 {
		live := points[len(points)-1].Y
		history.Live = &live
	}

	logger.Info("Loaded history",
		zap.String("device_id", deviceID),
		zap.Int("hours", hours),
		zap.Int("readings", len(points)),
		zap.Int("alerts", len(alerts)))

	return history, nil
}

// OpenAlerts loads the alert list of a device and marks it as being viewed,
// which acknowledges its warnings when the list is not empty.
func (i *IOT) OpenAlerts(ctx context.Context, deviceID string, hours int) (*models.DeviceHistory, error) {
	history, err := i.History(ctx, deviceID, hours)
	if err != nil {
		return nil, err
	}
	i.Ledger.OpenAlerts(ctx, deviceID, len(history.Alerts))
	return history, nil
}

func (i *IOT) CloseAlerts(deviceID string) {
	i.Ledger.CloseAlerts(deviceID)
}
