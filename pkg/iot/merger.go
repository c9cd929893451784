package iot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/models"
)

// Merger routes live feed events into the inventory and the warning ledger.
// Events are handled one at a time by the feed's read loop.
type Merger struct {
	iot    *IOT
	active atomic.Bool
}

func NewMerger(iot *IOT) *Merger {
	m := &Merger{iot: iot}
	m.active.Store(true)
	return m
}

func (m *Merger) logger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTMerger),
	)
}

func (m *Merger) observe(status string) {
	if metrics := m.iot.Metrics; metrics != nil {
		metrics.FeedEventsTotal.WithLabelValues(status).Inc()
	}
}

// Attach resumes routing events.
func (m *Merger) Attach() {
	m.active.Store(true)
}

// Detach stops routing: events handled afterwards change nothing.
func (m *Merger) Detach() {
	m.active.Store(false)
}

func (m *Merger) Active() bool {
	return m.active.Load()
}

// streamPayload keeps a missing or null value apart from a reading of 0.
type streamPayload struct {
	ID                 string   `json:"id"`
	CO2EquivalentValue *float64 `json:"co2EquivalentValue"`
}

// HandleMessage decodes one raw feed payload and merges it.
func (m *Merger) HandleMessage(ctx context.Context, raw []byte) error {
	var event streamPayload
	if err := json.Unmarshal(raw, &event); err != nil {
		m.logger().Warn("Dropping malformed event", zap.ByteString("payload", raw), zap.Error(err))
		m.observe("parse_error")
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if event.ID == "" {
		m.logger().Warn("Dropping event without device id", zap.ByteString("payload", raw))
		m.observe("parse_error")
		return fmt.Errorf("%w: missing id", ErrParse)
	}
	if event.CO2EquivalentValue == nil {
		m.logger().Warn("Dropping event without value", zap.ByteString("payload", raw))
		m.observe("parse_error")
		return fmt.Errorf("%w: missing co2EquivalentValue", ErrParse)
	}

	m.Merge(ctx, models.StreamEvent{ID: event.ID, CO2EquivalentValue: *event.CO2EquivalentValue})
	return nil
}

// Merge stores the value rounded to two decimals on the matching device and
// counts a warning when it reaches the threshold. Events for unknown devices
// are dropped: the device may have been deleted a moment ago.
func (m *Merger) Merge(ctx context.Context, event models.StreamEvent) (models.Device, bool) {
	if !m.Active() {
		m.observe("detached")
		return models.Device{}, false
	}

	value := common.RoundTo(event.CO2EquivalentValue, 2)

	device, found := m.iot.Inventory.Merge(event.ID, value)
	if !found {
		m.logger().Debug("Dropping event for unknown device", zap.String("device_id", event.ID))
		m.observe("unknown_device")
		return models.Device{}, false
	}

	m.observe("merged")

	if value >= m.iot.WarningThreshold {
		m.logger().Info("Warning threshold reached",
			zap.String("device_id", event.ID),
			zap.Float64("co2", value),
			zap.Float64("threshold", m.iot.WarningThreshold))
		if metrics := m.iot.Metrics; metrics != nil {
			metrics.WarningsTotal.Inc()
		}
		m.iot.Ledger.Increment(ctx, event.ID)
	}

	return device, true
}
