package iot

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/co2-monitor/pkg/common"
)

// Watch owns feed for its whole life: it becomes the registrar, devices
// already in the inventory are registered, and events are merged until ctx
// is done or the connection ends. On return the merger is detached and the
// feed closed, whatever the outcome.
func (i *IOT) Watch(ctx context.Context, feed Feed) error {
	logger := common.GetLoggerWith(common.LoggerNameLiveFeed)

	i.SetRegistrar(feed)
	i.Merger.Attach()

	defer func() {
		i.Merger.Detach()
		if err := feed.Close(); err != nil {
			logger.Warn("Failed to close live feed", zap.Error(err))
		}
	}()

	for _, device := range i.Inventory.Snapshot() {
		if err := feed.Register(ctx, device.ID); err != nil {
			logger.Warn("Failed to register device on live feed", zap.String("device_id", device.ID), zap.Error(err))
		}
	}

	if err := feed.Connect(ctx); err != nil {
		return err
	}

	// HandleMessage logs what it drops
	err := feed.Run(ctx, func(payload []byte) {
		_ = i.Merger.HandleMessage(ctx, payload)
	})
	if err != nil {
		logger.Error("Live feed ended", zap.Error(err))
		return err
	}
	logger.Info("Live feed ended")
	return nil
}
