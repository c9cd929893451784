package iot

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/models"
)

// Inventory is the in-memory list of the user's devices, in the order the
// backend first reported them. It is the only place device records change.
type Inventory struct {
	iot *IOT

	mu      sync.RWMutex
	devices []models.Device
	index   map[string]int
}

var _ IInventory = &Inventory{}

func NewInventory(iot *IOT) *Inventory {
	return &Inventory{
		iot:   iot,
		index: map[string]int{},
	}
}

func (inv *Inventory) logger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTInventory),
	)
}

func (inv *Inventory) reindex() {
	inv.index = make(map[string]int, len(inv.devices))
	for i, d := range inv.devices {
		inv.index[d.ID] = i
	}
}

func (inv *Inventory) observe(status string) {
	if m := inv.iot.Metrics; m != nil {
		m.RefreshTotal.WithLabelValues(status).Inc()
		inv.mu.RLock()
		m.InventoryDevices.Set(float64(len(inv.devices)))
		inv.mu.RUnlock()
	}
}

// Refresh fetches the full device list. Unknown devices are appended with no
// reading and registered on the live feed; known devices get their metadata
// updated but keep their last reading. Devices missing from the response stay,
// removal only happens through Remove.
func (inv *Inventory) Refresh(ctx context.Context) error {
	logger := inv.logger()

	fetched, err := inv.iot.Backend.RetrieveDevices(ctx)
	if err != nil {
		logger.Error("Failed to retrieve devices", zap.Error(err))
		inv.observe("error")
		return fmt.Errorf("%w: retrieve devices: %w", ErrNetwork, err)
	}

	var added []string

	inv.mu.Lock()
	for _, device := range fetched {
		if device.ID == "" {
			continue
		}
		if idx, found := inv.index[device.ID]; found {
			device.CO2 = inv.devices[idx].CO2
			inv.devices[idx] = device
			continue
		}
		device.CO2 = nil
		inv.index[device.ID] = len(inv.devices)
		inv.devices = append(inv.devices, device)
		added = append(added, device.ID)
	}
	total := len(inv.devices)
	inv.mu.Unlock()

	logger.Info("Refreshed devices",
		zap.Int("fetched", len(fetched)),
		zap.Int("added", len(added)),
		zap.Int("total", total))
	inv.observe("success")

	for _, deviceID := range added {
		inv.register(ctx, deviceID)
	}
	return nil
}

func (inv *Inventory) register(ctx context.Context, deviceID string) {
	registrar := inv.iot.Registrar()
	if registrar == nil {
		return
	}
	if err := registrar.Register(ctx, deviceID); err != nil {
		inv.logger().Warn("Failed to register device on live feed",
			zap.String("device_id", deviceID), zap.Error(err))
	}
}

// Remove deletes the device on the backend, then drops the id the backend
// confirmed from the cache and from the warning ledger.
func (inv *Inventory) Remove(ctx context.Context, deviceID string) error {
	logger := inv.logger()

	deletedID, err := inv.iot.Backend.DeleteDevice(ctx, deviceID)
	if err != nil {
		logger.Error("Failed to delete device", zap.String("device_id", deviceID), zap.Error(err))
		return fmt.Errorf("%w: delete device %s: %w", ErrNetwork, deviceID, err)
	}

	inv.mu.Lock()
	idx, found := inv.index[deletedID]
	if found {
		inv.devices = append(inv.devices[:idx], inv.devices[idx+1:]...)
		inv.reindex()
	}
	inv.mu.Unlock()

	if !found {
		logger.Info("Deleted device was not in inventory", zap.String("device_id", deletedID))
	} else {
		logger.Info("Removed device", zap.String("device_id", deletedID))
	}

	if inv.iot.Ledger != nil {
		inv.iot.Ledger.Remove(ctx, deletedID)
	}
	if m := inv.iot.Metrics; m != nil {
		m.InventoryDevices.Set(float64(len(inv.Snapshot())))
	}
	return nil
}

// Update renames a device on the backend and patches the echoed record into
// the cache. An echo for an unknown device is ignored.
func (inv *Inventory) Update(ctx context.Context, deviceID, name, description string) error {
	logger := inv.logger()

	updated, err := inv.iot.Backend.UpdateDevice(ctx, deviceID, name, description)
	if err != nil {
		logger.Error("Failed to update device", zap.String("device_id", deviceID), zap.Error(err))
		return fmt.Errorf("%w: update device %s: %w", ErrNetwork, deviceID, err)
	}

	id := updated.ID
	if id == "" {
		id = deviceID
	}

	inv.mu.Lock()
	idx, found := inv.index[id]
	if found {
		inv.devices[idx].Name = updated.Name
		inv.devices[idx].Description = updated.Description
	}
	inv.mu.Unlock()

	if !found {
		logger.Info("Updated device is not in inventory", zap.String("device_id", id))
		return nil
	}

	logger.Info("Updated device", zap.String("device_id", id), zap.String("name", updated.Name))
	return nil
}

// Register adds a new device on the backend and refreshes so it shows up.
func (inv *Inventory) Register(ctx context.Context, input models.DeviceRegistration) (string, error) {
	logger := inv.logger()

	deviceID, err := inv.iot.Backend.RegisterDevice(ctx, input)
	if err != nil {
		logger.Error("Failed to register device", zap.String("serial", input.Serial), zap.Error(err))
		return "", fmt.Errorf("%w: register device: %w", ErrNetwork, err)
	}

	logger.Info("Registered device", zap.String("device_id", deviceID))

	if err := inv.Refresh(ctx); err != nil {
		return deviceID, err
	}
	return deviceID, nil
}

// Merge stores a live reading on the matching device and returns the updated
// record, or false if the device is unknown.
func (inv *Inventory) Merge(deviceID string, co2 float64) (models.Device, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	idx, found := inv.index[deviceID]
	if !found {
		return models.Device{}, false
	}
	value := co2
	inv.devices[idx].CO2 = &value
	return inv.devices[idx], true
}

func (inv *Inventory) Snapshot() []models.Device {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	snapshot := make([]models.Device, len(inv.devices))
	copy(snapshot, inv.devices)
	return snapshot
}

func (inv *Inventory) Get(deviceID string) (models.Device, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	idx, found := inv.index[deviceID]
	if !found {
		return models.Device{}, false
	}
	return inv.devices[idx], true
}
