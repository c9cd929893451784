package iot

import (
	"context"
	"sync"
	"time"

	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/metrics"
	"liyu1981.xyz/co2-monitor/pkg/models"
	"liyu1981.xyz/co2-monitor/pkg/store"
)

//go:generate mockgen -source=iot.go -destination=mocks/iot.go -package=mocks

// IBackend is the remote monitoring API.
type IBackend interface {
	RetrieveDevices(ctx context.Context) ([]models.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) (string, error)
	UpdateDevice(ctx context.Context, deviceID, name, description string) (*models.Device, error)
	RegisterDevice(ctx context.Context, input models.DeviceRegistration) (string, error)
	DeviceBattery(ctx context.Context, deviceID string) (*models.BatteryStatus, error)
	RetrieveReadings(ctx context.Context, deviceID string, since time.Time) ([]models.Reading, error)
	UserSettings(ctx context.Context) (*models.UserSettings, error)
	UpdateUserSettings(ctx context.Context, settings models.UserSettings) error
}

// Registrar subscribes a device on the live feed.
type Registrar interface {
	Register(ctx context.Context, deviceID string) error
}

// Feed is the live connection Watch drives, see live.Feed.
type Feed interface {
	Registrar
	Connect(ctx context.Context) error
	Run(ctx context.Context, handle func([]byte)) error
	Close() error
}

type IInventory interface {
	Refresh(ctx context.Context) error
	Remove(ctx context.Context, deviceID string) error
	Update(ctx context.Context, deviceID, name, description string) error
	Register(ctx context.Context, input models.DeviceRegistration) (string, error)
	Merge(deviceID string, co2 float64) (models.Device, bool)
	Snapshot() []models.Device
	Get(deviceID string) (models.Device, bool)
}

type ILedger interface {
	Initialize(ctx context.Context) error
	Increment(ctx context.Context, deviceID string)
	Reset(ctx context.Context, deviceID string)
	Remove(ctx context.Context, deviceID string)
	Count(deviceID string) (int, bool)
	Snapshot() map[string]int
	OpenAlerts(ctx context.Context, deviceID string, alertCount int)
	CloseAlerts(deviceID string)
}

// IOT ties the client side state together. Services reach each other
// through the IOT fields, so any of them can be swapped with WithServices.
type IOT struct {
	Backend   IBackend
	Inventory IInventory
	Ledger    ILedger
	Merger    *Merger

	WarningThreshold float64
	Metrics          *metrics.MonitorMetrics

	registrarMu sync.RWMutex
	registrar   Registrar
}

type ServiceOpts struct {
	Registrar Registrar
	Inventory IInventory
	Ledger    ILedger
}

type Options struct {
	// LedgerKey defaults to common.LedgerStorageKey.
	LedgerKey        string
	WarningThreshold float64
	Metrics          *metrics.MonitorMetrics
}

// New builds the default services on top of backend and kv. The registrar
// may be nil until a live feed is attached.
func New(backend IBackend, registrar Registrar, kv store.KV, opts Options) *IOT {
	if opts.WarningThreshold <= 0 {
		opts.WarningThreshold = common.DefaultWarningThreshold
	}

	i := &IOT{
		Backend:          backend,
		registrar:        registrar,
		WarningThreshold: opts.WarningThreshold,
		Metrics:          opts.Metrics,
	}
	i.Ledger = NewLedger(kv, opts.LedgerKey, opts.Metrics)
	i.Inventory = NewInventory(i)
	i.Merger = NewMerger(i)
	return i
}

func (i *IOT) WithServices(opts ServiceOpts) *IOT {
	if opts.Registrar != nil {
		i.SetRegistrar(opts.Registrar)
	}
	if opts.Inventory != nil {
		i.Inventory = opts.Inventory
	}
	if opts.Ledger != nil {
		i.Ledger = opts.Ledger
	}
	return i
}

func (i *IOT) SetRegistrar(registrar Registrar) {
	i.registrarMu.Lock()
	defer i.registrarMu.Unlock()
	i.registrar = registrar
}

func (i *IOT) Registrar() Registrar {
	i.registrarMu.RLock()
	defer i.registrarMu.RUnlock()
	return i.registrar
}
