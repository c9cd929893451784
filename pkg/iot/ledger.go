package iot

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/metrics"
	"liyu1981.xyz/co2-monitor/pkg/store"
)

// persistTimeout bounds a single write. Writes outlive the caller's context so
// a disconnected request cannot leave the stored counts behind.
const persistTimeout = 5 * time.Second

// Ledger counts unacknowledged warnings per device and writes the whole
// table to the key-value store after every change.
//
// Writes are serialized and happen in mutation order. A failed write is
// logged only: the in-memory counts stay authoritative and the next write
// replaces the stored value.
type Ledger struct {
	kv      store.KV
	key     string
	metrics *metrics.MonitorMetrics

	// persistMu is held across mutate+write so stored snapshots never go
	// back in time
	persistMu sync.Mutex

	mu      sync.RWMutex
	counts  map[string]int
	viewing map[string]bool
}

var _ ILedger = &Ledger{}

func NewLedger(kv store.KV, key string, m *metrics.MonitorMetrics) *Ledger {
	if key == "" {
		key = common.LedgerStorageKey
	}
	return &Ledger{
		kv:      kv,
		key:     key,
		metrics: m,
		counts:  map[string]int{},
		viewing: map[string]bool{},
	}
}

func (l *Ledger) logger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTLedger),
	)
}

// Initialize loads the stored counts. Nothing stored yields an empty ledger,
// as does a value that cannot be decoded.
func (l *Ledger) Initialize(ctx context.Context) error {
	logger := l.logger()

	raw, found, err := l.kv.Get(ctx, l.key)
	if err != nil {
		logger.Error("Failed to load warnings", zap.Stringer("store", l.kv), zap.Error(err))
		return fmt.Errorf("%w: load %s: %w", ErrPersistence, l.key, err)
	}

	counts := map[string]int{}
	if found {
		if err := json.Unmarshal(raw, &counts); err != nil {
			logger.Warn("Ignoring undecodable warnings", zap.String("key", l.key), zap.Error(err))
			counts = map[string]int{}
		}
	}

	l.mu.Lock()
	l.counts = counts
	l.mu.Unlock()

	logger.Info("Loaded warnings", zap.Stringer("store", l.kv), zap.Int("devices", len(counts)))
	return nil
}

// mutate applies fn under the lock and persists the result when fn reports a
// change.
func (l *Ledger) mutate(ctx context.Context, fn func(counts map[string]int) bool) {
	l.persistMu.Lock()
	defer l.persistMu.Unlock()

	l.mu.Lock()
	changed := fn(l.counts)
	var snapshot map[string]int
	if changed {
		snapshot = maps.Clone(l.counts)
	}
	l.mu.Unlock()

	if changed {
		l.persist(ctx, snapshot)
	}
}

func (l *Ledger) persist(ctx context.Context, snapshot map[string]int) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	raw, err := json.Marshal(snapshot)
	if err == nil {
		err = l.kv.Put(ctx, l.key, raw)
	}

	if err != nil {
		l.logger().Error("Failed to persist warnings", zap.Stringer("store", l.kv), zap.Error(err))
		if l.metrics != nil {
			l.metrics.LedgerPersistTotal.WithLabelValues("error").Inc()
		}
		return
	}
	if l.metrics != nil {
		l.metrics.LedgerPersistTotal.WithLabelValues("success").Inc()
	}
}

// Increment adds one warning, unless the device's alert list is open.
func (l *Ledger) Increment(ctx context.Context, deviceID string) {
	l.mutate(ctx, func(counts map[string]int) bool {
		if l.viewing[deviceID] {
			return false
		}
		counts[deviceID] = counts[deviceID] + 1
		return true
	})
}

func (l *Ledger) Reset(ctx context.Context, deviceID string) {
	l.mutate(ctx, func(counts map[string]int) bool {
		counts[deviceID] = 0
		return true
	})
}

// Remove forgets the device entirely, Count reports it as absent afterwards.
func (l *Ledger) Remove(ctx context.Context, deviceID string) {
	l.mutate(ctx, func(counts map[string]int) bool {
		delete(l.viewing, deviceID)
		if _, found := counts[deviceID]; !found {
			return false
		}
		delete(counts, deviceID)
		return true
	})
}

func (l *Ledger) Count(deviceID string) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count, found := l.counts[deviceID]
	return count, found
}

func (l *Ledger) Snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.counts)
}

// OpenAlerts marks the device's alert list as being looked at. Warnings are
// acknowledged when the list holds at least one alert.
func (l *Ledger) OpenAlerts(ctx context.Context, deviceID string, alertCount int) {
	l.mutate(ctx, func(counts map[string]int) bool {
		l.viewing[deviceID] = true
		if alertCount <= 0 {
			return false
		}
		counts[deviceID] = 0
		return true
	})
}

func (l *Ledger) CloseAlerts(deviceID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.viewing, deviceID)
}
