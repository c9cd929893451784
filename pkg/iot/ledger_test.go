package iot

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/db"
	"liyu1981.xyz/co2-monitor/pkg/metrics"
	"liyu1981.xyz/co2-monitor/pkg/store"
)

func storedCounts(t *testing.T, kv store.KV) map[string]int {
	raw, found, err := kv.Get(context.Background(), common.LedgerStorageKey)
	require.NoError(t, err)
	require.True(t, found)

	counts := map[string]int{}
	require.NoError(t, json.Unmarshal(raw, &counts))
	return counts
}

func TestLedger_IncrementResetRemove(t *testing.T) {
	common.SetTestLoggerNop()

	kv := store.NewMemory()
	ledger := NewLedger(kv, "", nil)
	ctx := context.Background()
	require.NoError(t, ledger.Initialize(ctx))

	_, found := ledger.Count("d1")
	assert.False(t, found)

	ledger.Increment(ctx, "d1")
	ledger.Increment(ctx, "d1")
	count, found := ledger.Count("d1")
	assert.True(t, found)
	assert.Equal(t, 2, count)
	assert.Equal(t, map[string]int{"d1": 2}, storedCounts(t, kv))

	ledger.Reset(ctx, "d1")
	count, found = ledger.Count("d1")
	assert.True(t, found)
	assert.Equal(t, 0, count)
	assert.Equal(t, map[string]int{"d1": 0}, storedCounts(t, kv))

	ledger.Remove(ctx, "d1")
	_, found = ledger.Count("d1")
	assert.False(t, found)
	assert.Equal(t, map[string]int{}, storedCounts(t, kv))
}

func TestLedger_ResetUnknownCreatesZeroEntry(t *testing.T) {
	common.SetTestLoggerNop()

	ledger := NewLedger(store.NewMemory(), "", nil)
	ledger.Reset(context.Background(), "fresh")

	count, found := ledger.Count("fresh")
	assert.True(t, found)
	assert.Equal(t, 0, count)
}

func TestLedger_RemoveAbsentSkipsWrite(t *testing.T) {
	common.SetTestLoggerNop()

	reg := prometheus.NewRegistry()
	m := metrics.NewMonitorMetrics(reg, "test")
	ledger := NewLedger(store.NewMemory(), "", m)

	ledger.Remove(context.Background(), "ghost")

	assert.Equal(t, 0.0, testutil.ToFloat64(m.LedgerPersistTotal.WithLabelValues("success")))
}

func TestLedger_InitializeMissingAndCorrupt(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctx := context.Background()

	empty := NewLedger(store.NewMemory(), "", nil)
	require.NoError(t, empty.Initialize(ctx))
	assert.Empty(t, empty.Snapshot())

	kv := store.NewMemory()
	require.NoError(t, kv.Put(ctx, common.LedgerStorageKey, []byte("not json")))
	corrupt := NewLedger(kv, "", nil)
	require.NoError(t, corrupt.Initialize(ctx))
	assert.Empty(t, corrupt.Snapshot())

	logs := ParseLogs(buf)
	assert.True(t, findLog(logs, func(lobj map[string]any) bool {
		return lobj["category"] == "ledger" &&
			lobj["msg"] == "Ignoring undecodable warnings"
	}))
}

func TestLedger_PersistFailureKeepsCounts(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	m := metrics.NewMonitorMetrics(prometheus.NewRegistry(), "test")
	ledger := NewLedger(failingKV{store.NewMemory()}, "", m)
	ctx := context.Background()
	require.NoError(t, ledger.Initialize(ctx))

	ledger.Increment(ctx, "d1")

	count, _ := ledger.Count("d1")
	assert.Equal(t, 1, count)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LedgerPersistTotal.WithLabelValues("error")))

	logs := ParseLogs(buf)
	assert.True(t, findLog(logs, func(lobj map[string]any) bool {
		return lobj["logger"] == "iot_core" &&
			lobj["category"] == "ledger" &&
			lobj["msg"] == "Failed to persist warnings" &&
			lobj["store"] == "failing"
	}))
}

func TestLedger_PersistOutlivesCanceledCaller(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := db.Open(db.UseMemorySqliteDialector())
	require.NoError(t, err)
	defer instance.Close()

	kv := store.NewDB(instance)
	m := metrics.NewMonitorMetrics(prometheus.NewRegistry(), "test")
	ledger := NewLedger(kv, "", m)
	require.NoError(t, ledger.Initialize(context.Background()))

	// the request that opened the alert list went away
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ledger.Increment(ctx, "d1")
	ledger.OpenAlerts(ctx, "d2", 1)

	assert.Equal(t, map[string]int{"d1": 1, "d2": 0}, storedCounts(t, kv))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LedgerPersistTotal.WithLabelValues("success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LedgerPersistTotal.WithLabelValues("error")))
}

func TestLedger_OpenAlertsSuppressesIncrement(t *testing.T) {
	common.SetTestLoggerNop()

	ledger := NewLedger(store.NewMemory(), "", nil)
	ctx := context.Background()

	ledger.Increment(ctx, "d1")
	ledger.Increment(ctx, "d1")

	ledger.OpenAlerts(ctx, "d1", 4)
	count, _ := ledger.Count("d1")
	assert.Equal(t, 0, count)

	ledger.Increment(ctx, "d1")
	count, _ = ledger.Count("d1")
	assert.Equal(t, 0, count)

	ledger.CloseAlerts("d1")
	ledger.Increment(ctx, "d1")
	count, _ = ledger.Count("d1")
	assert.Equal(t, 1, count)
}

func TestLedger_OpenAlertsWithoutAlertsKeepsCount(t *testing.T) {
	common.SetTestLoggerNop()

	ledger := NewLedger(store.NewMemory(), "", nil)
	ctx := context.Background()

	ledger.Increment(ctx, "d1")
	ledger.OpenAlerts(ctx, "d1", 0)

	count, _ := ledger.Count("d1")
	assert.Equal(t, 1, count)
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	common.SetTestLoggerNop()

	ledger := NewLedger(store.NewMemory(), "", nil)
	ledger.Increment(context.Background(), "d1")

	snapshot := ledger.Snapshot()
	snapshot["d1"] = 42

	count, _ := ledger.Count("d1")
	assert.Equal(t, 1, count)
}

func TestLedger_SurvivesRestart(t *testing.T) {
	common.SetTestLoggerNop()

	dbInstance, err := db.Open(db.UseMemorySqliteDialector())
	require.NoError(t, err)
	defer dbInstance.Close()

	kvs := map[string]store.KV{
		"db":   store.NewDB(dbInstance),
		"file": store.NewFile(filepath.Join(t.TempDir(), "warnings.json")),
	}

	for name, kv := range kvs {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			before := NewLedger(kv, "", nil)
			require.NoError(t, before.Initialize(ctx))
			before.Increment(ctx, "d1")
			before.Increment(ctx, "d1")
			before.Increment(ctx, "d2")
			before.Remove(ctx, "d2")

			after := NewLedger(kv, "", nil)
			require.NoError(t, after.Initialize(ctx))
			assert.Equal(t, map[string]int{"d1": 2}, after.Snapshot())
		})
	}
}
