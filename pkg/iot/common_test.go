package iot

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/co2-monitor/pkg/iot/mocks"
	"liyu1981.xyz/co2-monitor/pkg/metrics"
	"liyu1981.xyz/co2-monitor/pkg/models"
	"liyu1981.xyz/co2-monitor/pkg/store"
)

func GetMockIOTWithMemoryStore(t *testing.T) (
	*gomock.Controller,
	*IOT,
	*mocks.MockIBackend,
	*mocks.MockRegistrar,
	store.KV,
) {
	ctrl := gomock.NewController(t)

	mockBackend := mocks.NewMockIBackend(ctrl)
	mockRegistrar := mocks.NewMockRegistrar(ctrl)
	kv := store.NewMemory()

	iotInstance := New(mockBackend, mockRegistrar, kv, Options{
		Metrics: metrics.NewMonitorMetrics(prometheus.NewRegistry(), "test"),
	})

	return ctrl, iotInstance, mockBackend, mockRegistrar, kv
}

type deviceFixture struct {
	ID          string  `fake:"{uuid}"`
	Name        string  `fake:"{city}"`
	Description string  `fake:"{city}, {state}"`
	Serial      string  `fake:"{macaddress}"`
	Latitude    float64 `fake:"{latitude}"`
	Longitude   float64 `fake:"{longitude}"`
}

func fakeDevice(t *testing.T) models.Device {
	var f deviceFixture
	if err := gofakeit.Struct(&f); err != nil {
		t.Fatalf("fake device: %v", err)
	}
	return models.Device{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Serial:      f.Serial,
		IMEI:        gofakeit.Numerify("###############"),
		Percentage:  gofakeit.Float64Range(0, 100),
		Activated:   true,
		Latitude:    &f.Latitude,
		Longitude:   &f.Longitude,
	}
}

func fakeDevices(t *testing.T, n int) []models.Device {
	devices := make([]models.Device, n)
	for i := range devices {
		devices[i] = fakeDevice(t)
	}
	return devices
}

func ptr[T any](v T) *T {
	return &v
}

// failingKV loads fine and fails every write.
type failingKV struct {
	store.KV
}

func (failingKV) String() string {
	return "failing"
}

func (failingKV) Put(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func findLog(logs []any, match func(map[string]any) bool) bool {
	for _, log := range logs {
		if lobj, ok := log.(map[string]any); ok && match(lobj) {
			return true
		}
	}
	return false
}
