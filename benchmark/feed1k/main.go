package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"liyu1981.xyz/co2-monitor/pkg/api"
	"liyu1981.xyz/co2-monitor/pkg/iot"
	"liyu1981.xyz/co2-monitor/pkg/live"
	"liyu1981.xyz/co2-monitor/pkg/models"
	"liyu1981.xyz/co2-monitor/pkg/store"
	"nhooyr.io/websocket"
)

var maxDevices int = 1000
var eventsPerDevice int = 50

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// main serves a fake backend and stream in process, then measures how fast
// the monitor merges the stream into its inventory and warning ledger.
func main() {
	devices := make([]models.Device, maxDevices)
	for i := range maxDevices {
		devices[i] = models.Device{
			ID:          uuid.NewString(),
			Name:        gofakeit.City(),
			Description: gofakeit.State(),
			Serial:      gofakeit.MacAddress(),
			IMEI:        gofakeit.Numerify("###############"),
			Percentage:  rndFloat64(0, 100, 0),
			Activated:   true,
		}
	}
	fmt.Printf("generated %v devices\n", maxDevices)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.POST("/"+api.PathDevicesRetrieve, func(c *gin.Context) {
		c.JSON(http.StatusOK, devices)
	})
	engine.GET("/stream", func(c *gin.Context) {
		serveStream(c, len(devices))
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatal("Failed to listen:", err)
	}
	srv := &http.Server{Handler: engine}
	go func() {
		_ = srv.Serve(listener)
	}()
	defer srv.Close()

	addr := listener.Addr().String()
	fmt.Printf("fake backend listening on %s\n", addr)

	backend := api.New("http://"+addr, api.StaticToken("benchmark"), 15*time.Second)
	iotCore := iot.New(backend, nil, store.NewMemory(), iot.Options{})

	ctx := context.Background()

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	if err := iotCore.Inventory.Refresh(ctx); err != nil {
		log.Fatal("Failed to refresh devices:", err)
	}
	usedTime = time.Since(startTime)
	fmt.Printf("refreshed %v devices: used time=%v seconds\n", len(iotCore.Inventory.Snapshot()), usedTime.Seconds())

	feed := live.New("ws://"+addr+"/stream", live.Options{})

	startTime = time.Now()
	if err := iotCore.Watch(ctx, feed); err != nil {
		log.Fatal("Live feed failed:", err)
	}
	usedTime = time.Since(startTime)

	total := maxDevices * eventsPerDevice
	fmt.Printf(
		"merged %v events for %v devices: used time=%v seconds, throughput=%v event/second\n",
		total, maxDevices, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)

	warnings := 0
	for _, count := range iotCore.Ledger.Snapshot() {
		warnings += count
	}
	fmt.Printf("devices with warnings=%v, total warnings=%v\n", len(iotCore.Ledger.Snapshot()), warnings)
}

// serveStream waits for every device to register, then pushes the events
// and closes normally so the watcher returns.
func serveStream(c *gin.Context, expected int) {
	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("accept failed:", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	ctx := c.Request.Context()
	registered := make([]string, 0, expected)
	for len(registered) < expected {
		_, payload, err := conn.Read(ctx)
		if err != nil {
			log.Println("read registration failed:", err)
			return
		}
		registered = append(registered, string(payload))
	}

	for range eventsPerDevice {
		for _, deviceID := range registered {
			event, _ := json.Marshal(models.StreamEvent{
				ID:                 deviceID,
				CO2EquivalentValue: rndFloat64(400, 1200, 3),
			})
			if err := conn.Write(ctx, websocket.MessageText, event); err != nil {
				log.Println("write event failed:", err)
				return
			}
		}
	}

	_ = conn.Close(websocket.StatusNormalClosure, "done")
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}
