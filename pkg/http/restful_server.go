package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/iot"
	"liyu1981.xyz/co2-monitor/pkg/metrics"
)

type RestfulServer struct {
	Server           *gin.Engine
	Iot              *iot.IOT
	RateLimiterStore *iot.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	return rs.RateLimiterStore.Allow(deviceID)
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameRestfulServer)
}

// limited rejects the request with 429 when the device ran out of tokens.
func (rs *RestfulServer) limited(c *gin.Context) {
	if !rs.CheckDeviceLimiter(c.Param("device_id")) {
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

// fail maps an iot error onto a status code and writes it.
func (rs *RestfulServer) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, iot.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, iot.ErrParse):
		status = http.StatusBadRequest
	case errors.Is(err, iot.ErrNetwork):
		status = http.StatusBadGateway
	}

	rs.logger().Warn("Request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.Error(err))

	c.JSON(status, gin.H{"error": err.Error()})
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(metrics.Handler()))

	rs.Server.GET("/warnings", rs.GetWarnings)
	rs.Server.GET("/settings", rs.GetSettings)
	rs.Server.PUT("/settings", rs.UpdateSettings)

	inventory := rs.Server.Group("/inventory")
	{
		inventory.POST("/refresh", rs.RefreshDevices)
		inventory.GET("/map", rs.GetMapBounds)
	}

	rs.Server.GET("/devices", rs.ListDevices)
	rs.Server.POST("/devices", rs.RegisterDevice)

	devices := rs.Server.Group("/devices/:device_id", rs.limited)
	{
		devices.GET("", rs.GetDevice)
		devices.PATCH("", rs.UpdateDevice)
		devices.DELETE("", rs.DeleteDevice)
		devices.GET("/history", rs.GetHistory)
		devices.GET("/battery", rs.GetBattery)
		devices.POST("/alerts/open", rs.OpenAlerts)
		devices.POST("/alerts/close", rs.CloseAlerts)
	}

	// not limited, so a throttled device can still be given more room
	rs.Server.POST("/devices/:device_id/limiter", rs.PostLimiter)
}
