package http

import (
	"fmt"
	"net/http"
	"strconv"

	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/iot"
	"liyu1981.xyz/co2-monitor/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

const defaultHistoryHours = 24

type DeviceLevel string

const (
	DeviceLevelUnknown   DeviceLevel = "unknown"
	DeviceLevelNormal    DeviceLevel = "normal"
	DeviceLevelWarning   DeviceLevel = "warning"
	DeviceLevelDangerous DeviceLevel = "dangerous"
)

// DeviceResponse is a device as listed locally, with its open warnings.
type DeviceResponse struct {
	models.Device
	Warnings int         `json:"warnings"`
	Level    DeviceLevel `json:"level"`
}

func (rs *RestfulServer) level(d models.Device) DeviceLevel {
	switch {
	case !d.HasCO2():
		return DeviceLevelUnknown
	case *d.CO2 >= common.DangerousThreshold:
		return DeviceLevelDangerous
	case *d.CO2 >= rs.Iot.WarningThreshold:
		return DeviceLevelWarning
	default:
		return DeviceLevelNormal
	}
}

func (rs *RestfulServer) deviceResponse(d models.Device) DeviceResponse {
	warnings, _ := rs.Iot.Ledger.Count(d.ID)
	return DeviceResponse{Device: d, Warnings: warnings, Level: rs.level(d)}
}

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	devices := iot.Filter(rs.Iot.Inventory.Snapshot(), c.Query("q"))
	c.JSON(http.StatusOK, common.Mapper(devices, rs.deviceResponse))
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	device, found := rs.Iot.Inventory.Get(deviceID)
	if !found {
		rs.fail(c, fmt.Errorf("%w: device %s", iot.ErrNotFound, deviceID))
		return
	}

	c.JSON(http.StatusOK, rs.deviceResponse(device))
}

func (rs *RestfulServer) RefreshDevices(c *gin.Context) {
	if err := rs.Iot.Inventory.Refresh(c.Request.Context()); err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"devices": len(rs.Iot.Inventory.Snapshot())})
}

func (rs *RestfulServer) GetMapBounds(c *gin.Context) {
	bounds, ok := iot.Bounds(rs.Iot.Inventory.Snapshot())
	if !ok {
		rs.fail(c, fmt.Errorf("%w: no located devices", iot.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, bounds)
}

type RegisterRequest struct {
	Name        string `json:"name"`
	IMEI        string `json:"imei" zog:"imei"`
	Serial      string `json:"serial"`
	Description string `json:"description"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Name":        z.String().Required(),
	"IMEI":        z.String().Required(),
	"Serial":      z.String().Required(),
	"Description": z.String().Required(),
})

func (rs *RestfulServer) RegisterDevice(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	deviceID, err := rs.Iot.Inventory.Register(c.Request.Context(), models.DeviceRegistration{
		Name:        req.Name,
		IMEI:        req.IMEI,
		Serial:      req.Serial,
		Description: req.Description,
	})
	if err != nil && deviceID == "" {
		rs.fail(c, err)
		return
	}

	// registered, the refresh afterwards may still have failed
	c.JSON(http.StatusCreated, gin.H{"id": deviceID})
}

type UpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var updateRequestSchema = z.Struct(z.Shape{
	"Name":        z.String().Required(),
	"Description": z.String(),
})

func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req UpdateRequest
	if err := updateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Iot.Inventory.Update(c.Request.Context(), deviceID, req.Name, req.Description); err != nil {
		rs.fail(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	if err := rs.Iot.Inventory.Remove(c.Request.Context(), deviceID); err != nil {
		rs.fail(c, err)
		return
	}
	rs.RateLimiterStore.Forget(deviceID)

	c.Status(http.StatusOK)
}

func historyHours(c *gin.Context) (int, error) {
	hours, err := strconv.Atoi(c.DefaultQuery("hours", strconv.Itoa(defaultHistoryHours)))
	if err != nil || !iot.ValidHistoryRange(hours) {
		return 0, fmt.Errorf("%w: hours must be one of %v", iot.ErrParse, iot.HistoryRanges)
	}
	return hours, nil
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	hours, err := historyHours(c)
	if err != nil {
		rs.fail(c, err)
		return
	}

	history, err := rs.Iot.History(c.Request.Context(), c.Param("device_id"), hours)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (rs *RestfulServer) GetBattery(c *gin.Context) {
	battery, err := rs.Iot.Backend.DeviceBattery(c.Request.Context(), c.Param("device_id"))
	if err != nil {
		rs.fail(c, fmt.Errorf("%w: %w", iot.ErrNetwork, err))
		return
	}

	c.JSON(http.StatusOK, battery)
}

func (rs *RestfulServer) OpenAlerts(c *gin.Context) {
	hours, err := historyHours(c)
	if err != nil {
		rs.fail(c, err)
		return
	}

	history, err := rs.Iot.OpenAlerts(c.Request.Context(), c.Param("device_id"), hours)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, history.Alerts)
}

func (rs *RestfulServer) CloseAlerts(c *gin.Context) {
	rs.Iot.CloseAlerts(c.Param("device_id"))
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetWarnings(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Iot.Ledger.Snapshot())
}

func (rs *RestfulServer) GetSettings(c *gin.Context) {
	settings, err := rs.Iot.Backend.UserSettings(c.Request.Context())
	if err != nil {
		rs.fail(c, fmt.Errorf("%w: %w", iot.ErrNetwork, err))
		return
	}

	c.JSON(http.StatusOK, settings)
}

type SettingsRequest struct {
	PushNotify           bool `json:"push_notify" zog:"push_notify"`
	EmailNotify          bool `json:"email_notify" zog:"email_notify"`
	NotificationInterval int  `json:"notification_interval" zog:"notification_interval"`
}

var settingsRequestSchema = z.Struct(z.Shape{
	"PushNotify":           z.Bool(),
	"EmailNotify":          z.Bool(),
	"NotificationInterval": z.Int().Required().GTE(1),
})

func (rs *RestfulServer) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := settingsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	settings := models.UserSettings{
		PushNotify:           req.PushNotify,
		EmailNotify:          req.EmailNotify,
		NotificationInterval: req.NotificationInterval,
	}
	if err := rs.Iot.Backend.UpdateUserSettings(c.Request.Context(), settings); err != nil {
		rs.fail(c, fmt.Errorf("%w: %w", iot.ErrNetwork, err))
		return
	}

	c.JSON(http.StatusOK, settings)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
