package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"liyu1981.xyz/co2-monitor/pkg/models"
)

func (c *Client) RetrieveDevices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	if err := c.postJSON(ctx, PathDevicesRetrieve, nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// DeleteDevice returns the identifier the backend confirms as deleted. The
// answer is the bare id, not a JSON document.
func (c *Client) DeleteDevice(ctx context.Context, deviceID string) (string, error) {
	req, err := c.request(ctx, PathDevicesDelete, map[string]any{"device": deviceID})
	if err != nil {
		return "", err
	}
	resp, err := req.Delete(PathDevicesDelete)
	if err := checkResponse(PathDevicesDelete, resp, err); err != nil {
		return "", err
	}
	return resp.String(), nil
}

func (c *Client) UpdateDevice(ctx context.Context, deviceID, name, description string) (*models.Device, error) {
	var device models.Device
	err := c.postJSON(ctx, PathDevicesUpdate, map[string]any{
		"device":      deviceID,
		"name":        name,
		"description": description,
	}, &device)
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// RegisterDevice returns the identifier assigned by the backend.
func (c *Client) RegisterDevice(ctx context.Context, input models.DeviceRegistration) (string, error) {
	id, err := c.postText(ctx, PathDevicesRegister, map[string]any{
		"name":        input.Name,
		"imei":        input.IMEI,
		"serial":      input.Serial,
		"description": input.Description,
	})
	if err != nil {
		return "", err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%s: empty device id in response", PathDevicesRegister)
	}
	return id, nil
}

func (c *Client) DeviceBattery(ctx context.Context, deviceID string) (*models.BatteryStatus, error) {
	var status models.BatteryStatus
	if err := c.postJSON(ctx, PathDevicesSingle, map[string]any{"device": deviceID}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) RetrieveReadings(ctx context.Context, deviceID string, since time.Time) ([]models.Reading, error) {
	var readings []models.Reading
	err := c.postJSON(ctx, PathReadingsRange, map[string]any{
		"device": deviceID,
		"start":  since.UnixMilli(),
	}, &readings)
	if err != nil {
		return nil, err
	}
	return readings, nil
}
