package models

import "time"

// Device is one CO2 sensor owned by the signed-in user. CO2 is nil until the
// first live measurement arrives, which keeps "no reading yet" apart from 0.
type Device struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CO2         *float64 `json:"co2,omitempty"`
	Percentage  float64  `json:"percentage"`
	Charging    bool     `json:"charging"`
	Activated   bool     `json:"activated"`
	IMEI        string   `json:"imei"`
	Serial      string   `json:"serial"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func (d Device) HasCO2() bool {
	return d.CO2 != nil
}

func (d Device) Located() bool {
	return d.Latitude != nil && d.Longitude != nil
}

type DeviceRegistration struct {
	Name        string `json:"name"`
	IMEI        string `json:"imei"`
	Serial      string `json:"serial"`
	Description string `json:"description"`
}

// StreamEvent is one measurement pushed over the live feed.
type StreamEvent struct {
	ID                 string  `json:"id"`
	CO2EquivalentValue float64 `json:"co2EquivalentValue"`
}

// Point is a chart sample, X in epoch milliseconds.
type Point struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

type Reading struct {
	CO2     float64   `json:"co2"`
	GenDate time.Time `json:"genDate"`
}

type DeviceHistory struct {
	DeviceID string   `json:"device_id"`
	Hours    int      `json:"hours"`
	Readings []Point  `json:"readings"`
	Chart    []Point  `json:"chart"`
	Alerts   []Point  `json:"alerts"`
	Live     *float64 `json:"live,omitempty"`
}

type BatteryStatus struct {
	Percentage float64 `json:"percentage"`
	Charging   bool    `json:"charging"`
}

type UserSettings struct {
	PushNotify           bool `json:"push_notify"`
	EmailNotify          bool `json:"email_notify"`
	NotificationInterval int  `json:"notification_interval"`
}

type MapBounds struct {
	CenterLatitude  float64 `json:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude"`
	MinLatitude     float64 `json:"min_latitude"`
	MaxLatitude     float64 `json:"max_latitude"`
	MinLongitude    float64 `json:"min_longitude"`
	MaxLongitude    float64 `json:"max_longitude"`
	Devices         int     `json:"devices"`
}

// KVEntry backs the durable key-value store in sqlite.
type KVEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}
