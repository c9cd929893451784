package iot

import (
	"math"
	"strconv"
	"strings"

	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/models"
)

const (
	co2SearchRadius     = 100
	batterySearchRadius = 10
)

type searchQuery struct {
	text    string
	keyword string
	number  float64
	numeric bool
}

func parseSearchQuery(query string) searchQuery {
	q := searchQuery{text: strings.ToLower(query)}
	q.keyword = strings.TrimSpace(q.text)
	if q.keyword == "" {
		return q
	}
	if n, err := strconv.ParseFloat(q.keyword, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		q.number = n
		q.numeric = true
	}
	return q
}

func (q searchQuery) matches(d models.Device) bool {
	if strings.Contains(strings.ToLower(d.Name), q.text) ||
		strings.Contains(strings.ToLower(d.Description), q.text) ||
		strings.Contains(strings.ToLower(d.Serial), q.text) ||
		strings.Contains(strings.ToLower(d.IMEI), q.text) {
		return true
	}

	if q.numeric {
		if d.CO2 != nil && math.Abs(*d.CO2-q.number) < co2SearchRadius {
			return true
		}
		if math.Abs(d.Percentage-q.number) < batterySearchRadius {
			return true
		}
	}

	switch q.keyword {
	case "charging":
		return d.Charging
	case "not charging":
		return !d.Charging
	case "activated":
		return d.Activated
	case "activating":
		return !d.Activated
	}
	return false
}

// Filter returns the devices matching query, case-insensitively, keeping their
// order. A device matches on a name, description, serial or IMEI
// substring, on a reading within 100 or a battery level within 10 of a
// numeric query, or on the keywords "charging", "not charging", "activated"
// and "activating". The empty query matches everything.
func Filter(devices []models.Device, query string) []models.Device {
	if query == "" {
		return devices
	}
	q := parseSearchQuery(query)
	return common.Filter(devices, q.matches)
}
