package api

import (
	"context"

	"liyu1981.xyz/co2-monitor/pkg/models"
)

func (c *Client) UserSettings(ctx context.Context) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := c.postJSON(ctx, PathUsersInfo, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateUserSettings(ctx context.Context, settings models.UserSettings) error {
	_, err := c.postText(ctx, PathUsersConfig, map[string]any{
		"push_notify":           settings.PushNotify,
		"email_notify":          settings.EmailNotify,
		"notification_interval": settings.NotificationInterval,
	})
	return err
}
