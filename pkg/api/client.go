// Package api is the client of the remote CO2 monitoring backend. Every call
// authenticates by carrying the user's token in the JSON body.
package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"liyu1981.xyz/co2-monitor/pkg/common"
)

const (
	PathDevicesRetrieve = "devices/retrieve"
	PathDevicesDelete   = "devices/delete"
	PathDevicesUpdate   = "devices/update"
	PathDevicesRegister = "devices/register"
	PathDevicesSingle   = "devices/single"
	PathReadingsRange   = "readings/range"
	PathUsersInfo       = "users/info"
	PathUsersConfig     = "users/config"
)

// StatusError is returned when the backend answers with a non 2xx status.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.Status, strings.TrimSpace(e.Body))
}

type Client struct {
	http   *resty.Client
	tokens oauth2.TokenSource
}

// New creates a client for baseURL. timeout bounds every request, the
// backend has no deadline of its own.
func New(baseURL string, tokens oauth2.TokenSource, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{http: c, tokens: tokens}
}

// StaticToken wraps a fixed token, as issued by the identity provider.
func StaticToken(token string) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(nil, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

func (c *Client) token() (string, error) {
	if c.tokens == nil {
		return "", fmt.Errorf("no token source configured")
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("get auth token: %w", err)
	}
	return tok.AccessToken, nil
}

// body merges the auth token into the request fields.
func (c *Client) body(fields map[string]any) (map[string]any, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	payload := map[string]any{"token": token}
	for k, v := range fields {
		payload[k] = v
	}
	return payload, nil
}

func (c *Client) request(ctx context.Context, path string, fields map[string]any) (*resty.Request, error) {
	logger := common.GetLoggerWith(common.LoggerNameApiClient)
	logger.Debug("Starting request", zap.String("path", path))

	payload, err := c.body(fields)
	if err != nil {
		return nil, err
	}
	return c.http.R().SetContext(ctx).SetBody(payload), nil
}

func checkResponse(path string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if resp.IsError() {
		return &StatusError{Path: path, Status: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

// postJSON posts fields and decodes the JSON answer into result.
func (c *Client) postJSON(ctx context.Context, path string, fields map[string]any, result any) error {
	req, err := c.request(ctx, path, fields)
	if err != nil {
		return err
	}
	req.SetResult(result).ForceContentType("application/json")
	resp, err := req.Post(path)
	return checkResponse(path, resp, err)
}

// postText posts fields and returns the raw answer body.
func (c *Client) postText(ctx context.Context, path string, fields map[string]any) (string, error) {
	req, err := c.request(ctx, path, fields)
	if err != nil {
		return "", err
	}
	resp, err := req.Post(path)
	if err := checkResponse(path, resp, err); err != nil {
		return "", err
	}
	return resp.String(), nil
}
