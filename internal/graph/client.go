// File: internal/graph/client.go

// Package graph is a thin client for the Facebook Graph API endpoints this
// service proxies.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"page_insights_backend/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// API is the set of Graph calls used by the handlers.
type API interface {
	Profile(ctx context.Context, accessToken string) (json.RawMessage, error)
	Pages(ctx context.Context, accessToken string) (json.RawMessage, error)
	PageInsights(ctx context.Context, q InsightsQuery) ([]InsightMetric, error)
	PageStats(ctx context.Context, pageID, accessToken string) (*PageStats, error)
}

// Client issues Graph API requests. It holds no per-caller state; the access
// token travels with every call.
type Client struct {
	http    *resty.Client
	version string
	logger  *zap.Logger
}

var _ API = (*Client)(nil)

// NewClient builds a client against cfg.GraphAPIBaseURL. No request timeout
// and no retries are configured.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	log := logger.Named("GraphClient")
	rc := resty.New().
		SetBaseURL(cfg.GraphAPIBaseURL).
		SetHeader("Accept", "application/json").
		SetLogger(log.Sugar())
	return &Client{http: rc, version: cfg.GraphAPIVersion, logger: log}
}

// Profile returns the caller's id, name and picture exactly as Graph returns them.
func (c *Client) Profile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/me", map[string]string{
		"fields":       "id,name,picture",
		"access_token": accessToken,
	})
}

// Pages returns the pages the caller manages exactly as Graph returns them.
func (c *Client) Pages(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/me/accounts", map[string]string{
		"access_token": accessToken,
	})
}

// PageInsights reads the fixed metric set over the query range.
func (c *Client) PageInsights(ctx context.Context, q InsightsQuery) ([]InsightMetric, error) {
	params := map[string]string{
		"access_token": q.AccessToken,
		"metric":       strings.Join(InsightMetrics, ","),
		"period":       PeriodTotalOverRange,
	}
	if q.Since != "" {
		params["since"] = q.Since
	}
	if q.Until != "" {
		params["until"] = q.Until
	}

	body, status, err := c.get(ctx, "/{version}/{pageID}/insights", q.PageID, params)
	if err != nil {
		return nil, err
	}

	var env insightsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &Error{StatusCode: status, Message: fmt.Sprintf("decoding insights response: %v", err), cause: err}
	}
	if env.Error != nil {
		return nil, fromBody(status, env.Error)
	}
	if env.Data == nil {
		return nil, &Error{StatusCode: status, Message: "insights response has no data"}
	}
	return env.Data, nil
}

// PageStats reads the public counters of a page.
func (c *Client) PageStats(ctx context.Context, pageID, accessToken string) (*PageStats, error) {
	body, status, err := c.get(ctx, "/{version}/{pageID}", pageID, map[string]string{
		"access_token": accessToken,
		"fields":       strings.Join(PageStatsFields, ","),
	})
	if err != nil {
		return nil, err
	}

	var env pageStatsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &Error{StatusCode: status, Message: fmt.Sprintf("decoding page response: %v", err), cause: err}
	}
	if env.Error != nil {
		return nil, fromBody(status, env.Error)
	}
	return &env.PageStats, nil
}

func (c *Client) getRaw(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	body, _, err := c.get(ctx, path, "", params)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, path, pageID string, params map[string]string) ([]byte, int, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"version": c.version, "pageID": pageID}).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, 0, transportError(err)
	}
	if resp.IsError() {
		gerr := statusError(resp.StatusCode(), resp.Body())
		c.logger.Debug("Graph API returned an error",
			zap.String("path", path),
			zap.Int("status", gerr.StatusCode),
			zap.String("message", gerr.Message),
		)
		return nil, resp.StatusCode(), gerr
	}
	return resp.Body(), resp.StatusCode(), nil
}
