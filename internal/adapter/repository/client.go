package repository

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/pkg/config"
)

// Client wraps the shared resty client for the upstream business API.
// Every call is a single attempt: failed writes are reconciled by a
// resynchronizing refetch, not by transparent retries.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates the shared upstream API client
func NewClient(cfg *config.UpstreamConfig, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		http.SetAuthToken(cfg.APIKey)
	}

	return &Client{http: http, logger: logger}
}

// execute runs a prepared request and maps transport and status failures
// onto AppError values.
func (c *Client) execute(req *resty.Request, method, url, service string) (*resty.Response, error) {
	resp, err := req.Execute(method, url)
	if err != nil {
		c.logger.Warn("upstream.request.failed",
			zap.String("service", service),
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, errors.ErrUpstreamUnavailable(service, err)
	}

	if resp.IsError() {
		c.logger.Warn("upstream.request.rejected",
			zap.String("service", service),
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, errors.ErrUpstreamRejected(service, resp.StatusCode())
	}

	return resp, nil
}
