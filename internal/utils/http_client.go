package utils

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
)

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	BaseURL string
	Timeout time.Duration
	// Headers are sent with every request.
	Headers map[string]string
	// Logger, when set, receives one debug line per response.
	Logger *logger.Logger
}

// HTTPClient wraps a resty client preconfigured for one API host.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Automatic retries stay disabled: a request is sent at most once.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeaders(opts.Headers).
		SetRetryCount(0)

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	if opts.Logger != nil {
		log := opts.Logger
		client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("took", resp.Time()).
				Msg("http response")
			return nil
		})
	}

	return &HTTPClient{Client: client}
}
