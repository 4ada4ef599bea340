package provider

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// RandomUser queries a randomuser.me style generator.
type RandomUser struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// NewRandomUser creates the HTTP provider. The URL is only checked at fetch time.
func NewRandomUser(cfg Config, logger *zap.Logger) *RandomUser {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &RandomUser{
		cfg:    cfg,
		client: &http.Client{Transport: transport, Timeout: timeoutDuration},
		logger: logger,
	}
}

// Fetch requests count results filtered by the configured nationality.
func (p *RandomUser) Fetch(ctx context.Context, count int) ([]Record, error) {
	p.logger.Info("Fetching customers from provider",
		zap.String("url", p.cfg.APIURL),
		zap.Int("count", count),
	)

	if p.cfg.APIURL == "" {
		return nil, ErrMissingURL
	}

	endpoint, err := url.Parse(p.cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}
	query := endpoint.Query()
	query.Set("results", strconv.Itoa(count))
	if p.cfg.Nationality != "" {
		query.Set("nat", p.cfg.Nationality)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	return decodeResults(resp.Body)
}
