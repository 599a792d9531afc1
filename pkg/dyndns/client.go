package dyndns

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/burrowlabs/burrow/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// DefaultUpdateURL is the dyndns2 update endpoint
	DefaultUpdateURL = "https://members.dyndns.org/nic/update"

	// DefaultCheckIPURL returns the caller's public IP as plain text
	DefaultCheckIPURL = "https://checkip.dyndns.org/"

	// RequestTimeout bounds every HTTP call to the provider
	RequestTimeout = 15 * time.Second
)

// Config holds provider endpoint configuration
type Config struct {
	UpdateURL  string
	CheckIPURL string

	// Version and Contact form the client identification header.
	// Providers block unidentified clients, so both are sent on every
	// request as "burrow/<version> (<contact>)".
	Version string
	Contact string
}

// Client talks to a dyndns2-protocol provider. The HTTP client, endpoints,
// and identification header are fixed at construction and shared by all
// requests for the process lifetime.
type Client struct {
	updateURL  string
	checkIPURL string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a provider client
func NewClient(cfg Config) *Client {
	if cfg.UpdateURL == "" {
		cfg.UpdateURL = DefaultUpdateURL
	}
	if cfg.CheckIPURL == "" {
		cfg.CheckIPURL = DefaultCheckIPURL
	}

	userAgent := fmt.Sprintf("burrow/%s", cfg.Version)
	if cfg.Contact != "" {
		userAgent += fmt.Sprintf(" (%s)", cfg.Contact)
	}

	return &Client{
		updateURL:  cfg.UpdateURL,
		checkIPURL: cfg.CheckIPURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: RequestTimeout},
		logger:     log.WithComponent("dyndns"),
	}
}

// CurrentIP asks the provider's discovery endpoint for the caller's public
// IP address. The full trimmed response body is the address.
func (c *Client) CurrentIP(ctx context.Context) (types.IPAddress, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.checkIPURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create discovery request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("discovery request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read discovery response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("Discovery endpoint returned non-success status")
		return "", fmt.Errorf("discovery endpoint returned status %d", resp.StatusCode)
	}

	return types.IPAddress(strings.TrimSpace(string(body))), nil
}

// Update submits one batched update for the given hostnames and returns
// the classified response lines. The hostnames are comma-joined into a
// single request; myip is attached only when non-empty. Credentials travel
// as HTTP Basic auth.
func (c *Client) Update(ctx context.Context, entry types.ProviderEntry, hostnames []types.Hostname, myip types.IPAddress) ([]types.ResponseLine, error) {
	joined := make([]string, 0, len(hostnames))
	for _, h := range hostnames {
		joined = append(joined, string(h))
	}

	query := url.Values{}
	query.Set("hostname", strings.Join(joined, ","))
	if myip != "" {
		query.Set("myip", string(myip))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.updateURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create update request: %w", err)
	}
	req.SetBasicAuth(entry.Username, entry.Password)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read update response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("Update endpoint returned non-success status")
		return nil, fmt.Errorf("update endpoint returned status %d", resp.StatusCode)
	}

	return ParseResponse(string(body)), nil
}
