package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/neochat"
)

// Interface compliance check.
var _ neochat.Source = (*Client)(nil)

// Client talks to one Firebase Realtime Database over its REST surface.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPath sets the collection path (default "messages").
func WithPath(path string) Option {
	return func(c *Client) { c.path = strings.Trim(path, "/") }
}

// New creates a [Client] for the database at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		path:       defaultPath,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ping probes database reachability with a shallow read of the root.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/.json?shallow=true", nil)
	if err != nil {
		return fmt.Errorf("firebase: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("firebase: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("firebase: ping: %s", httpError(resp))
	}
	return nil
}

// Send appends one message to the collection. Delivery is fire-and-forget:
// the database assigns the push key and echoes the record back on the
// streaming subscription, which is where it gets displayed.
func (c *Client) Send(ctx context.Context, msg neochat.Message) error {
	rec := record{
		Sender:    msg.Sender,
		Message:   msg.Body,
		Timestamp: msg.Timestamp.Format(time.RFC3339Nano),
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("firebase: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.collectionURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("firebase: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("firebase: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("firebase: push: %s", httpError(resp))
	}
	return nil
}

func (c *Client) collectionURL() string {
	return c.baseURL + "/" + c.path + ".json"
}

// httpError summarizes a non-200 response, favoring the database's error
// field when the body carries one.
func httpError(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
