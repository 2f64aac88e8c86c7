// Package kuberaapi fetches portfolio data from the Kubera aggregator API.
//
// Requests are authenticated with an API key and an HMAC-SHA256 signature over
// the key, a unix timestamp, the method and the path. The package's only
// output is a kubera.PortfolioSnapshot built from the raw assets/debts
// payload, holdings and all; aggregation is the reporting side's business.
package kuberaapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.kubera.com"

// Client talks to the Kubera API.
type Client struct {
	apiKey  string
	secret  string
	baseURL string
	http    *http.Client

	// now is the timestamp source for request signing.
	now func() time.Time
}

// New returns a client authenticated with the given API key and secret.
func New(apiKey, secret string) *Client {
	return &Client{
		apiKey:  apiKey,
		secret:  secret,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		now:     time.Now,
	}
}

// sign computes the request signature: hex HMAC-SHA256 of
// apikey+timestamp+method+path keyed with the API secret.
func (c *Client) sign(timestamp, method, path string) string {
	mac := hmac.New(sha256.New, []byte(c.secret))
	io.WriteString(mac, c.apiKey+timestamp+method+path)
	return hex.EncodeToString(mac.Sum(nil))
}

// get performs a signed GET on path and decodes the "data" envelope into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("kubera api: building request for %q: %w", path, err)
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	req.Header.Set("x-api-token", c.apiKey)
	req.Header.Set("x-timestamp", timestamp)
	req.Header.Set("x-signature", c.sign(timestamp, http.MethodGet, path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("kubera api: GET %q: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("kubera api: GET %q: status %s: %s", path, resp.Status, body)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("kubera api: decoding response of %q: %w", path, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("kubera api: decoding data of %q: %w", path, err)
	}
	return nil
}
