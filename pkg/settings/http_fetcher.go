package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a settings response is read
const maxBodyBytes = 2 << 20

// HTTPFetcher reads the settings envelope from a remote endpoint with GET
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher for url using http.DefaultClient when client is nil
func NewHTTPFetcher(url string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{URL: url, Client: client}
}

// Fetch issues one GET request and decodes the {success, data} envelope.
// A non-2xx status, an undecodable body, a missing success field or success=false are all errors.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*Settings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build settings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch settings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedCode, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read settings body: %w", err)
	}

	return DecodeEnvelope(body)
}

// DecodeEnvelope parses an envelope and returns its document
func DecodeEnvelope(body []byte) (*Settings, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if env.Success == nil {
		return nil, fmt.Errorf("%w: missing success field", ErrMalformedBody)
	}
	if !*env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrRequestRejected, env.Message)
		}
		return nil, ErrRequestRejected
	}
	if env.Data == nil {
		return nil, ErrEmptyDocument
	}
	return env.Data, nil
}
