package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the two backend origins (tables, reservations) and
// normalizes every failure into a single human-readable message. It holds no
// state besides configuration, so one instance is shared by all views.
type Client struct {
	tablesBase       string
	reservationsBase string
	httpClient       *http.Client
}

func NewClient(tablesURL, reservationsURL string, timeout time.Duration) *Client {
	return &Client{
		tablesBase:       strings.TrimRight(tablesURL, "/") + "/api/tables",
		reservationsBase: strings.TrimRight(reservationsURL, "/") + "/api/reservations",
		httpClient:       &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New(errorMessage(data))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// errorMessage flattens the backend error body {error, errors[]} into one
// string: a single error wins, then the joined field errors, then a generic
// fallback. Callers never see structured codes.
func errorMessage(body []byte) string {
	var payload struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if len(payload.Errors) > 0 {
			return strings.Join(payload.Errors, ", ")
		}
	}
	return "request failed"
}

// queryString serializes only the non-empty filter values. An empty or nil
// map yields no query string at all.
func queryString(filters map[string]string) string {
	values := url.Values{}
	for key, value := range filters {
		if value != "" {
			values.Set(key, value)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
