// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// Version of the library, reported in the default User-Agent header.
const Version = "0.1.0"

// URL is the default base URL of the server. It may be overwritten in tests
// before creating a new client.
var URL = "https://arkfunds.io/api/v2"

// UserAgent is the default identifying header value for outbound requests.
var UserAgent = "go-arkfunds/" + Version

// Timeout is the default per-request timeout.
var Timeout = 30 * time.Second

// Client for querying the arkfunds.io endpoints.
type Client struct {
	baseURL   string // the base URL of the server
	userAgent string // identifying User-Agent header value
	timeout   time.Duration
}

// newClient creates a new client from the current package-level settings.
func newClient() *Client {
	return &Client{
		baseURL:   URL,
		userAgent: UserAgent,
		timeout:   Timeout,
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client from the package-level settings and injects
// it into the context. The client is immutable for the lifetime of the
// context; later changes to URL, UserAgent or Timeout do not affect it.
func UseClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient())
}

// StatusError is the error returned for an HTTP error status other than 404.
type StatusError struct {
	StatusCode int
	Status     string
}

var _ error = &StatusError{}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("unexpected HTTP status %s", e.Status)
	}
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// Fetch issues a single GET request for the endpoint, without retries, using
// the settings of the Client in the context and the *http.Client injected by
// fetch.UseClient, and decodes the JSON response body. An HTTP 404 means "no
// data for this query": the second return value is false, and there is no
// error. Any other non-2xx status is returned as a *StatusError.
func Fetch(ctx context.Context, e Endpoint, q *Query) (interface{}, bool, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, false, errors.Reason("Fetch: no client in context")
	}
	path := e.Path()
	if path == "" {
		return nil, false, errors.Reason("Fetch: unknown endpoint %s", e)
	}
	uri := client.baseURL + path

	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, false, errors.Annotate(err, "Fetch: failed to create request for '%s'", uri)
	}
	req.URL.RawQuery = q.Values().Encode()
	req.Header.Set("User-Agent", client.userAgent)

	httpClient := fetch.GetClient(ctx)
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, false, errors.Annotate(err, "Fetch: failed to GET '%s'", uri)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}
	var js interface{}
	if err := json.NewDecoder(resp.Body).Decode(&js); err != nil {
		return nil, false, errors.Annotate(err, "Fetch: failed to decode JSON from '%s'", uri)
	}
	return js, true, nil
}
