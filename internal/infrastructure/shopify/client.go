// Package shopify implements the Admin GraphQL client and the query and
// mutation documents the dashboard issues.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"

	"merchant-dashboard-api/internal/metrics"
	"merchant-dashboard-api/internal/ports"
)

// EndpointFunc builds the GraphQL endpoint URL for a shop. Injectable so
// tests can point the client at a local server.
type EndpointFunc func(shop string) string

// DefaultEndpoint returns the production endpoint builder for an API
// version. Shop domains are normalized, so callers may pass either the
// short name or the full myshopify domain.
func DefaultEndpoint(apiVersion string) EndpointFunc {
	return func(shop string) string {
		return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", goshopify.ShopFullName(shop), apiVersion)
	}
}

// TransportError is a non-2xx HTTP response from the Admin API.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("shopify error %d", e.Status)
}

// GraphQLError is one entry of the errors array in a GraphQL envelope.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// GraphQLErrors is a non-empty errors array returned in place of data.
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Message
	}
	return "shopify graphql errors: " + strings.Join(msgs, "; ")
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors GraphQLErrors   `json:"errors,omitempty"`
}

type client struct {
	httpClient *http.Client
	endpoint   EndpointFunc
	logger     zerolog.Logger
}

// NewClient creates an Admin GraphQL client for an API version.
// No timeout is configured: a request's lifetime is bounded only by the
// caller's context and the provider's own latency.
func NewClient(apiVersion string, logger zerolog.Logger) ports.AdminClient {
	return NewClientWithOptions(&http.Client{}, DefaultEndpoint(apiVersion), logger)
}

// NewClientWithOptions creates a client with an injected HTTP client and
// endpoint builder.
func NewClientWithOptions(httpClient *http.Client, endpoint EndpointFunc, logger zerolog.Logger) ports.AdminClient {
	return &client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     logger,
	}
}

func (c *client) Query(ctx context.Context, shop, accessToken, query string, out any) error {
	return c.do(ctx, shop, accessToken, query, nil, out)
}

func (c *client) Mutate(ctx context.Context, shop, accessToken, mutation string, variables map[string]any, out any) error {
	return c.do(ctx, shop, accessToken, mutation, variables, out)
}

func (c *client) do(ctx context.Context, shop, accessToken, document string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(shop), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ShopifyRequestsTotal.WithLabelValues("network_error").Inc()
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ShopifyRequestsTotal.WithLabelValues("network_error").Inc()
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ShopifyRequestsTotal.WithLabelValues("transport_error").Inc()
		c.logger.Error().
			Str("shop", shop).
			Int("status", resp.StatusCode).
			Str("body", string(raw)).
			Msg("Shopify HTTP error")
		return &TransportError{Status: resp.StatusCode, Body: string(raw)}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		metrics.ShopifyRequestsTotal.WithLabelValues("network_error").Inc()
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		metrics.ShopifyRequestsTotal.WithLabelValues("graphql_error").Inc()
		c.logger.Error().
			Str("shop", shop).
			Str("errors", envelope.Errors.Error()).
			Msg("Shopify GraphQL errors")
		return envelope.Errors
	}

	metrics.ShopifyRequestsTotal.WithLabelValues("ok").Inc()

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}

	return nil
}
