package ports

import "context"

// AdminClient defines the interface for Shopify Admin GraphQL operations.
// Implementations POST the document to the shop's GraphQL endpoint with the
// access token and decode the data envelope into out.
type AdminClient interface {
	// Query executes a GraphQL query document without variables.
	Query(ctx context.Context, shop, accessToken, query string, out any) error

	// Mutate executes a GraphQL mutation document with variables.
	Mutate(ctx context.Context, shop, accessToken, mutation string, variables map[string]any, out any) error
}
