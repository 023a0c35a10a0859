package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"merchant-dashboard-api/internal/domain"
	"merchant-dashboard-api/internal/infrastructure/shopify"
	"merchant-dashboard-api/internal/ports"
)

// StorefrontService aggregates store data from the Admin API and applies
// the dashboard's update mutations.
type StorefrontService struct {
	users       ports.UserRepository
	onboardings ports.OnboardingRepository
	resolver    *SessionResolver
	client      ports.AdminClient
	logger      zerolog.Logger
}

// NewStorefrontService creates a new storefront service.
func NewStorefrontService(
	users ports.UserRepository,
	onboardings ports.OnboardingRepository,
	resolver *SessionResolver,
	client ports.AdminClient,
	logger zerolog.Logger,
) *StorefrontService {
	return &StorefrontService{
		users:       users,
		onboardings: onboardings,
		resolver:    resolver,
		client:      client,
		logger:      logger,
	}
}

// FetchDashboard resolves the user's linked shops and fetches store data
// for each. Failures are per-shop: a failed shop stays in the result with
// status "error" and its message, and never aborts the rest.
func (s *StorefrontService) FetchDashboard(ctx context.Context, email string) ([]domain.StoreResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	stores := user.Stores
	if len(stores) == 0 {
		// Fallback: derive stores from completed onboardings for this email.
		onboarded, err := s.onboardings.ListCompleted(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to list onboardings: %w", err)
		}
		for _, o := range onboarded {
			if o.Shop != "" {
				stores = append(stores, o.Shop)
			}
		}
	}

	if len(stores) == 0 {
		return nil, domain.ErrNoLinkedStores
	}

	results := make([]domain.StoreResult, 0, len(stores))
	for _, store := range stores {
		session, err := s.resolver.sessionForShop(ctx, store, email)
		if err == nil && (session == nil || session.AccessToken == "") {
			err = domain.ErrMissingToken
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("shop", store).Msg("Skipping store without usable session")
			results = append(results, failedStore(store, err))
			continue
		}

		data, err := s.FetchStoreData(ctx, store, session.AccessToken)
		if err != nil {
			s.logger.Error().Err(err).Str("shop", store).Msg("Failed to fetch store data")
			results = append(results, failedStore(store, err))
			continue
		}

		results = append(results, domain.StoreResult{
			Shop:      store,
			Status:    domain.StoreStatusOK,
			Orders:    data.Orders,
			Products:  data.Products,
			Inventory: data.Inventory,
		})
	}

	return results, nil
}

func failedStore(shop string, err error) domain.StoreResult {
	return domain.StoreResult{
		Shop:      shop,
		Status:    domain.StoreStatusError,
		Error:     err.Error(),
		Orders:    []domain.Order{},
		Products:  []domain.Product{},
		Inventory: []domain.InventoryRow{},
	}
}

// FetchStoreData issues the three dashboard queries concurrently and joins
// them. Any single failure fails the whole aggregation; there are no
// partial results within a shop.
func (s *StorefrontService) FetchStoreData(ctx context.Context, shop, accessToken string) (*domain.StoreData, error) {
	var (
		ordersResp    shopify.OrdersResponse
		productsResp  shopify.ProductsResponse
		inventoryResp shopify.InventoryResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.client.Query(gctx, shop, accessToken, shopify.OrdersQuery, &ordersResp)
	})
	g.Go(func() error {
		return s.client.Query(gctx, shop, accessToken, shopify.ProductsQuery, &productsResp)
	})
	g.Go(func() error {
		return s.client.Query(gctx, shop, accessToken, shopify.InventoryQuery, &inventoryResp)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.StoreData{
		Orders:    reshapeOrders(&ordersResp),
		Products:  reshapeProducts(&productsResp),
		Inventory: reshapeInventory(&inventoryResp),
	}, nil
}

// ProductUpdateInput carries a conditional product update: a title change,
// a variant price change, or both.
type ProductUpdateInput struct {
	Email     string
	Store     string
	ProductID string
	VariantID string
	Title     string
	Price     string
}

// UpdateProduct issues a title mutation and/or a variant price mutation.
// The first provider userError from either surfaces as *domain.UserError.
func (s *StorefrontService) UpdateProduct(ctx context.Context, in ProductUpdateInput) error {
	resolved, err := s.resolver.Resolve(ctx, in.Email, in.Store)
	if err != nil {
		return err
	}

	if in.Title != "" {
		var resp shopify.ProductUpdateResponse
		err := s.client.Mutate(ctx, resolved.Shop, resolved.AccessToken, shopify.ProductUpdateMutation, map[string]any{
			"input": map[string]any{
				"id":    in.ProductID,
				"title": in.Title,
			},
		}, &resp)
		if err != nil {
			return err
		}
		if err := firstUserError(resp.ProductUpdate.UserErrors); err != nil {
			return err
		}
	}

	if in.Price != "" && in.VariantID != "" {
		var resp shopify.ProductVariantsBulkUpdateResponse
		err := s.client.Mutate(ctx, resolved.Shop, resolved.AccessToken, shopify.ProductVariantsBulkUpdateMutation, map[string]any{
			"productId": in.ProductID,
			"variants": []map[string]any{
				{"id": in.VariantID, "price": in.Price},
			},
		}, &resp)
		if err != nil {
			return err
		}
		if err := firstUserError(resp.ProductVariantsBulkUpdate.UserErrors); err != nil {
			return err
		}
	}

	return nil
}

// UpdateOrderStatus applies an order status change. The session is resolved
// first, so every status requires a usable shop. Only CANCELLED maps to a
// provider mutation (no refund, with restock, fixed customer reason); every
// other status is accepted as a no-op.
func (s *StorefrontService) UpdateOrderStatus(ctx context.Context, email, store, orderID, status string) (string, error) {
	resolved, err := s.resolver.Resolve(ctx, email, store)
	if err != nil {
		return "", err
	}

	if status != "CANCELLED" {
		return fmt.Sprintf("Order status update to %s is not yet implemented", status), nil
	}

	var resp shopify.OrderCancelResponse
	err = s.client.Mutate(ctx, resolved.Shop, resolved.AccessToken, shopify.OrderCancelMutation, map[string]any{
		"orderId": orderID,
		"refund":  false,
		"restock": true,
		"reason":  "CUSTOMER",
	}, &resp)
	if err != nil {
		return "", err
	}
	if err := firstUserError(resp.OrderCancel.UserErrors); err != nil {
		return "", err
	}

	return "Order cancelled successfully", nil
}

// AdjustInventory applies a delta-based available-quantity adjustment for
// an inventory item at a location.
func (s *StorefrontService) AdjustInventory(ctx context.Context, email, store, itemID, locationID string, delta int) error {
	resolved, err := s.resolver.Resolve(ctx, email, store)
	if err != nil {
		return err
	}

	var resp shopify.InventoryAdjustResponse
	err = s.client.Mutate(ctx, resolved.Shop, resolved.AccessToken, shopify.InventoryAdjustQuantitiesMutation, map[string]any{
		"input": map[string]any{
			"reason": "correction",
			"name":   "available",
			"changes": []map[string]any{
				{
					"inventoryItemId": itemID,
					"locationId":      locationID,
					"delta":           delta,
				},
			},
		},
	}, &resp)
	if err != nil {
		return err
	}
	return firstUserError(resp.InventoryAdjustQuantities.UserErrors)
}

func firstUserError(errs []shopify.MutationUserError) error {
	if len(errs) == 0 {
		return nil
	}
	return &domain.UserError{Field: errs[0].Field, Message: errs[0].Message}
}
