package shopify

// ProductUpdateMutation updates a product's title.
const ProductUpdateMutation = `
mutation productUpdate($input: ProductInput!) {
  productUpdate(input: $input) {
    product { id title }
    userErrors { field message }
  }
}
`

// ProductVariantsBulkUpdateMutation updates variant prices on a product.
const ProductVariantsBulkUpdateMutation = `
mutation productVariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    product { id }
    userErrors { field message }
  }
}
`

// OrderCancelMutation cancels an order.
const OrderCancelMutation = `
mutation orderCancel($orderId: ID!, $refund: Boolean!, $restock: Boolean!, $reason: OrderCancelReason!) {
  orderCancel(orderId: $orderId, refund: $refund, restock: $restock, reason: $reason) {
    userErrors { field message }
  }
}
`

// InventoryAdjustQuantitiesMutation applies a delta-based quantity
// adjustment at a location.
const InventoryAdjustQuantitiesMutation = `
mutation inventoryAdjustQuantities($input: InventoryAdjustQuantitiesInput!) {
  inventoryAdjustQuantities(input: $input) {
    inventoryAdjustmentGroup {
      reason
      changes {
        name
        delta
      }
    }
    userErrors { field message }
  }
}
`

// MutationUserError mirrors a Shopify userErrors entry.
type MutationUserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// ProductUpdateResponse is the data envelope for ProductUpdateMutation.
type ProductUpdateResponse struct {
	ProductUpdate struct {
		Product struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"product"`
		UserErrors []MutationUserError `json:"userErrors"`
	} `json:"productUpdate"`
}

// ProductVariantsBulkUpdateResponse is the data envelope for
// ProductVariantsBulkUpdateMutation.
type ProductVariantsBulkUpdateResponse struct {
	ProductVariantsBulkUpdate struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		UserErrors []MutationUserError `json:"userErrors"`
	} `json:"productVariantsBulkUpdate"`
}

// OrderCancelResponse is the data envelope for OrderCancelMutation.
type OrderCancelResponse struct {
	OrderCancel struct {
		UserErrors []MutationUserError `json:"userErrors"`
	} `json:"orderCancel"`
}

// InventoryAdjustResponse is the data envelope for
// InventoryAdjustQuantitiesMutation.
type InventoryAdjustResponse struct {
	InventoryAdjustQuantities struct {
		InventoryAdjustmentGroup struct {
			Reason  string `json:"reason"`
			Changes []struct {
				Name  string `json:"name"`
				Delta int    `json:"delta"`
			} `json:"changes"`
		} `json:"inventoryAdjustmentGroup"`
		UserErrors []MutationUserError `json:"userErrors"`
	} `json:"inventoryAdjustQuantities"`
}
