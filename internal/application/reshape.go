package application

import (
	"strconv"
	"strings"

	"merchant-dashboard-api/internal/domain"
	"merchant-dashboard-api/internal/infrastructure/shopify"
)

// Reshaping turns the provider's nested connection payloads into the flat
// display rows the client renders. The rules here are load-bearing for the
// client: field fallbacks, the placeholder sentinel and the default-variant
// title rule must not drift.

func reshapeOrders(resp *shopify.OrdersResponse) []domain.Order {
	orders := make([]domain.Order, 0, len(resp.Orders.Edges))
	for _, edge := range resp.Orders.Edges {
		node := edge.Node

		status := domain.Placeholder
		switch {
		case strPtrSet(node.CancelledAt) || strPtrSet(node.CancelReason):
			status = "CANCELLED"
		case node.DisplayFulfillmentStatus != "":
			status = node.DisplayFulfillmentStatus
		case node.DisplayFinancialStatus != "":
			status = node.DisplayFinancialStatus
		}

		customer := "Unknown"
		if node.Customer != nil && node.Customer.DisplayName != "" {
			customer = node.Customer.DisplayName
		}

		total := domain.Placeholder
		if node.TotalPriceSet != nil {
			money := node.TotalPriceSet.ShopMoney
			total = money.Amount + " " + money.CurrencyCode
		}

		lineItems := make([]domain.OrderLineItem, 0, len(node.LineItems.Edges))
		for _, itemEdge := range node.LineItems.Edges {
			item := itemEdge.Node
			price := domain.Placeholder
			if item.Variant != nil && item.Variant.Price != "" {
				price = item.Variant.Price
			}
			lineItems = append(lineItems, domain.OrderLineItem{
				ID:       gidTail(item.ID),
				Title:    item.Title,
				Quantity: item.Quantity,
				Price:    price,
			})
		}

		orders = append(orders, domain.Order{
			OrderID:   node.ID,
			ID:        node.Name,
			Customer:  customer,
			Total:     total,
			Status:    status,
			LineItems: lineItems,
		})
	}
	return orders
}

func reshapeProducts(resp *shopify.ProductsResponse) []domain.Product {
	products := make([]domain.Product, 0, len(resp.Products.Edges))
	for _, edge := range resp.Products.Edges {
		node := edge.Node

		// A product without variants still gets one row.
		if len(node.Variants.Edges) == 0 {
			inventory := domain.DisplayQty(domain.Placeholder)
			if node.TotalInventory != nil {
				inventory = domain.DisplayQty(strconv.Itoa(*node.TotalInventory))
			}
			products = append(products, domain.Product{
				ID:           gidTail(node.ID),
				ProductID:    node.ID,
				Title:        node.Title,
				DisplayTitle: node.Title,
				Price:        domain.Placeholder,
				Inventory:    inventory,
			})
			continue
		}

		for _, variantEdge := range node.Variants.Edges {
			variant := variantEdge.Node

			displayTitle := node.Title
			if variant.Title != domain.DefaultVariantTitle {
				displayTitle = node.Title + " - " + variant.Title
			}

			price := domain.Placeholder
			if variant.Price != "" {
				price = variant.Price
			}

			var level *shopify.InventoryLevel
			var inventoryItemID string
			if variant.InventoryItem != nil {
				inventoryItemID = variant.InventoryItem.ID
				if edges := variant.InventoryItem.InventoryLevels.Edges; len(edges) > 0 {
					level = &edges[0].Node
				}
			}

			inventory := domain.DisplayQty(domain.Placeholder)
			if level != nil && len(level.Quantities) > 0 {
				inventory = domain.DisplayQty(strconv.Itoa(level.Quantities[0].Quantity))
			} else if variant.InventoryQuantity != nil {
				inventory = domain.DisplayQty(strconv.Itoa(*variant.InventoryQuantity))
			}

			row := domain.Product{
				ID:              gidTail(variant.ID),
				ProductID:       node.ID,
				VariantID:       variant.ID,
				Title:           node.Title,
				VariantTitle:    variant.Title,
				DisplayTitle:    displayTitle,
				Price:           price,
				Inventory:       inventory,
				InventoryItemID: inventoryItemID,
			}
			if level != nil && level.Location != nil {
				row.LocationID = level.Location.ID
				row.LocationName = level.Location.Name
			}
			products = append(products, row)
		}
	}
	return products
}

func reshapeInventory(resp *shopify.InventoryResponse) []domain.InventoryRow {
	rows := make([]domain.InventoryRow, 0, len(resp.InventoryItems.Edges))
	for _, edge := range resp.InventoryItems.Edges {
		node := edge.Node

		productTitle := "Unknown Product"
		variantTitle := ""
		if node.Variant != nil {
			variantTitle = node.Variant.Title
			if node.Variant.Product != nil && node.Variant.Product.Title != "" {
				productTitle = node.Variant.Product.Title
			}
		}

		displayTitle := productTitle
		if variantTitle != "" && variantTitle != domain.DefaultVariantTitle {
			displayTitle = productTitle + " - " + variantTitle
		}

		sku := domain.Placeholder
		if node.SKU != "" {
			sku = node.SKU
		}

		for _, level := range node.Levels() {
			location := domain.Placeholder
			locationID := ""
			if level.Location != nil {
				locationID = level.Location.ID
				if level.Location.Name != "" {
					location = level.Location.Name
				}
			}

			rows = append(rows, domain.InventoryRow{
				Title:      displayTitle,
				SKU:        sku,
				Location:   location,
				Qty:        availableQty(level.Quantities),
				ItemID:     node.ID,
				LocationID: locationID,
			})
		}
	}
	return rows
}

// availableQty prefers the entry named "available", then the first entry,
// then the placeholder.
func availableQty(quantities []shopify.Quantity) domain.DisplayQty {
	for _, q := range quantities {
		if q.Name == "available" {
			return domain.DisplayQty(strconv.Itoa(q.Quantity))
		}
	}
	if len(quantities) > 0 {
		return domain.DisplayQty(strconv.Itoa(quantities[0].Quantity))
	}
	return domain.Placeholder
}

// gidTail returns the last path segment of a GraphQL GID, or the input
// unchanged when it has no slashes.
func gidTail(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

func strPtrSet(p *string) bool {
	return p != nil && *p != ""
}
