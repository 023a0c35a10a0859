package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Placeholder is substituted for any absent field across all display
// records. The client renders it verbatim, so it must stay consistent.
const Placeholder = "—"

// DefaultVariantTitle is Shopify's sentinel title for the implicit variant
// of a single-variant product. Display titles omit it.
const DefaultVariantTitle = "Default Title"

// DisplayQty is a display quantity: a JSON number when known and the
// placeholder string when absent.
type DisplayQty string

func (q DisplayQty) MarshalJSON() ([]byte, error) {
	if _, err := strconv.Atoi(string(q)); err == nil {
		return []byte(q), nil
	}
	return json.Marshal(string(q))
}

func (q *DisplayQty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = DisplayQty(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid quantity: %s", string(data))
	}
	*q = DisplayQty(n.String())
	return nil
}

// OrderLineItem is one line of an order, flattened for display.
type OrderLineItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// Order is a display projection of a Shopify order. ID carries the
// human-readable order name; OrderID the provider's opaque GID.
type Order struct {
	OrderID   string          `json:"orderId"`
	ID        string          `json:"id"`
	Customer  string          `json:"customer"`
	Total     string          `json:"total"`
	Status    string          `json:"status"`
	LineItems []OrderLineItem `json:"lineItems"`
}

// Product is one display row per product variant. A product without
// variants still yields a single row; its variant fields are omitted.
type Product struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"productId"`
	VariantID       string     `json:"variantId,omitempty"`
	Title           string     `json:"title"`
	VariantTitle    string     `json:"variantTitle,omitempty"`
	DisplayTitle    string     `json:"displayTitle"`
	Price           string     `json:"price"`
	Inventory       DisplayQty `json:"inventory"`
	InventoryItemID string     `json:"inventoryItemId,omitempty"`
	LocationID      string     `json:"locationId,omitempty"`
	LocationName    string     `json:"locationName,omitempty"`
}

// InventoryRow is one display row per inventory level of an item.
type InventoryRow struct {
	Title      string     `json:"title"`
	SKU        string     `json:"sku"`
	Location   string     `json:"location"`
	Qty        DisplayQty `json:"qty"`
	ItemID     string     `json:"itemId"`
	LocationID string     `json:"locationId,omitempty"`
}

// StoreData aggregates the three display collections for one shop.
type StoreData struct {
	Orders    []Order        `json:"orders"`
	Products  []Product      `json:"products"`
	Inventory []InventoryRow `json:"inventory"`
}

// Store result statuses. A failed shop stays in the response with its error
// message so callers can tell "no data" apart from "fetch failed".
const (
	StoreStatusOK    = "ok"
	StoreStatusError = "error"
)

// StoreResult is the per-shop slice of a dashboard response.
type StoreResult struct {
	Shop      string         `json:"shop"`
	Status    string         `json:"status"`
	Error     string         `json:"error,omitempty"`
	Orders    []Order        `json:"orders"`
	Products  []Product      `json:"products"`
	Inventory []InventoryRow `json:"inventory"`
}
