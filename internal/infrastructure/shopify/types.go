package shopify

// Response types for the dashboard queries. Nullable provider fields use
// pointers so reshaping can tell "absent" apart from zero.

// Quantity is one named quantity of an inventory level.
type Quantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Location identifies an inventory location.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InventoryLevel is one location-level of an inventory item.
type InventoryLevel struct {
	ID         string     `json:"id"`
	Location   *Location  `json:"location"`
	Quantities []Quantity `json:"quantities"`
}

type inventoryLevelEdge struct {
	Node InventoryLevel `json:"node"`
}

type inventoryLevelConnection struct {
	Edges []inventoryLevelEdge `json:"edges"`
}

// OrdersResponse is the data envelope for OrdersQuery.
type OrdersResponse struct {
	Orders struct {
		Edges []struct {
			Node OrderNode `json:"node"`
		} `json:"edges"`
	} `json:"orders"`
}

// OrderNode is one order as returned by OrdersQuery.
type OrderNode struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	DisplayFulfillmentStatus string  `json:"displayFulfillmentStatus"`
	DisplayFinancialStatus   string  `json:"displayFinancialStatus"`
	CancelReason             *string `json:"cancelReason"`
	CancelledAt              *string `json:"cancelledAt"`
	TotalPriceSet            *struct {
		ShopMoney struct {
			Amount       string `json:"amount"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"shopMoney"`
	} `json:"totalPriceSet"`
	Customer *struct {
		DisplayName string `json:"displayName"`
		Email       string `json:"email"`
	} `json:"customer"`
	LineItems struct {
		Edges []struct {
			Node OrderLineItemNode `json:"node"`
		} `json:"edges"`
	} `json:"lineItems"`
}

// OrderLineItemNode is one line item of an order.
type OrderLineItemNode struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Variant  *struct {
		ID    string `json:"id"`
		Price string `json:"price"`
	} `json:"variant"`
}

// ProductsResponse is the data envelope for ProductsQuery.
type ProductsResponse struct {
	Products struct {
		Edges []struct {
			Node ProductNode `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

// ProductNode is one product as returned by ProductsQuery.
type ProductNode struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	TotalInventory *int   `json:"totalInventory"`
	Variants       struct {
		Edges []struct {
			Node VariantNode `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

// VariantNode is one variant of a product.
type VariantNode struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Price             string `json:"price"`
	InventoryQuantity *int   `json:"inventoryQuantity"`
	InventoryItem     *struct {
		ID              string                   `json:"id"`
		InventoryLevels inventoryLevelConnection `json:"inventoryLevels"`
	} `json:"inventoryItem"`
}

// InventoryResponse is the data envelope for InventoryQuery.
type InventoryResponse struct {
	InventoryItems struct {
		Edges []struct {
			Node InventoryItemNode `json:"node"`
		} `json:"edges"`
	} `json:"inventoryItems"`
}

// InventoryItemNode is one inventory item with its location levels.
type InventoryItemNode struct {
	ID      string `json:"id"`
	SKU     string `json:"sku"`
	Tracked bool   `json:"tracked"`
	Variant *struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Product *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"product"`
	} `json:"variant"`
	InventoryLevels inventoryLevelConnection `json:"inventoryLevels"`
}

// Levels returns the item's inventory levels as a flat slice.
func (n *InventoryItemNode) Levels() []InventoryLevel {
	levels := make([]InventoryLevel, 0, len(n.InventoryLevels.Edges))
	for _, edge := range n.InventoryLevels.Edges {
		levels = append(levels, edge.Node)
	}
	return levels
}
