package shopify

// OrdersQuery fetches the first page of orders, newest first, with line
// items and variant prices.
const OrdersQuery = `
{
  orders(first: 20, sortKey: CREATED_AT, reverse: true) {
    edges {
      node {
        id
        name
        displayFulfillmentStatus
        displayFinancialStatus
        cancelReason
        cancelledAt
        totalPriceSet { shopMoney { amount currencyCode } }
        customer { displayName email }
        lineItems(first: 50) {
          edges {
            node {
              id
              title
              quantity
              variant {
                id
                price
              }
            }
          }
        }
      }
    }
  }
}
`

// ProductsQuery fetches the first page of products by title, each variant
// with its first inventory level and available quantity.
const ProductsQuery = `
{
  products(first: 50, sortKey: TITLE) {
    edges {
      node {
        id
        title
        totalInventory
        variants(first: 100) {
          edges {
            node {
              id
              title
              price
              inventoryQuantity
              inventoryItem {
                id
                inventoryLevels(first: 1) {
                  edges {
                    node {
                      id
                      location {
                        id
                        name
                      }
                      quantities(names: ["available"]) {
                        name
                        quantity
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}
`

// InventoryQuery fetches the first page of inventory items with up to three
// location levels each.
const InventoryQuery = `
{
  inventoryItems(first: 50) {
    edges {
      node {
        id
        sku
        tracked
        variant {
          id
          title
          product {
            id
            title
          }
        }
        inventoryLevels(first: 3) {
          edges {
            node {
              id
              quantities(names: ["available"]) {
                name
                quantity
              }
              location { id name }
              item { id }
            }
          }
        }
      }
    }
  }
}
`
