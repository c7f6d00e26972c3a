package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Order represents a placed meal order
type Order struct {
	ID              string      `json:"_id"`
	User            UserRef     `json:"userId"`
	Items           []OrderItem `json:"items"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
}

// OrderItem represents a single line item of an order
type OrderItem struct {
	ID       string  `json:"_id"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Key returns the order's unique identifier
func (order Order) Key() string {
	return order.ID
}

// Matches searches customer name/email, status and payment method
func (order Order) Matches(query string) bool {
	return contains(order.User.Username, query) ||
		contains(order.User.Email, query) ||
		contains(order.Status, query) ||
		contains(order.PaymentMethod, query)
}

// ExportRow flattens the order for exports
func (order Order) ExportRow() export.Row {
	return export.Row{
		"Customer": dash(order.User.Username),
		"Email":    dash(order.User.Email),
		"Items":    amount(len(order.Items)),
		"Total":    money(order.TotalPrice),
		"Status":   dash(order.Status),
		"Payment":  dash(order.PaymentMethod),
		"Address":  dash(order.ShippingAddress),
		"Placed":   dash(order.CreatedAt),
	}
}

// Orders describes the order resource.
// The console cannot create orders; it advances their status and removes them.
func Orders() Descriptor[Order] {
	return Descriptor[Order]{
		Name:       "orders",
		Sheet:      "Orders",
		ExportBase: "order-details",
		Columns:    []string{"Customer", "Email", "Items", "Total", "Status", "Payment", "Address", "Placed"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Order, error) {
			return upstream.List[Order](ctx, scope, "/order/orders")
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Order, payload json.RawMessage) (Order, error) {
			return upstream.Update[Order](ctx, scope, path("/order/%s/status/update", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Order) error {
			return upstream.Remove(ctx, scope, path("/order/order/%s", record.ID))
		},
	}
}

// OrderStats summarizes the cached order collection for the console dashboard
type OrderStats struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

// StatsFromOrders computes dashboard statistics over a full order collection.
// Cancelled orders count towards totals but not towards revenue.
func StatsFromOrders(orders []Order) OrderStats {
	stats := OrderStats{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case "pending":
			stats.PendingOrders++
		case "delivered":
			stats.CompletedOrders++
		}
		if order.Status != "cancelled" {
			stats.TotalRevenue += order.TotalPrice
		}
	}
	return stats
}
