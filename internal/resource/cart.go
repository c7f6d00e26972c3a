package resource

import (
	"context"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// cartDocument mirrors the upstream cart payload: one document per customer,
// holding nested line items.
type cartDocument struct {
	CartID     string  `json:"cartId"`
	User       UserRef `json:"user"`
	TotalPrice float64 `json:"totalPrice"`
	Items      []struct {
		Quantity   int        `json:"quantity"`
		Product    ProductRef `json:"product"`
		Restaurant *struct {
			Name    string `json:"name"`
			Address string `json:"address,omitempty"`
		} `json:"restaurant,omitempty"`
		Program *struct {
			Title       string `json:"title"`
			Description string `json:"description,omitempty"`
		} `json:"program,omitempty"`
	} `json:"items"`
}

// CartEntry represents one flattened cart line item: customer x product.
// The cart table, search and exports all operate on these flattened entries rather than
// on the nested upstream documents.
type CartEntry struct {
	CartID     string  `json:"cartId"`
	User       UserRef `json:"user"`
	Product    ProductRef
	Quantity   int
	Restaurant string
	Program    string
	TotalPrice float64
}

// Key returns a stable identifier for the flattened entry
func (entry CartEntry) Key() string {
	return entry.CartID + ":" + entry.Product.ID
}

// Matches searches customer name/email, product, restaurant and program
func (entry CartEntry) Matches(query string) bool {
	return contains(entry.User.Username, query) ||
		contains(entry.User.Email, query) ||
		contains(entry.Product.Name, query) ||
		contains(entry.Restaurant, query) ||
		contains(entry.Program, query)
}

// ExportRow flattens the entry for exports, matching the console's cart export columns
func (entry CartEntry) ExportRow() export.Row {
	return export.Row{
		"User":       dash(entry.User.Username),
		"Email":      dash(entry.User.Email),
		"Product":    dash(entry.Product.Name),
		"Quantity":   amount(entry.Quantity),
		"Price":      money(entry.Product.Price),
		"Total":      money(entry.TotalPrice),
		"Restaurant": dash(entry.Restaurant),
		"Program":    dash(entry.Program),
	}
}

// Carts describes the read-only cart overview resource
func Carts() Descriptor[CartEntry] {
	return Descriptor[CartEntry]{
		Name:       "carts",
		Sheet:      "CartDetails",
		ExportBase: "cart-details",
		Columns:    []string{"User", "Email", "Product", "Quantity", "Price", "Total", "Restaurant", "Program"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]CartEntry, error) {
			documents, err := upstream.List[cartDocument](ctx, scope, "/cart/full/cart-details")
			if err != nil {
				return nil, err
			}
			return flattenCarts(documents), nil
		},
	}
}

func flattenCarts(documents []cartDocument) []CartEntry {
	entries := make([]CartEntry, 0, len(documents))
	for _, document := range documents {
		for _, item := range document.Items {
			entry := CartEntry{
				CartID:     document.CartID,
				User:       document.User,
				Product:    item.Product,
				Quantity:   item.Quantity,
				TotalPrice: item.Product.Price * float64(item.Quantity),
			}
			if item.Restaurant != nil {
				entry.Restaurant = item.Restaurant.Name
			}
			if item.Program != nil {
				entry.Program = item.Program.Title
			}
			entries = append(entries, entry)
		}
	}
	return entries
}
