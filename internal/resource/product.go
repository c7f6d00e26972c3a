package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Product represents a single meal product
type Product struct {
	ID             string     `json:"_id"`
	Name           string     `json:"name"`
	Tagline        string     `json:"tagline,omitempty"`
	Description    string     `json:"description,omitempty"`
	Price          float64    `json:"price"`
	Image          string     `json:"image,omitempty"`
	Rating         float64    `json:"rating,omitempty"`
	Features       string     `json:"features"`
	Stock          int        `json:"stock"`
	Nutrition      *Nutrition `json:"nutrition,omitempty"`
	Ingredients    []string   `json:"ingredients,omitempty"`
	MealType       string     `json:"mealType,omitempty"`
	AvailableDates []string   `json:"availableDates"`
	Category       string     `json:"category,omitempty"`
	CreatedAt      string     `json:"createdAt,omitempty"`
	UpdatedAt      string     `json:"updatedAt,omitempty"`
}

// Nutrition represents the nutrition facts attached to a product
type Nutrition struct {
	Fat          string `json:"fat,omitempty"`
	Carbohydrate string `json:"carbohydrate,omitempty"`
	Protein      string `json:"protein,omitempty"`
	Calories     string `json:"calories,omitempty"`
}

// Key returns the product's unique identifier
func (product Product) Key() string {
	return product.ID
}

// Matches searches name, meal type and category
func (product Product) Matches(query string) bool {
	return contains(product.Name, query) ||
		contains(product.MealType, query) ||
		contains(product.Category, query)
}

// ExportRow flattens the product for exports
func (product Product) ExportRow() export.Row {
	return export.Row{
		"Name":      dash(product.Name),
		"Category":  dash(product.Category),
		"Meal Type": dash(product.MealType),
		"Price":     money(product.Price),
		"Stock":     amount(product.Stock),
		"Rating":    money(product.Rating),
		"Tagline":   dash(product.Tagline),
	}
}

// validateProductPayload enforces the documented rating domain of 1 to 5
func validateProductPayload(payload json.RawMessage) []string {
	var fields struct {
		Rating *float64 `json:"rating"`
		Price  *float64 `json:"price"`
	}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return []string{"payload is not a JSON object"}
	}
	var violations []string
	if fields.Rating != nil && (*fields.Rating < 1 || *fields.Rating > 5) {
		violations = append(violations, "rating must be between 1 and 5")
	}
	if fields.Price != nil && *fields.Price < 0 {
		violations = append(violations, "price must not be negative")
	}
	return violations
}

// Products describes the meal product resource
func Products() Descriptor[Product] {
	return Descriptor[Product]{
		Name:       "products",
		Sheet:      "Products",
		ExportBase: "product-details",
		Columns:    []string{"Name", "Category", "Meal Type", "Price", "Stock", "Rating", "Tagline"},
		Required:   []string{"name", "price", "features"},
		Validate:   validateProductPayload,
		List: func(ctx context.Context, scope *upstream.Scope) ([]Product, error) {
			return upstream.List[Product](ctx, scope, "/product")
		},
		Detail: func(ctx context.Context, scope *upstream.Scope, id string) (Product, error) {
			return upstream.Get[Product](ctx, scope, path("/product/%s", id))
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Product, error) {
			return upstream.Create[Product](ctx, scope, "/product", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Product, payload json.RawMessage) (Product, error) {
			return upstream.Update[Product](ctx, scope, path("/product/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Product) error {
			return upstream.Remove(ctx, scope, path("/product/%s", record.ID))
		},
	}
}
