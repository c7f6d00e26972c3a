package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Restaurant represents a partner restaurant and its menus
type Restaurant struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Features    []string  `json:"features,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Address     string    `json:"address,omitempty"`
	Menu        []Product `json:"menu"`
	PopularMenu []Product `json:"popularMenu"`
	Location    *LatLng   `json:"location,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
}

// LatLng represents a geographic coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Key returns the restaurant's unique identifier
func (restaurant Restaurant) Key() string {
	return restaurant.ID
}

// Matches searches name and address
func (restaurant Restaurant) Matches(query string) bool {
	return contains(restaurant.Name, query) ||
		contains(restaurant.Address, query)
}

// ExportRow flattens the restaurant for exports
func (restaurant Restaurant) ExportRow() export.Row {
	return export.Row{
		"Name":          dash(restaurant.Name),
		"Address":       dash(restaurant.Address),
		"Rating":        money(restaurant.Rating),
		"Features":      dashJoin(restaurant.Features),
		"Menu Items":    amount(len(restaurant.Menu)),
		"Popular Items": amount(len(restaurant.PopularMenu)),
	}
}

// Restaurants describes the partner restaurant resource
func Restaurants() Descriptor[Restaurant] {
	return Descriptor[Restaurant]{
		Name:       "restaurants",
		Sheet:      "Restaurants",
		ExportBase: "restaurant-details",
		Columns:    []string{"Name", "Address", "Rating", "Features", "Menu Items", "Popular Items"},
		Required:   []string{"name"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Restaurant, error) {
			return upstream.List[Restaurant](ctx, scope, "/restaurant")
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Restaurant, error) {
			return upstream.Create[Restaurant](ctx, scope, "/restaurant", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Restaurant, payload json.RawMessage) (Restaurant, error) {
			return upstream.Update[Restaurant](ctx, scope, path("/restaurant/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Restaurant) error {
			return upstream.Remove(ctx, scope, path("/restaurant/%s", record.ID))
		},
	}
}
