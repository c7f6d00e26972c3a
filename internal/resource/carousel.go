package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Carousel represents a home-screen carousel slide
type Carousel struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Key returns the slide's unique identifier
func (carousel Carousel) Key() string {
	return carousel.ID
}

// Matches searches title and description
func (carousel Carousel) Matches(query string) bool {
	return contains(carousel.Title, query) ||
		contains(carousel.Description, query)
}

// ExportRow flattens the slide for exports
func (carousel Carousel) ExportRow() export.Row {
	return export.Row{
		"Title":       dash(carousel.Title),
		"Description": dash(carousel.Description),
		"Active":      yesNo(carousel.IsActive),
		"Created":     dash(carousel.CreatedAt),
	}
}

// ActiveCarousels fetches only the slides currently enabled for the home screen
func ActiveCarousels(ctx context.Context, scope *upstream.Scope) ([]Carousel, error) {
	return upstream.List[Carousel](ctx, scope, "/carousel/active")
}

// Carousels describes the carousel slide resource
func Carousels() Descriptor[Carousel] {
	return Descriptor[Carousel]{
		Name:       "carousels",
		Sheet:      "Carousels",
		ExportBase: "carousel-details",
		Columns:    []string{"Title", "Description", "Active", "Created"},
		Required:   []string{"title", "image"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Carousel, error) {
			return upstream.List[Carousel](ctx, scope, "/carousel")
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Carousel, error) {
			return upstream.Create[Carousel](ctx, scope, "/carousel", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Carousel, payload json.RawMessage) (Carousel, error) {
			return upstream.Update[Carousel](ctx, scope, path("/carousel/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Carousel) error {
			return upstream.Remove(ctx, scope, path("/carousel/%s", record.ID))
		},
	}
}
