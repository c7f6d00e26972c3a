package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Program represents a meal program (a curated bundle of products)
type Program struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Tagline     string    `json:"tagline,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Products    []Product `json:"product"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
}

// Key returns the program's unique identifier
func (program Program) Key() string {
	return program.ID
}

// Matches searches title, subtitle and category
func (program Program) Matches(query string) bool {
	return contains(program.Title, query) ||
		contains(program.Subtitle, query) ||
		contains(program.Category, query)
}

// ExportRow flattens the program for exports
func (program Program) ExportRow() export.Row {
	return export.Row{
		"Title":    dash(program.Title),
		"Subtitle": dash(program.Subtitle),
		"Category": dash(program.Category),
		"Products": amount(len(program.Products)),
		"Created":  dash(program.CreatedAt),
	}
}

// Programs describes the meal program resource
func Programs() Descriptor[Program] {
	return Descriptor[Program]{
		Name:       "programs",
		Sheet:      "Programs",
		ExportBase: "program-details",
		Columns:    []string{"Title", "Subtitle", "Category", "Products", "Created"},
		Required:   []string{"title", "category"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Program, error) {
			return upstream.List[Program](ctx, scope, "/program")
		},
		Detail: func(ctx context.Context, scope *upstream.Scope, id string) (Program, error) {
			return upstream.Get[Program](ctx, scope, path("/program/%s", id))
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Program, error) {
			return upstream.Create[Program](ctx, scope, "/program", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Program, payload json.RawMessage) (Program, error) {
			return upstream.Update[Program](ctx, scope, path("/program/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Program) error {
			return upstream.Remove(ctx, scope, path("/program/%s", record.ID))
		},
	}
}
