package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Language represents a supported UI language entry
type Language struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Key returns the language's unique identifier
func (language Language) Key() string {
	return language.ID
}

// Matches searches name and code
func (language Language) Matches(query string) bool {
	return contains(language.Name, query) ||
		contains(language.Code, query)
}

// ExportRow flattens the language for exports
func (language Language) ExportRow() export.Row {
	return export.Row{
		"Name":    dash(language.Name),
		"Code":    dash(language.Code),
		"Active":  yesNo(language.IsActive),
		"Created": dash(language.CreatedAt),
	}
}

// Languages describes the UI language resource
func Languages() Descriptor[Language] {
	return Descriptor[Language]{
		Name:       "languages",
		Sheet:      "Languages",
		ExportBase: "language-details",
		Columns:    []string{"Name", "Code", "Active", "Created"},
		Required:   []string{"name", "code"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Language, error) {
			return upstream.ListEnveloped[Language](ctx, scope, "/language", "languages")
		},
		Detail: func(ctx context.Context, scope *upstream.Scope, id string) (Language, error) {
			return upstream.Get[Language](ctx, scope, path("/language/%s", id))
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Language, error) {
			return upstream.Create[Language](ctx, scope, "/language", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Language, payload json.RawMessage) (Language, error) {
			return upstream.Update[Language](ctx, scope, path("/language/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Language) error {
			return upstream.Remove(ctx, scope, path("/language/%s", record.ID))
		},
	}
}
