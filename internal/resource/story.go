package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// SuccessStory represents a customer success story shown on the landing page
type SuccessStory struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Author      string `json:"author,omitempty"`
	Role        string `json:"role"`
	Date        string `json:"date"`
	IsActive    bool   `json:"isActive"`
}

// Key returns the story's unique identifier
func (story SuccessStory) Key() string {
	return story.ID
}

// Matches searches title, author and role
func (story SuccessStory) Matches(query string) bool {
	return contains(story.Title, query) ||
		contains(story.Author, query) ||
		contains(story.Role, query)
}

// ExportRow flattens the story for exports
func (story SuccessStory) ExportRow() export.Row {
	return export.Row{
		"Title":  dash(story.Title),
		"Author": dash(story.Author),
		"Role":   dash(story.Role),
		"Date":   dash(story.Date),
		"Active": yesNo(story.IsActive),
	}
}

// SuccessStories describes the success story resource
func SuccessStories() Descriptor[SuccessStory] {
	return Descriptor[SuccessStory]{
		Name:       "success-stories",
		Sheet:      "SuccessStories",
		ExportBase: "success-story-details",
		Columns:    []string{"Title", "Author", "Role", "Date", "Active"},
		Required:   []string{"title", "description", "role"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]SuccessStory, error) {
			return upstream.List[SuccessStory](ctx, scope, "/success")
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (SuccessStory, error) {
			return upstream.Create[SuccessStory](ctx, scope, "/success", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record SuccessStory, payload json.RawMessage) (SuccessStory, error) {
			return upstream.Update[SuccessStory](ctx, scope, path("/success/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record SuccessStory) error {
			return upstream.Remove(ctx, scope, path("/success/%s", record.ID))
		},
	}
}
