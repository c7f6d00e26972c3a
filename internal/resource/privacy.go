package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// PrivacyPolicy represents a versioned privacy policy document
type PrivacyPolicy struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Version       string `json:"version,omitempty"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// Key returns the policy's unique identifier
func (policy PrivacyPolicy) Key() string {
	return policy.ID
}

// Matches searches title and version
func (policy PrivacyPolicy) Matches(query string) bool {
	return contains(policy.Title, query) ||
		contains(policy.Version, query)
}

// ExportRow flattens the policy for exports
func (policy PrivacyPolicy) ExportRow() export.Row {
	return export.Row{
		"Title":     dash(policy.Title),
		"Version":   dash(policy.Version),
		"Active":    yesNo(policy.IsActive),
		"Effective": dash(policy.EffectiveDate),
		"Created":   dash(policy.CreatedAt),
	}
}

// PrivacyPolicies describes the privacy policy resource
func PrivacyPolicies() Descriptor[PrivacyPolicy] {
	return Descriptor[PrivacyPolicy]{
		Name:       "privacy-policies",
		Sheet:      "PrivacyPolicies",
		ExportBase: "privacy-policy-details",
		Columns:    []string{"Title", "Version", "Active", "Effective", "Created"},
		Required:   []string{"title", "content"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]PrivacyPolicy, error) {
			return upstream.List[PrivacyPolicy](ctx, scope, "/privacy/all")
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (PrivacyPolicy, error) {
			return upstream.Create[PrivacyPolicy](ctx, scope, "/privacy/create", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record PrivacyPolicy, payload json.RawMessage) (PrivacyPolicy, error) {
			return upstream.Update[PrivacyPolicy](ctx, scope, path("/privacy/update/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record PrivacyPolicy) error {
			return upstream.Remove(ctx, scope, path("/privacy/delete/%s", record.ID))
		},
	}
}
