package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Record represents a single admin-facing record of any resource type.
// Records are read-only for the gateway; they are owned by the upstream API and replaced
// wholesale on every refetch.
type Record interface {
	// Key returns the stable unique identifier of the record
	Key() string

	// Matches reports whether the record matches the given search query.
	// Implementations are deterministic and side-effect-free.
	Matches(query string) bool

	// ExportRow flattens the record into named scalar export columns
	ExportRow() export.Row
}

// Descriptor wires one admin resource: its route naming, export contract, create validation
// and the upstream calls behind list/detail and the three mutations.
// Mutation funcs left nil mark operations the platform does not offer for that resource.
type Descriptor[T Record] struct {
	// Name is the plural route segment, e.g. "contacts"
	Name string
	// Sheet is the worksheet name used for spreadsheet exports
	Sheet string
	// ExportBase is the fixed export filename without extension, e.g. "contact-details"
	ExportBase string
	// Columns is the explicit export column order shared by CSV and spreadsheet output
	Columns []string
	// Required lists payload fields that must be present and non-empty before a create
	// mutation is dispatched upstream
	Required []string
	// Validate performs additional payload checks on create and update.
	// It returns one message per violation; a non-empty result blocks the dispatch.
	Validate func(payload json.RawMessage) []string

	List   func(ctx context.Context, scope *upstream.Scope) ([]T, error)
	Detail func(ctx context.Context, scope *upstream.Scope, id string) (T, error)
	Create func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (T, error)
	// Update and Delete receive the cached record so resources whose platform routes are
	// scoped beyond the record id (e.g. per customer) can resolve the full path from it
	Update func(ctx context.Context, scope *upstream.Scope, record T, payload json.RawMessage) (T, error)
	Delete func(ctx context.Context, scope *upstream.Scope, record T) error
}

// UserRef represents an embedded user reference as the platform populates it on
// records like orders, freezes and wallet histories
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ProductRef represents an embedded product reference
type ProductRef struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func fold(value string) string {
	return strings.ToLower(value)
}

func contains(value, query string) bool {
	return strings.Contains(fold(value), fold(strings.TrimSpace(query)))
}

func dash(value string) string {
	if strings.TrimSpace(value) == "" {
		return export.Placeholder
	}
	return value
}

func dashJoin(values []string) string {
	if len(values) == 0 {
		return export.Placeholder
	}
	return strings.Join(values, ", ")
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func money(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func amount(value int) string {
	return strconv.Itoa(value)
}

func path(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
