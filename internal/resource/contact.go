package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Contact represents a contact-us message sent through the platform
type Contact struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PhoneNumbers []string `json:"phoneNumbers,omitempty"`
	Address      string   `json:"address"`
	Subject      string   `json:"subject"`
	Message      string   `json:"message"`
	IsRead       bool     `json:"isRead"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Key returns the contact's unique identifier
func (contact Contact) Key() string {
	return contact.ID
}

// Matches searches name, email and subject, as the contact table does
func (contact Contact) Matches(query string) bool {
	return contains(contact.Name, query) ||
		contains(contact.Email, query) ||
		contains(contact.Subject, query)
}

// ExportRow flattens the contact for exports
func (contact Contact) ExportRow() export.Row {
	return export.Row{
		"Name":    dash(contact.Name),
		"Email":   dash(contact.Email),
		"Phone":   dashJoin(contact.PhoneNumbers),
		"Address": dash(contact.Address),
		"Subject": dash(contact.Subject),
		"Message": dash(contact.Message),
		"Read":    yesNo(contact.IsRead),
		"Created": dash(contact.CreatedAt),
	}
}

// Contacts describes the contact message resource
func Contacts() Descriptor[Contact] {
	return Descriptor[Contact]{
		Name:       "contacts",
		Sheet:      "Contacts",
		ExportBase: "contact-details",
		Columns:    []string{"Name", "Email", "Phone", "Address", "Subject", "Message", "Read", "Created"},
		Required:   []string{"name", "email", "subject", "message"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Contact, error) {
			return upstream.List[Contact](ctx, scope, "/contactus")
		},
		Detail: func(ctx context.Context, scope *upstream.Scope, id string) (Contact, error) {
			return upstream.Get[Contact](ctx, scope, path("/contactus/%s", id))
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Contact, error) {
			return upstream.Create[Contact](ctx, scope, "/contactus", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Contact, payload json.RawMessage) (Contact, error) {
			return upstream.Update[Contact](ctx, scope, path("/contactus/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Contact) error {
			return upstream.Remove(ctx, scope, path("/contactus/%s", record.ID))
		},
	}
}
