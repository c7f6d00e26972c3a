package resource

import (
	"context"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// User represents a platform customer account
type User struct {
	ID         string       `json:"_id"`
	Username   string       `json:"username"`
	Email      string       `json:"email"`
	Role       string       `json:"role"`
	IsVerified bool         `json:"isVerified"`
	Profile    *UserProfile `json:"profile,omitempty"`
	CreatedAt  string       `json:"createdAt,omitempty"`
	UpdatedAt  string       `json:"updatedAt,omitempty"`
}

// UserProfile represents the optional profile details of a user
type UserProfile struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName,omitempty"`
	DOB              string   `json:"dob,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Address          string   `json:"address,omitempty"`
	MobileNumber     string   `json:"mobileNumber,omitempty"`
	SelectedPrograms []string `json:"selectedPrograms,omitempty"`
}

// Key returns the user's unique identifier
func (user User) Key() string {
	return user.ID
}

// Matches searches username, email and role
func (user User) Matches(query string) bool {
	return contains(user.Username, query) ||
		contains(user.Email, query) ||
		contains(user.Role, query)
}

// ExportRow flattens the user for exports
func (user User) ExportRow() export.Row {
	row := export.Row{
		"Username": dash(user.Username),
		"Email":    dash(user.Email),
		"Role":     dash(user.Role),
		"Verified": yesNo(user.IsVerified),
		"Joined":   dash(user.CreatedAt),
	}
	if user.Profile != nil {
		row["Name"] = dash(user.Profile.FirstName + " " + user.Profile.LastName)
		row["Mobile"] = dash(user.Profile.MobileNumber)
	}
	return row
}

// Users describes the customer account resource.
// The platform exposes accounts read-only to the superadmin console.
func Users() Descriptor[User] {
	return Descriptor[User]{
		Name:       "users",
		Sheet:      "Users",
		ExportBase: "user-details",
		Columns:    []string{"Username", "Email", "Name", "Role", "Verified", "Mobile", "Joined"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]User, error) {
			return upstream.ListEnveloped[User](ctx, scope, "/auth/users", "users")
		},
	}
}
