package session

import "github.com/mealdesk/admin-gateway/internal/upstream"

// Session represents an authenticated superadmin session at the gateway.
// The gateway token identifies the session towards the browser; the bearer credential and
// the actor profile were issued by the platform at login and are always set and cleared
// together.
type Session struct {
	Token   string
	Bearer  string
	Actor   upstream.Superadmin
	Expires int64
}
