package resource

import (
	"context"
	"encoding/json"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Reward represents a promotional reward or coupon
type Reward struct {
	ID            string   `json:"_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Type          string   `json:"type"`
	Value         float64  `json:"value"`
	Code          string   `json:"code,omitempty"`
	ExpiryDate    string   `json:"expiryDate,omitempty"`
	IsActive      bool     `json:"isActive"`
	Users         []string `json:"users,omitempty"`
	RedeemedUsers []string `json:"redeemedUsers,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// Key returns the reward's unique identifier
func (reward Reward) Key() string {
	return reward.ID
}

// Matches searches title, code and type
func (reward Reward) Matches(query string) bool {
	return contains(reward.Title, query) ||
		contains(reward.Code, query) ||
		contains(reward.Type, query)
}

// ExportRow flattens the reward for exports
func (reward Reward) ExportRow() export.Row {
	return export.Row{
		"Title":    dash(reward.Title),
		"Type":     dash(reward.Type),
		"Value":    money(reward.Value),
		"Code":     dash(reward.Code),
		"Active":   yesNo(reward.IsActive),
		"Expires":  dash(reward.ExpiryDate),
		"Assigned": amount(len(reward.Users)),
		"Redeemed": amount(len(reward.RedeemedUsers)),
	}
}

// Rewards describes the reward resource
func Rewards() Descriptor[Reward] {
	return Descriptor[Reward]{
		Name:       "rewards",
		Sheet:      "Rewards",
		ExportBase: "reward-details",
		Columns:    []string{"Title", "Type", "Value", "Code", "Active", "Expires", "Assigned", "Redeemed"},
		Required:   []string{"title", "type", "value"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Reward, error) {
			return upstream.List[Reward](ctx, scope, "/reward/all")
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Reward, error) {
			return upstream.Create[Reward](ctx, scope, "/reward/create", payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Reward, payload json.RawMessage) (Reward, error) {
			return upstream.Update[Reward](ctx, scope, path("/reward/update/%s", record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Reward) error {
			return upstream.Remove(ctx, scope, path("/reward/delete/%s", record.ID))
		},
	}
}
