package resource

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Subscription represents a customer's meal plan subscription
type Subscription struct {
	ID              string           `json:"_id"`
	UserID          string           `json:"userId"`
	PlanType        string           `json:"planType"`
	PlanName        string           `json:"planName"`
	StartDate       string           `json:"startDate"`
	EndDate         string           `json:"endDate"`
	Status          string           `json:"status"`
	Price           float64          `json:"price"`
	BillingCycle    string           `json:"billingCycle"`
	MealsPerDay     int              `json:"mealsPerDay"`
	TotalMeals      int              `json:"totalMeals"`
	RemainingMeals  int              `json:"remainingMeals"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress,omitempty"`
}

// DeliveryAddress represents the delivery address attached to a subscription
type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Key returns the subscription's unique identifier
func (subscription Subscription) Key() string {
	return subscription.ID
}

// Matches searches plan name, plan type and status
func (subscription Subscription) Matches(query string) bool {
	return contains(subscription.PlanName, query) ||
		contains(subscription.PlanType, query) ||
		contains(subscription.Status, query)
}

// ExportRow flattens the subscription for exports
func (subscription Subscription) ExportRow() export.Row {
	row := export.Row{
		"Plan":      dash(subscription.PlanName),
		"Type":      dash(subscription.PlanType),
		"Status":    dash(subscription.Status),
		"Price":     money(subscription.Price),
		"Billing":   dash(subscription.BillingCycle),
		"Meals/Day": amount(subscription.MealsPerDay),
		"Remaining": amount(subscription.RemainingMeals),
		"Start":     dash(subscription.StartDate),
		"End":       dash(subscription.EndDate),
	}
	if subscription.DeliveryAddress != nil {
		row["City"] = dash(subscription.DeliveryAddress.City)
	}
	return row
}

// Subscriptions describes the subscription resource.
// The platform scopes subscription mutations per customer, so the create payload must carry
// the customer's id and updates and deletes resolve it from the cached record.
func Subscriptions() Descriptor[Subscription] {
	return Descriptor[Subscription]{
		Name:       "subscriptions",
		Sheet:      "Subscriptions",
		ExportBase: "subscription-details",
		Columns:    []string{"Plan", "Type", "Status", "Price", "Billing", "Meals/Day", "Remaining", "Start", "End", "City"},
		Required:   []string{"userId", "planName", "startDate", "endDate"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Subscription, error) {
			return upstream.List[Subscription](ctx, scope, "/subscription")
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Subscription, error) {
			var fields struct {
				UserID string `json:"userId"`
			}
			if err := json.Unmarshal(payload, &fields); err != nil {
				return Subscription{}, err
			}
			if fields.UserID == "" {
				return Subscription{}, errors.New("subscription create payload is missing 'userId'")
			}
			return upstream.Create[Subscription](ctx, scope, path("/subscription/%s", fields.UserID), payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Subscription, payload json.RawMessage) (Subscription, error) {
			return upstream.Update[Subscription](ctx, scope, path("/subscription/%s/%s", record.UserID, record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Subscription) error {
			return upstream.Remove(ctx, scope, path("/subscription/%s/%s", record.UserID, record.ID))
		},
	}
}
