package resource

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mealdesk/admin-gateway/internal/bitflag"
	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Meal flags mark which meals of a day a freeze request pauses
const (
	MealBreakfast bitflag.Flag = 1 << iota
	MealLunch
	MealDinner
	MealSnack
)

var mealNames = []struct {
	flag bitflag.Flag
	name string
}{
	{MealBreakfast, "breakfast"},
	{MealLunch, "lunch"},
	{MealDinner, "dinner"},
	{MealSnack, "snack"},
}

// Freeze represents a request to pause meal deliveries on a given date
type Freeze struct {
	ID           string     `json:"_id"`
	User         UserRef    `json:"userId"`
	Product      ProductRef `json:"productId"`
	FreezeDate   string     `json:"freezeDate"`
	Meals        []string   `json:"meals"`
	Status       string     `json:"status,omitempty"`
	SelectedDate string     `json:"selectedDate,omitempty"`
}

// Key returns the freeze request's unique identifier
func (freeze Freeze) Key() string {
	return freeze.ID
}

// MealFlags folds the upstream meal name list into a bitflag container.
// Unknown meal names are ignored.
func (freeze Freeze) MealFlags() bitflag.Container {
	container := bitflag.EmptyContainer
	for _, meal := range freeze.Meals {
		for _, known := range mealNames {
			if fold(meal) == known.name {
				container = container.With(known.flag)
			}
		}
	}
	return container
}

// Matches searches customer name, product name and status.
// A query naming a meal exactly matches the freezes pausing that meal.
func (freeze Freeze) Matches(query string) bool {
	return contains(freeze.User.Username, query) ||
		contains(freeze.Product.Name, query) ||
		contains(freeze.Status, query) ||
		freeze.matchesMeal(query)
}

func (freeze Freeze) matchesMeal(query string) bool {
	for _, known := range mealNames {
		if fold(strings.TrimSpace(query)) == known.name {
			return freeze.MealFlags().HasAny(known.flag)
		}
	}
	return false
}

// ExportRow flattens the freeze request for exports.
// Meals render in canonical order regardless of how the platform ordered them.
func (freeze Freeze) ExportRow() export.Row {
	flags := freeze.MealFlags()
	meals := make([]string, 0, len(mealNames))
	for _, known := range mealNames {
		if flags.Has(known.flag) {
			meals = append(meals, known.name)
		}
	}
	return export.Row{
		"Customer": dash(freeze.User.Username),
		"Product":  dash(freeze.Product.Name),
		"Date":     dash(freeze.FreezeDate),
		"Meals":    dashJoin(meals),
		"Status":   dash(freeze.Status),
	}
}

// Freezes describes the delivery freeze request resource.
// The platform scopes freeze mutations per customer, so the create payload must carry the
// customer's id and updates and deletes resolve it from the cached record.
func Freezes() Descriptor[Freeze] {
	return Descriptor[Freeze]{
		Name:       "freezes",
		Sheet:      "Freezes",
		ExportBase: "freeze-details",
		Columns:    []string{"Customer", "Product", "Date", "Meals", "Status"},
		Required:   []string{"userId", "freezeDate", "meals"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]Freeze, error) {
			return upstream.List[Freeze](ctx, scope, "/freeze/all/all/full")
		},
		Create: func(ctx context.Context, scope *upstream.Scope, payload json.RawMessage) (Freeze, error) {
			var fields struct {
				UserID string `json:"userId"`
			}
			if err := json.Unmarshal(payload, &fields); err != nil {
				return Freeze{}, err
			}
			if fields.UserID == "" {
				return Freeze{}, errors.New("freeze create payload is missing 'userId'")
			}
			return upstream.Create[Freeze](ctx, scope, path("/freeze/superadmin/%s", fields.UserID), payload)
		},
		Update: func(ctx context.Context, scope *upstream.Scope, record Freeze, payload json.RawMessage) (Freeze, error) {
			return upstream.Update[Freeze](ctx, scope, path("/freeze/superadmin/%s/%s", record.User.ID, record.ID), payload)
		},
		Delete: func(ctx context.Context, scope *upstream.Scope, record Freeze) error {
			return upstream.Remove(ctx, scope, path("/freeze/superadmin/%s/%s", record.User.ID, record.ID))
		},
	}
}
