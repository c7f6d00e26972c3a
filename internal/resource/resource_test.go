package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

func TestContactMatches(t *testing.T) {
	contact := Contact{Name: "Jane Doe", Email: "jane@example.com", Subject: "Late delivery"}

	assert.True(t, contact.Matches("jane"))
	assert.True(t, contact.Matches("EXAMPLE.COM"))
	assert.True(t, contact.Matches("late"))
	assert.False(t, contact.Matches("refund"))
}

func TestContactExportRow_MissingValuesRenderPlaceholder(t *testing.T) {
	row := Contact{Name: "Jane"}.ExportRow()
	assert.Equal(t, "Jane", row["Name"])
	assert.Equal(t, export.Placeholder, row["Phone"])
	assert.Equal(t, export.Placeholder, row["Address"])
	assert.Equal(t, "No", row["Read"])
}

func TestFlattenCarts(t *testing.T) {
	documents := []cartDocument{
		{
			CartID: "cart1",
			User:   UserRef{ID: "u1", Username: "jane", Email: "jane@example.com"},
			Items: []struct {
				Quantity   int        `json:"quantity"`
				Product    ProductRef `json:"product"`
				Restaurant *struct {
					Name    string `json:"name"`
					Address string `json:"address,omitempty"`
				} `json:"restaurant,omitempty"`
				Program *struct {
					Title       string `json:"title"`
					Description string `json:"description,omitempty"`
				} `json:"program,omitempty"`
			}{
				{Quantity: 2, Product: ProductRef{ID: "p1", Name: "Salad", Price: 7.5}},
				{Quantity: 1, Product: ProductRef{ID: "p2", Name: "Soup", Price: 4}},
			},
		},
	}

	entries := flattenCarts(documents)
	require.Len(t, entries, 2)
	assert.Equal(t, "cart1:p1", entries[0].Key())
	assert.Equal(t, 15.0, entries[0].TotalPrice)
	assert.Equal(t, "cart1:p2", entries[1].Key())

	row := entries[0].ExportRow()
	assert.Equal(t, "jane", row["User"])
	assert.Equal(t, "15.00", row["Total"])
	assert.Equal(t, export.Placeholder, row["Restaurant"])
}

func TestFreezeMealFlags(t *testing.T) {
	freeze := Freeze{Meals: []string{"Dinner", "breakfast", "unknown"}}
	flags := freeze.MealFlags()

	assert.True(t, flags.Has(MealBreakfast, MealDinner))
	assert.False(t, flags.Has(MealLunch))
	assert.False(t, flags.Has(MealSnack))

	// canonical ordering independent of the upstream list order
	assert.Equal(t, "breakfast, dinner", freeze.ExportRow()["Meals"])
}

func TestFreezeMatchesMealName(t *testing.T) {
	freeze := Freeze{Meals: []string{"lunch"}}

	assert.True(t, freeze.Matches("Lunch"))
	assert.False(t, freeze.Matches("dinner"))
}

func TestStatsFromOrders(t *testing.T) {
	orders := []Order{
		{Status: "pending", TotalPrice: 10},
		{Status: "delivered", TotalPrice: 20},
		{Status: "cancelled", TotalPrice: 40},
		{Status: "shipped", TotalPrice: 5},
	}

	stats := StatsFromOrders(orders)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, 35.0, stats.TotalRevenue)
}

func TestValidateProductPayload(t *testing.T) {
	assert.Empty(t, validateProductPayload(json.RawMessage(`{"name":"Bowl","price":9.5,"rating":4}`)))
	assert.Empty(t, validateProductPayload(json.RawMessage(`{"name":"Bowl","price":9.5}`)))

	violations := validateProductPayload(json.RawMessage(`{"rating":20,"price":-1}`))
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "rating")
}

func TestDescriptors_MutationsMatchPlatformSurface(t *testing.T) {
	// read-only resources never expose mutation endpoints
	assert.Nil(t, Users().Create)
	assert.Nil(t, Carts().Delete)
	assert.Nil(t, WalletHistories().Create)

	// orders can change status and be removed, but never be created by the console
	orders := Orders()
	assert.Nil(t, orders.Create)
	assert.NotNil(t, orders.Update)
	assert.NotNil(t, orders.Delete)

	// customer-scoped resources carry the full mutation surface
	subscriptions := Subscriptions()
	assert.NotNil(t, subscriptions.Create)
	assert.NotNil(t, subscriptions.Update)
	assert.NotNil(t, subscriptions.Delete)
	assert.NotNil(t, Freezes().Update)
}

// recordingUpstream serves a fake platform and records every mutation path it receives
func recordingUpstream(t *testing.T) (*upstream.Scope, *[]string) {
	t.Helper()

	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls = append(calls, request.Method+" "+request.URL.Path)
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	return upstream.New(server.URL).WithBearer("token"), &calls
}

func TestSubscriptionMutationsTargetTheCustomerScope(t *testing.T) {
	scope, calls := recordingUpstream(t)
	desc := Subscriptions()

	_, err := desc.Create(context.Background(), scope, json.RawMessage(`{"userId":"u1","planName":"Basic"}`))
	require.NoError(t, err)

	record := Subscription{ID: "s1", UserID: "u1"}
	_, err = desc.Update(context.Background(), scope, record, json.RawMessage(`{"planName":"Pro"}`))
	require.NoError(t, err)
	require.NoError(t, desc.Delete(context.Background(), scope, record))

	assert.Equal(t, []string{
		"POST /subscription/u1",
		"PUT /subscription/u1/s1",
		"DELETE /subscription/u1/s1",
	}, *calls)
}

func TestSubscriptionCreateRequiresTheCustomerID(t *testing.T) {
	scope, calls := recordingUpstream(t)

	_, err := Subscriptions().Create(context.Background(), scope, json.RawMessage(`{"planName":"Basic"}`))
	require.Error(t, err)
	assert.Empty(t, *calls)
}

func TestFreezeUpdateTargetsTheCustomerScope(t *testing.T) {
	scope, calls := recordingUpstream(t)

	record := Freeze{ID: "f1", User: UserRef{ID: "u1"}}
	_, err := Freezes().Update(context.Background(), scope, record, json.RawMessage(`{"meals":["lunch"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"PUT /freeze/superadmin/u1/f1"}, *calls)
}
