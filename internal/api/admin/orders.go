package admin

import (
	"net/http"

	"github.com/mealdesk/admin-gateway/internal/resource"
)

// endpointOrderStats builds the handler for the 'GET /v1/orders/stats' endpoint.
// The totals are computed from the same cached collection the order list view uses.
func (service *Service) endpointOrderStats(orders *controller[resource.Order]) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		records, err := orders.cache.Snapshot(request.Context(), service.scopeOf(request))
		if err != nil {
			service.upstreamError(writer, request, err)
			return
		}
		service.writer.WriteJSON(writer, resource.StatsFromOrders(records))
	}
}
