package admin

import (
	"net/http"

	"github.com/mealdesk/admin-gateway/internal/resource"
)

// EndpointActiveCarousels handles the 'GET /v1/carousels/active' endpoint.
// The active subset is always fetched live as the platform decides what is currently shown.
func (service *Service) EndpointActiveCarousels(writer http.ResponseWriter, request *http.Request) {
	slides, err := resource.ActiveCarousels(request.Context(), service.scopeOf(request))
	if err != nil {
		service.upstreamError(writer, request, err)
		return
	}
	if slides == nil {
		slides = []resource.Carousel{}
	}
	service.writer.WriteJSON(writer, slides)
}
