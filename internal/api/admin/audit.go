package admin

import (
	"math"
	"net/http"

	"github.com/mealdesk/admin-gateway/internal/api/schema"
	"github.com/mealdesk/admin-gateway/internal/api/validation"
)

// EndpointGetAuditLog handles the 'GET /v1/audit?offset={number?:0}&limit={number?:25}' endpoint
func (service *Service) EndpointGetAuditLog(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*schema.Error

	offset, validationErr := validation.QueryNumber(request, "offset", false, 0, 0, math.MaxInt64)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	limit, validationErr := validation.QueryNumber(request, "limit", false, 25, 1, 1000)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	entries, n, err := service.Storage.AuditLog().Get(request.Context(), uint64(offset), uint64(limit))
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSON(writer, schema.BuildOffsetResponse(uint64(offset), uint64(limit), n, entries))
}
