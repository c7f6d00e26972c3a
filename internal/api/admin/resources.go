package admin

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mealdesk/admin-gateway/internal/api/schema"
	"github.com/mealdesk/admin-gateway/internal/api/validation"
	"github.com/mealdesk/admin-gateway/internal/collection"
	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/hashmap"
	"github.com/mealdesk/admin-gateway/internal/listview"
	"github.com/mealdesk/admin-gateway/internal/mutation"
	"github.com/mealdesk/admin-gateway/internal/resource"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

const (
	defaultPageSize = 8
	maxPageSize     = 100

	detailLifetime = time.Minute
)

// controller serves the list view, detail, export and mutation endpoints of one resource
type controller[T resource.Record] struct {
	service *Service
	desc    resource.Descriptor[T]
	cache   *collection.Cache[T]
	details *hashmap.ExpiringMap[string, T]
}

// registerResource wires the endpoints of one resource descriptor into the router.
// Mutation routes are only registered for the operations the platform offers.
func registerResource[T resource.Record](service *Service, router chi.Router, desc resource.Descriptor[T]) *controller[T] {
	ctl := &controller[T]{
		service: service,
		desc:    desc,
		cache: collection.New(desc.List, func(record T) string {
			return record.Key()
		}),
		details: hashmap.NewExpiring[string, T](detailLifetime),
	}

	base := "/v1/" + desc.Name
	router.Get(base, service.secured(ctl.list))
	router.Get(base+"/export", service.secured(ctl.export))
	router.Get(base+"/{id}", service.secured(ctl.detail))
	if desc.Create != nil {
		router.Post(base, service.secured(ctl.create))
	}
	if desc.Update != nil {
		router.Put(base+"/{id}", service.secured(ctl.update))
	}
	if desc.Delete != nil {
		router.Delete(base+"/{id}", service.secured(ctl.remove))
	}
	return ctl
}

func (ctl *controller[T]) matches(record T, query string) bool {
	return record.Matches(query)
}

func (ctl *controller[T]) validatePayload(body []byte) []*schema.Error {
	if ctl.desc.Validate == nil {
		return nil
	}
	var errs []*schema.Error
	for _, violation := range ctl.desc.Validate(body) {
		errs = append(errs, schema.ErrPayloadInvalid(violation))
	}
	return errs
}

// list handles the 'GET /v1/{resource}?query=&page={number?:1}&page_size={number?:8}' endpoint
func (ctl *controller[T]) list(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*schema.Error

	page, validationErr := validation.QueryNumber(request, "page", false, 1, 1, math.MaxInt32)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	pageSize, validationErr := validation.QueryNumber(request, "page_size", false, defaultPageSize, 1, maxPageSize)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		ctl.service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	records, err := ctl.cache.Snapshot(request.Context(), ctl.service.scopeOf(request))
	if err != nil {
		ctl.service.upstreamError(writer, request, err)
		return
	}

	view := listview.Compute(records, request.URL.Query().Get("query"), listview.Page{
		Current: int(page),
		Size:    int(pageSize),
	}, ctl.matches)

	ctl.service.writer.WriteJSON(writer, schema.BuildListResponse(
		view.EffectivePage, int(pageSize), view.TotalPages, view.TotalFiltered, view.Visible,
	))
}

// export handles the 'GET /v1/{resource}/export?format={csv|xlsx?:csv}&query=' endpoint.
// It serializes the whole filtered set, ignoring pagination.
func (ctl *controller[T]) export(writer http.ResponseWriter, request *http.Request) {
	format, validationErr := validation.QueryOneOf(request, "format", "csv", "csv", "xlsx")
	if validationErr != nil {
		ctl.service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	records, err := ctl.cache.Snapshot(request.Context(), ctl.service.scopeOf(request))
	if err != nil {
		ctl.service.upstreamError(writer, request, err)
		return
	}

	filtered := listview.Filter(records, request.URL.Query().Get("query"), ctl.matches)
	rows := export.ToRows(filtered, func(record T) export.Row {
		return record.ExportRow()
	})

	var data []byte
	var contentType string
	extension := format
	switch format {
	case "csv":
		data, err = export.WriteCSV(ctl.desc.Columns, rows)
		contentType = "text/csv"
	case "xlsx":
		data, err = export.WriteWorkbook(ctl.desc.Sheet, ctl.desc.Columns, rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		ctl.service.writer.WriteInternalError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", contentType)
	writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ctl.desc.ExportBase+"."+extension))
	writer.Write(data)
}

// detail handles the 'GET /v1/{resource}/{id}' endpoint
func (ctl *controller[T]) detail(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	if record, ok := ctl.details.Lookup(id); ok {
		ctl.service.writer.WriteJSON(writer, record)
		return
	}

	// Resources without a dedicated detail endpoint are served out of the collection
	if ctl.desc.Detail == nil {
		records, err := ctl.cache.Snapshot(request.Context(), ctl.service.scopeOf(request))
		if err != nil {
			ctl.service.upstreamError(writer, request, err)
			return
		}
		for _, record := range records {
			if record.Key() == id {
				ctl.details.Set(id, record)
				ctl.service.writer.WriteJSON(writer, record)
				return
			}
		}
		ctl.service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	record, err := ctl.desc.Detail(request.Context(), ctl.service.scopeOf(request), id)
	if err != nil {
		apiErr := &upstream.APIError{}
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			ctl.service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
			return
		}
		ctl.service.upstreamError(writer, request, err)
		return
	}
	ctl.details.Set(id, record)
	ctl.service.writer.WriteJSON(writer, record)
}

// create handles the 'POST /v1/{resource}' endpoint
func (ctl *controller[T]) create(writer http.ResponseWriter, request *http.Request) {
	body, validationErrs, err := schema.ReadBody(request)
	if err != nil {
		ctl.service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) == 0 {
		// Invalid payloads are rejected before anything is dispatched to the platform
		validationErrs = schema.ValidateRequired(body, ctl.desc.Required)
		validationErrs = append(validationErrs, ctl.validatePayload(body)...)
	}
	if len(validationErrs) > 0 {
		ctl.service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	if err := ctl.service.tracker.Begin(ctl.desc.Name, mutation.ActionCreate, ""); err != nil {
		ctl.service.writer.WriteErrors(writer, http.StatusConflict, schema.ErrMutationPending)
		return
	}
	defer ctl.service.tracker.Finish(ctl.desc.Name, mutation.ActionCreate, "")

	record, err := ctl.desc.Create(request.Context(), ctl.service.scopeOf(request), body)
	if err != nil {
		ctl.mutationFailed(writer, request, mutation.ActionCreate, "", err)
		return
	}

	ctl.mutationSucceeded(request, mutation.ActionCreate, record.Key())
	ctl.service.writer.WriteJSONCode(writer, http.StatusCreated, record)
}

// findCached resolves a record by its id out of the collection snapshot
func (ctl *controller[T]) findCached(request *http.Request, id string) (T, bool, error) {
	var target T
	records, err := ctl.cache.Snapshot(request.Context(), ctl.service.scopeOf(request))
	if err != nil {
		return target, false, err
	}
	for _, record := range records {
		if record.Key() == id {
			return record, true, nil
		}
	}
	return target, false, nil
}

// update handles the 'PUT /v1/{resource}/{id}' endpoint
func (ctl *controller[T]) update(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	body, validationErrs, err := schema.ReadBody(request)
	if err != nil {
		ctl.service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) == 0 {
		validationErrs = ctl.validatePayload(body)
	}
	if len(validationErrs) > 0 {
		ctl.service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	target, found, err := ctl.findCached(request, id)
	if err != nil {
		ctl.service.upstreamError(writer, request, err)
		return
	}
	if !found {
		ctl.service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	if err := ctl.service.tracker.Begin(ctl.desc.Name, mutation.ActionUpdate, id); err != nil {
		ctl.service.writer.WriteErrors(writer, http.StatusConflict, schema.ErrMutationPending)
		return
	}
	defer ctl.service.tracker.Finish(ctl.desc.Name, mutation.ActionUpdate, id)

	record, err := ctl.desc.Update(request.Context(), ctl.service.scopeOf(request), target, body)
	if err != nil {
		ctl.mutationFailed(writer, request, mutation.ActionUpdate, id, err)
		return
	}

	ctl.mutationSucceeded(request, mutation.ActionUpdate, id)
	ctl.service.writer.WriteJSON(writer, record)
}

// remove handles the 'DELETE /v1/{resource}/{id}' endpoint
func (ctl *controller[T]) remove(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	target, found, err := ctl.findCached(request, id)
	if err != nil {
		ctl.service.upstreamError(writer, request, err)
		return
	}
	if !found {
		ctl.service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	if err := ctl.service.tracker.Begin(ctl.desc.Name, mutation.ActionDelete, id); err != nil {
		ctl.service.writer.WriteErrors(writer, http.StatusConflict, schema.ErrMutationPending)
		return
	}
	defer ctl.service.tracker.Finish(ctl.desc.Name, mutation.ActionDelete, id)

	if err := ctl.desc.Delete(request.Context(), ctl.service.scopeOf(request), target); err != nil {
		ctl.mutationFailed(writer, request, mutation.ActionDelete, id, err)
		return
	}

	ctl.mutationSucceeded(request, mutation.ActionDelete, id)
	writer.WriteHeader(http.StatusNoContent)
}

// mutationSucceeded invalidates the caches, notifies subscribers and records the audit entry
func (ctl *controller[T]) mutationSucceeded(request *http.Request, action, targetID string) {
	ctl.cache.Invalidate()
	if targetID != "" {
		ctl.details.Unset(targetID)
	}
	ctl.service.notifier.Publish(notificationSuccess(ctl.desc.Name, action))
	ctl.service.audit(request.Context(), ctl.service.sessionOf(request).Actor.ID, ctl.desc.Name, action, targetID, true, "")
}

// mutationFailed maps the upstream failure onto the response, notifies subscribers with the
// platform's reason and records the failed attempt
func (ctl *controller[T]) mutationFailed(writer http.ResponseWriter, request *http.Request, action, targetID string, err error) {
	reason := ""
	apiErr := &upstream.APIError{}
	if errors.As(err, &apiErr) {
		reason = apiErr.Reason()
	}
	ctl.service.notifier.Publish(notificationFailure(ctl.desc.Name, action, reason))
	ctl.service.audit(request.Context(), ctl.service.sessionOf(request).Actor.ID, ctl.desc.Name, action, targetID, false, reason)
	ctl.service.upstreamError(writer, request, err)
}
