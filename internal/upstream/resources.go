package upstream

import (
	"context"
	"encoding/json"
	"fmt"
)

// List fetches the full collection of a resource.
// The slice keeps the upstream response order; callers never re-sort it.
func List[T any](ctx context.Context, scope *Scope, path string) ([]T, error) {
	response, err := scope.request(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		return nil, errorFromResponse(response)
	}

	var collection []T
	if err := json.Unmarshal(response.Body(), &collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// ListEnveloped fetches a collection that the platform wraps into a keyed object,
// e.g. '{"users": [...]}' or '{"languages": [...]}'.
func ListEnveloped[T any](ctx context.Context, scope *Scope, path, key string) ([]T, error) {
	response, err := scope.request(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		return nil, errorFromResponse(response)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(response.Body(), &envelope); err != nil {
		return nil, err
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("upstream: response is missing the '%s' field", key)
	}

	var collection []T
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// Get fetches a single record by path
func Get[T any](ctx context.Context, scope *Scope, path string) (T, error) {
	var record T
	response, err := scope.request(ctx).Get(path)
	if err != nil {
		return record, err
	}
	if response.IsError() {
		return record, errorFromResponse(response)
	}
	if err := json.Unmarshal(response.Body(), &record); err != nil {
		return record, err
	}
	return record, nil
}

// Create dispatches a create mutation and returns the record the platform acknowledged
func Create[T any](ctx context.Context, scope *Scope, path string, payload json.RawMessage) (T, error) {
	return write[T](ctx, scope, "POST", path, payload)
}

// Update dispatches an update mutation and returns the record the platform acknowledged
func Update[T any](ctx context.Context, scope *Scope, path string, payload json.RawMessage) (T, error) {
	return write[T](ctx, scope, "PUT", path, payload)
}

// Remove dispatches a delete mutation
func Remove(ctx context.Context, scope *Scope, path string) error {
	response, err := scope.request(ctx).Delete(path)
	if err != nil {
		return err
	}
	if response.IsError() {
		return errorFromResponse(response)
	}
	return nil
}

func write[T any](ctx context.Context, scope *Scope, method, path string, payload json.RawMessage) (T, error) {
	var record T

	request := scope.request(ctx).SetHeader("Content-Type", "application/json")
	if payload != nil {
		request.SetBody([]byte(payload))
	}

	response, err := request.Execute(method, path)
	if err != nil {
		return record, err
	}
	if response.IsError() {
		return record, errorFromResponse(response)
	}
	if len(response.Body()) > 0 {
		if err := json.Unmarshal(response.Body(), &record); err != nil {
			return record, err
		}
	}
	return record, nil
}
