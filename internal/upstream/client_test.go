package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testContact struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodPost, request.Method)
		require.Equal(t, "/admin/login", request.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
		if payload["password"] != "hunter2" {
			writer.WriteHeader(http.StatusBadRequest)
			writer.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		writer.Write([]byte(`{"token":"bearer-123","superadmin":{"_id":"sa1","email":"admin@example.com"},"message":"ok"}`))
	}))
	defer server.Close()

	client := New(server.URL)

	result, err := client.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "bearer-123", result.Token)
	assert.Equal(t, "sa1", result.Superadmin.ID)

	_, err = client.Login(context.Background(), "admin@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Reason())
}

func TestList_AttachesBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Authorization") != "Bearer bearer-123" {
			writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		writer.Write([]byte(`[{"_id":"c1","name":"Jane"},{"_id":"c2","name":"John"}]`))
	}))
	defer server.Close()

	scope := New(server.URL).WithBearer("bearer-123")
	contacts, err := List[testContact](context.Background(), scope, "/contactus")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "c1", contacts[0].ID)

	_, err = List[testContact](context.Background(), New(server.URL).WithBearer("bad"), "/contactus")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestListEnveloped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte(`{"users":[{"_id":"u1","name":"Jane"}]}`))
	}))
	defer server.Close()

	scope := New(server.URL).WithBearer("token")

	users, err := ListEnveloped[testContact](context.Background(), scope, "/auth/users", "users")
	require.NoError(t, err)
	require.Len(t, users, 1)

	_, err = ListEnveloped[testContact](context.Background(), scope, "/auth/users", "missing")
	assert.Error(t, err)
}

func TestMutations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodPost:
			writer.Write([]byte(`{"_id":"c3","name":"New"}`))
		case http.MethodPut:
			writer.Write([]byte(`{"_id":"c1","name":"Changed"}`))
		case http.MethodDelete:
			writer.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	scope := New(server.URL).WithBearer("token")
	ctx := context.Background()

	created, err := Create[testContact](ctx, scope, "/contactus", json.RawMessage(`{"name":"New"}`))
	require.NoError(t, err)
	assert.Equal(t, "c3", created.ID)

	updated, err := Update[testContact](ctx, scope, "/contactus/c1", json.RawMessage(`{"name":"Changed"}`))
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.Name)

	require.NoError(t, Remove(ctx, scope, "/contactus/c1"))
}

func TestMutation_FailureCarriesServerReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusUnprocessableEntity)
		writer.Write([]byte(`{"message":"name is required"}`))
	}))
	defer server.Close()

	scope := New(server.URL).WithBearer("token")
	_, err := Create[testContact](context.Background(), scope, "/contactus", json.RawMessage(`{}`))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "name is required", apiErr.Reason())
}
