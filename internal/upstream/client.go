package upstream

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the meal-subscription platform's REST API on behalf of the superadmin.
// Every request carries the bearer credential of the acting session; a missing or rejected
// credential surfaces as ErrUnauthenticated so the caller can route back to login.
type Client struct {
	http *resty.Client
}

// New creates a new upstream API client for the given base URL
func New(baseURL string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: http}
}

// WithBearer returns a shallow request scope bound to the given bearer credential
func (client *Client) WithBearer(token string) *Scope {
	return &Scope{client: client, bearer: token}
}

// Scope represents a client scope bound to one session's bearer credential
type Scope struct {
	client *Client
	bearer string
}

func (scope *Scope) request(ctx context.Context) *resty.Request {
	request := scope.client.http.R().SetContext(ctx)
	if scope.bearer != "" {
		request.SetAuthToken(scope.bearer)
	}
	return request
}

// Login performs the platform's superadmin login and returns the issued bearer token
// together with the superadmin profile.
// Login is the only call that does not require an existing credential.
func (client *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result := new(LoginResult)
	response, err := client.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(result).
		Post("/admin/login")
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		return nil, errorFromResponse(response)
	}
	return result, nil
}

// LoginResult represents the platform's response to a successful superadmin login
type LoginResult struct {
	Token      string     `json:"token"`
	Superadmin Superadmin `json:"superadmin"`
	Message    string     `json:"message"`
}

// Superadmin represents the privileged actor profile returned at login
type Superadmin struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
