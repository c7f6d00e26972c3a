package schema

var emptyMap = map[string]interface{}{}

var (
	ErrInternal = &Error{
		Type:    "generic.internal",
		Message: "An internal error occurred.",
		Details: emptyMap,
	}
	ErrNotFound = &Error{
		Type:    "generic.notFound",
		Message: "Resource not found.",
		Details: emptyMap,
	}
	ErrMethodNotAllowed = &Error{
		Type:    "generic.methodNotAllowed",
		Message: "Method not allowed.",
		Details: emptyMap,
	}
	ErrUnauthorized = &Error{
		Type:    "access.unauthorized",
		Message: "Unauthorized",
		Details: emptyMap,
	}
	ErrMutationPending = &Error{
		Type:    "mutation.pending",
		Message: "The same mutation is still in flight. Wait for it to finish before retrying.",
		Details: emptyMap,
	}
)

// ErrPayloadInvalid wraps a domain validation violation of a mutation payload
func ErrPayloadInvalid(message string) *Error {
	return &Error{
		Type:    "validation.requestBody.invalid",
		Message: message,
		Details: emptyMap,
	}
}

// ErrUpstream wraps an error message the platform returned for a rejected request
func ErrUpstream(message string) *Error {
	return &Error{
		Type:    "upstream.rejected",
		Message: message,
		Details: emptyMap,
	}
}

// ErrorResponse represents the response structure sent by the admin API whenever errors occurred
type ErrorResponse struct {
	Status int      `json:"status"`
	Errors []*Error `json:"errors"`
}

// Error represents a single error present in the ErrorResponse
type Error struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}
