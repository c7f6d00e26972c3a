package admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mealdesk/admin-gateway/internal/api/schema"
	"github.com/mealdesk/admin-gateway/internal/audit"
	"github.com/mealdesk/admin-gateway/internal/function"
	"github.com/mealdesk/admin-gateway/internal/session"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

var (
	cookieNameToken = "session_token"

	contextValueSession = "session"
)

type endpointLoginRequestPayload struct {
	Email    *string `json:"email" required:"true"`
	Password *string `json:"password" required:"true"`
}

type endpointLoginResponse struct {
	Superadmin upstream.Superadmin `json:"superadmin"`
	Message    string              `json:"message"`
}

// EndpointLogin handles the 'POST /v1/auth/login' endpoint.
// It forwards the credentials to the platform's superadmin login and, on success, opens a
// gateway session holding the issued bearer credential.
func (service *Service) EndpointLogin(writer http.ResponseWriter, request *http.Request) {
	payload, validationErrs, err := schema.UnmarshalBody[endpointLoginRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	result, err := service.Upstream.Login(request.Context(), *payload.Email, *payload.Password)
	if err != nil {
		apiErr := &upstream.APIError{}
		if errors.As(err, &apiErr) {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUpstream(apiErr.Reason()))
			return
		}
		if errors.Is(err, upstream.ErrUnauthenticated) {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}
		service.writer.WriteInternalError(writer, err)
		return
	}

	expires := time.Now().Add(service.Config.SessionLifetime).Unix()
	token, err := service.Sessions.Create(request.Context(), result.Token, result.Superadmin, expires)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameToken,
		Value:    token,
		MaxAge:   int(service.Config.SessionLifetime.Seconds()),
		Secure:   service.Config.IsAdminAPISecure(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	service.audit(request.Context(), result.Superadmin.ID, "auth", audit.ActionLogin, "", true, result.Message)

	service.writer.WriteJSON(writer, &endpointLoginResponse{
		Superadmin: result.Superadmin,
		Message:    result.Message,
	})
}

// EndpointLogout handles the 'POST /v1/auth/logout' endpoint
func (service *Service) EndpointLogout(writer http.ResponseWriter, request *http.Request) {
	sess := service.sessionOf(request)

	cookie, err := request.Cookie(cookieNameToken)
	if err == nil {
		if err := service.Sessions.TerminateByRawToken(request.Context(), cookie.Value); err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
	}
	service.clearTokenCookie(writer)

	service.audit(request.Context(), sess.Actor.ID, "auth", audit.ActionLogout, "", true, "")

	writer.WriteHeader(http.StatusNoContent)
}

// EndpointSelf handles the 'GET /v1/me' endpoint
func (service *Service) EndpointSelf(writer http.ResponseWriter, request *http.Request) {
	service.writer.WriteJSON(writer, service.sessionOf(request).Actor)
}

// secured wraps an endpoint with the session verification middleware
func (service *Service) secured(end http.HandlerFunc) http.HandlerFunc {
	return function.Nest(end, service.MiddlewareVerifySession)
}

// MiddlewareVerifySession makes sure that the requesting client has a valid, unexpired
// session. Additionally, it injects the session object itself into the request context.
func (service *Service) MiddlewareVerifySession(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		cookie, err := request.Cookie(cookieNameToken)
		if err != nil {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		sess, err := service.Sessions.GetByRawToken(request.Context(), cookie.Value)
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		if sess == nil || sess.Expires <= time.Now().Unix() {
			service.clearTokenCookie(writer)
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		// Delegate to the next handler
		request = request.WithContext(context.WithValue(request.Context(), contextValueSession, sess))
		next(writer, request)
	}
}

func (service *Service) sessionOf(request *http.Request) *session.Session {
	return request.Context().Value(contextValueSession).(*session.Session)
}

// scopeOf returns the upstream client scope bound to the requesting session's bearer credential
func (service *Service) scopeOf(request *http.Request) *upstream.Scope {
	return service.Upstream.WithBearer(service.sessionOf(request).Bearer)
}

func (service *Service) clearTokenCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameToken,
		Value:    "",
		Expires:  time.Now().Add(-time.Second),
		HttpOnly: true,
	})
}

// upstreamError writes an error response for a failed upstream call.
// A rejected bearer credential terminates the gateway session so the client routes back to
// the login screen.
func (service *Service) upstreamError(writer http.ResponseWriter, request *http.Request, err error) {
	if errors.Is(err, upstream.ErrUnauthenticated) {
		if cookie, cookieErr := request.Cookie(cookieNameToken); cookieErr == nil {
			if termErr := service.Sessions.TerminateByRawToken(request.Context(), cookie.Value); termErr != nil {
				log.Error().Err(termErr).Msg("could not terminate the session of a rejected credential")
			}
		}
		service.clearTokenCookie(writer)
		service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
		return
	}

	apiErr := &upstream.APIError{}
	if errors.As(err, &apiErr) {
		service.writer.WriteErrors(writer, apiErr.Status, schema.ErrUpstream(apiErr.Reason()))
		return
	}

	service.writer.WriteInternalError(writer, err)
}

// audit records an entry in the persistent action trail.
// Recording failures are logged but never fail the triggering request.
func (service *Service) audit(ctx context.Context, actorID, resourceName, action, targetID string, succeeded bool, message string) {
	_, err := service.Storage.AuditLog().Record(ctx, &audit.Create{
		ActorID:   actorID,
		Resource:  resourceName,
		Action:    action,
		TargetID:  targetID,
		Succeeded: succeeded,
		Message:   message,
	})
	if err != nil {
		log.Error().Err(err).Str("resource", resourceName).Str("action", action).Msg("could not record an audit entry")
	}
}
