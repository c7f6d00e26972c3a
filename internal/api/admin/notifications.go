package admin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mealdesk/admin-gateway/internal/notification"
)

func notificationSuccess(resourceName, action string) (notification.Level, string, string) {
	return notification.LevelSuccess, resourceName, fmt.Sprintf("%s %sd successfully", resourceName, action)
}

func notificationFailure(resourceName, action, reason string) (notification.Level, string, string) {
	if reason == "" {
		reason = fmt.Sprintf("could not %s %s", action, resourceName)
	}
	return notification.LevelError, resourceName, reason
}

// EndpointNotificationStream handles the 'GET /v1/notifications' endpoint.
// It streams mutation notifications as server-sent events until the client disconnects.
func (service *Service) EndpointNotificationStream(writer http.ResponseWriter, request *http.Request) {
	flusher, ok := writer.(http.Flusher)
	if !ok {
		service.writer.WriteInternalError(writer, fmt.Errorf("response writer does not support streaming"))
		return
	}

	id, channel := service.notifier.Subscribe()
	defer service.notifier.Unsubscribe(id)

	writer.Header().Set("Content-Type", "text/event-stream")
	writer.Header().Set("Cache-Control", "no-cache")
	writer.Header().Set("Connection", "keep-alive")
	writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-request.Context().Done():
			return
		case obj, open := <-channel:
			if !open {
				return
			}
			data, err := json.Marshal(obj)
			if err != nil {
				continue
			}
			fmt.Fprintf(writer, "event: notification\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
