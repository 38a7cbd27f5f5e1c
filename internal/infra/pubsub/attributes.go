package pubsub

import "fittrack/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.UserEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
