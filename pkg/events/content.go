package events

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionDeleted       = "deleted"
	ActionStatusChanged = "status_changed"
)

// ContentType builds the event code for a change to a resource, e.g. "news.created".
func ContentType(resource, action string) string {
	return resource + "." + action
}

// SplitContentType is the inverse of ContentType. A leading "events." subject
// prefix is ignored.
func SplitContentType(eventType string) (resource, action string, ok bool) {
	eventType = strings.TrimPrefix(eventType, "events.")
	i := strings.LastIndex(eventType, ".")
	if i <= 0 || i == len(eventType)-1 {
		return "", "", false
	}
	return eventType[:i], eventType[i+1:], true
}

// NewContentEvent describes a write to one record. record is carried as-is
// and serialized with its json tags.
func NewContentEvent(resource, action string, id int64, record interface{}) BaseEvent {
	return BaseEvent{
		Type: ContentType(resource, action),
		Data: map[string]interface{}{
			"resource": resource,
			"action":   action,
			"id":       id,
			"record":   record,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// Encode serializes any Event in the BaseEvent wire format.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(BaseEvent{Type: e.EventType(), Data: e.Payload(), OccurredAt: e.Timestamp()})
}

// Decode reverses Encode. Record payloads come back as generic maps.
func Decode(raw []byte) (BaseEvent, error) {
	var e BaseEvent
	err := json.Unmarshal(raw, &e)
	return e, err
}
