package services

import "log"

// EventEmitter receives domain events after a successful write. Delivery to
// connected clients is a separate concern behind this interface; the
// calculation paths never emit anything.
type EventEmitter interface {
	Emit(event string, payload map[string]interface{})
}

// LogEmitter writes events to the application log. It stands in wherever no
// push channel is wired up.
type LogEmitter struct{}

// Emit logs the event name and payload.
func (LogEmitter) Emit(event string, payload map[string]interface{}) {
	log.Printf("event %s: %v", event, payload)
}
