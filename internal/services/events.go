package services

import "yaadjobs_backend/ws"

// EventPublisher pushes domain events to connected clients. The websocket
// hub implements it; tests substitute a recorder.
type EventPublisher interface {
	PublishToUser(userID string, event ws.Event)
	PublishToRoles(roles map[string]bool, event ws.Event)
}

// NopPublisher drops every event. Used where no hub is wired.
type NopPublisher struct{}

func (NopPublisher) PublishToUser(string, ws.Event)           {}
func (NopPublisher) PublishToRoles(map[string]bool, ws.Event) {}

// staffRoleNames is the fan-out target for review-queue changes.
var staffRoleNames = map[string]bool{
	"admin":              true,
	"staff_verification": true,
	"ceo":                true,
}
