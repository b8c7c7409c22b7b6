package audit

import "time"

// Event types published by the directory and credential services.
const (
	RecordAdded             = "directory.record_added"
	RecordUpdated           = "directory.record_updated"
	RecordDeleted           = "directory.record_deleted"
	CredentialRegistered    = "credential.registered"
	CredentialAuthenticated = "credential.authenticated"
	CredentialAuthFailed    = "credential.authentication_failed"
)

// Event is the JSON payload put on the RabbitMQ audit queue.
// Subject is a record id or a username. Password material never appears here.
type Event struct {
	Type       string    `json:"type"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"`
	IP         string    `json:"ip,omitempty"`
}

// New builds an event stamped with the current UTC time.
func New(typ, subject string) Event {
	return Event{Type: typ, Subject: subject, OccurredAt: time.Now().UTC()}
}

// Known reports whether typ is one of the event types above.
func Known(typ string) bool {
	switch typ {
	case RecordAdded, RecordUpdated, RecordDeleted,
		CredentialRegistered, CredentialAuthenticated, CredentialAuthFailed:
		return true
	}
	return false
}
