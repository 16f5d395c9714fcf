package dto

// RecordEvent is the payload published to NATS when a record is created.
type RecordEvent struct {
	Kind      string `json:"kind"` // entry, profile
	ID        string `json:"id"`
	CaseID    string `json:"case_id,omitempty"`
	EntryID   string `json:"entry_id,omitempty"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// WSEvent is a WebSocket message for real-time record delivery.
type WSEvent struct {
	Type string      `json:"type"` // entry_created, profile_created
	Data RecordEvent `json:"data"`
}
