package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an incident record. All report fields are opaque text as
// submitted; Date is expected to be a lexically sortable string
// (ISO 8601) because range queries compare it as text.
type Entry struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CaseID        string    `json:"case_id" db:"case_id"`
	Date          string    `json:"date" db:"date"`
	Time          string    `json:"time" db:"time"`
	Organization  string    `json:"organization" db:"organization"`
	Division      string    `json:"division" db:"division"`
	District      string    `json:"district" db:"district"`
	Town          string    `json:"town" db:"town"`
	Village       string    `json:"village" db:"village"`
	Location      string    `json:"location" db:"location"`
	Perpetrator   string    `json:"perpetrator" db:"perpetrator"`
	Victim        string    `json:"victim" db:"victim"`
	Killed        string    `json:"killed" db:"killed"`
	Injured       string    `json:"injured" db:"injured"`
	Arrested      string    `json:"arrested" db:"arrested"`
	Description   string    `json:"description" db:"description"`
	Reporter      string    `json:"reporter" db:"reporter"`
	Source        string    `json:"source" db:"source"`
	Remark        string    `json:"remark" db:"remark"`
	IncidentTypes []string  `json:"incident_types" db:"incident_types"`
	Thumbnail     string    `json:"thumbnail,omitempty" db:"thumbnail"`
	FaceEncoding  []float32 `json:"-" db:"face_encoding"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
