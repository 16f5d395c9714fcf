package dto

// EntryForm binds the multipart fields of POST /api/entry. All values are
// opaque text. IncidentTypes arrives as a JSON array in a single form
// field and is parsed separately; the thumbnail file is read from the
// multipart body directly.
type EntryForm struct {
	CaseID        string `form:"case_id"`
	Date          string `form:"date"`
	Time          string `form:"time"`
	Organization  string `form:"organization"`
	Division      string `form:"division"`
	District      string `form:"district"`
	Town          string `form:"town"`
	Village       string `form:"village"`
	Location      string `form:"location"`
	Perpetrator   string `form:"perpetrator"`
	Victim        string `form:"victim"`
	Killed        string `form:"killed"`
	Injured       string `form:"injured"`
	Arrested      string `form:"arrested"`
	Description   string `form:"description"`
	Reporter      string `form:"reporter"`
	Source        string `form:"source"`
	Remark        string `form:"remark"`
	IncidentTypes string `form:"incident_types"`
}

// EntryResponse is an entry as returned by the API: the id is a plain
// string and the stored face encoding is never included.
type EntryResponse struct {
	ID            string   `json:"id"`
	CaseID        string   `json:"case_id"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Organization  string   `json:"organization"`
	Division      string   `json:"division"`
	District      string   `json:"district"`
	Town          string   `json:"town"`
	Village       string   `json:"village"`
	Location      string   `json:"location"`
	Perpetrator   string   `json:"perpetrator"`
	Victim        string   `json:"victim"`
	Killed        string   `json:"killed"`
	Injured       string   `json:"injured"`
	Arrested      string   `json:"arrested"`
	Description   string   `json:"description"`
	Reporter      string   `json:"reporter"`
	Source        string   `json:"source"`
	Remark        string   `json:"remark"`
	IncidentTypes []string `json:"incident_types"`
	ThumbnailURL  string   `json:"thumbnail_url,omitempty"`
	CreatedAt     string   `json:"created_at"`
}
