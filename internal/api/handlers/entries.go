package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stefanristic40/golden-eye-api/internal/api/httperr"
	"github.com/stefanristic40/golden-eye-api/internal/models"
	"github.com/stefanristic40/golden-eye-api/internal/observability"
	"github.com/stefanristic40/golden-eye-api/pkg/dto"
)

type EntryHandler struct {
	entries EntryCreator
	images  ObjectStore
	encoder Encoder
	events  EventPublisher
}

func NewEntryHandler(entries EntryCreator, images ObjectStore, events EventPublisher) *EntryHandler {
	return &EntryHandler{entries: entries, images: images, events: events}
}

// SetEncoder wires the face encoder once the vision pipeline is up.
func (h *EntryHandler) SetEncoder(encoder Encoder) {
	h.encoder = encoder
}

// Create ingests a new incident entry from a multipart form. Field
// values are accepted as opaque text; only the incident_types list must
// be well-formed JSON.
func (h *EntryHandler) Create(c *gin.Context) {
	var form dto.EntryForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.InvalidInput, "malformed form", err))
		return
	}

	var incidentTypes []string
	if form.IncidentTypes != "" {
		if err := json.Unmarshal([]byte(form.IncidentTypes), &incidentTypes); err != nil {
			httperr.Respond(c, httperr.New(httperr.InvalidInput, "malformed incident_types"))
			return
		}
	}

	entry := &models.Entry{
		CaseID:        form.CaseID,
		Date:          form.Date,
		Time:          form.Time,
		Organization:  form.Organization,
		Division:      form.Division,
		District:      form.District,
		Town:          form.Town,
		Village:       form.Village,
		Location:      form.Location,
		Perpetrator:   form.Perpetrator,
		Victim:        form.Victim,
		Killed:        form.Killed,
		Injured:       form.Injured,
		Arrested:      form.Arrested,
		Description:   form.Description,
		Reporter:      form.Reporter,
		Source:        form.Source,
		Remark:        form.Remark,
		IncidentTypes: incidentTypes,
	}

	if fh, err := c.FormFile("thumbnail"); err == nil {
		filename, encoding, err := ingestThumbnail(c.Request.Context(), h.images, h.encoder, fh)
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.Internal, "store thumbnail", err))
			return
		}
		entry.Thumbnail = filename
		entry.FaceEncoding = encoding
	}

	if err := h.entries.CreateEntry(c.Request.Context(), entry); err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.Internal, "create entry", err))
		return
	}

	observability.RecordsCreated.WithLabelValues("entry").Inc()

	if h.events != nil {
		evt := dto.RecordEvent{
			Kind:      "entry",
			ID:        entry.ID.String(),
			CaseID:    entry.CaseID,
			CreatedAt: entry.CreatedAt.Format(timeFormat),
		}
		if err := h.events.PublishRecordCreated(c.Request.Context(), "entry", evt); err != nil {
			slog.Warn("publish entry created", "error", err)
		}
	}

	c.JSON(http.StatusOK, entryResponse(*entry))
}
