package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stefanristic40/golden-eye-api/internal/api/httperr"
	"github.com/stefanristic40/golden-eye-api/internal/search"
	"github.com/stefanristic40/golden-eye-api/internal/vision"
	"github.com/stefanristic40/golden-eye-api/pkg/dto"
)

type SearchHandler struct {
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// Search runs one query mode against the entries. The mode is resolved
// from field presence with a fixed precedence: image, date range,
// case_id, search_text, incident_type. A request with no trigger fields
// returns an empty result set.
func (h *SearchHandler) Search(c *gin.Context) {
	q := search.Query{
		DateStart:    c.PostForm("date_start"),
		DateEnd:      c.PostForm("date_end"),
		IncidentType: c.PostForm("incident_type"),
		CaseID:       c.PostForm("case_id"),
		SearchText:   c.PostForm("search_text"),
	}

	if file, header, err := c.Request.FormFile("image"); err == nil {
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.Internal, "read image", err))
			return
		}
		q.Image = data
		q.ImageName = header.Filename
	}

	entries, mode, err := h.engine.Search(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrNoFace):
			httperr.Respond(c, httperr.New(httperr.InvalidInput, "no face found"))
		case errors.Is(err, search.ErrEncoderUnavailable):
			httperr.Respond(c, httperr.Wrap(httperr.CapabilityUnavailable, "face search unavailable", err))
		default:
			httperr.Respond(c, httperr.Wrap(httperr.Internal, "search", err))
		}
		return
	}

	results := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		results = append(results, entryResponse(e))
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Mode:    string(mode),
		Results: results,
		Total:   len(results),
	})
}
