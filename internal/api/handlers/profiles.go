package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stefanristic40/golden-eye-api/internal/api/httperr"
	"github.com/stefanristic40/golden-eye-api/internal/models"
	"github.com/stefanristic40/golden-eye-api/internal/observability"
	"github.com/stefanristic40/golden-eye-api/internal/storage"
	"github.com/stefanristic40/golden-eye-api/pkg/dto"
)

type ProfileHandler struct {
	profiles ProfileStore
	images   ObjectStore
	encoder  Encoder
	events   EventPublisher
}

func NewProfileHandler(profiles ProfileStore, images ObjectStore, events EventPublisher) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, images: images, events: events}
}

// SetEncoder wires the face encoder once the vision pipeline is up.
func (h *ProfileHandler) SetEncoder(encoder Encoder) {
	h.encoder = encoder
}

// Create ingests a person profile. entry_id is required; the link to the
// entry is by value only and is not verified against the entries table.
func (h *ProfileHandler) Create(c *gin.Context) {
	var form dto.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.InvalidInput, "malformed form", err))
		return
	}
	if form.EntryID == "" {
		httperr.Respond(c, httperr.New(httperr.InvalidInput, "entry_id is required"))
		return
	}

	profile := profileFromForm(&form)

	if fh, err := c.FormFile("thumbnail"); err == nil {
		filename, encoding, err := ingestThumbnail(c.Request.Context(), h.images, h.encoder, fh)
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.Internal, "store thumbnail", err))
			return
		}
		profile.Thumbnail = filename
		profile.FaceEncoding = encoding
	}

	if err := h.profiles.CreateProfile(c.Request.Context(), profile); err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.Internal, "create profile", err))
		return
	}

	observability.RecordsCreated.WithLabelValues("profile").Inc()

	if h.events != nil {
		evt := dto.RecordEvent{
			Kind:      "profile",
			ID:        profile.ID.String(),
			EntryID:   profile.EntryID,
			Name:      profile.Name,
			CreatedAt: profile.CreatedAt.Format(timeFormat),
		}
		if err := h.events.PublishRecordCreated(c.Request.Context(), "profile", evt); err != nil {
			slog.Warn("publish profile created", "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile created successfully",
		"id":      profile.ID.String(),
	})
}

// GetByEntryID returns the first profile linked to the given entry id.
func (h *ProfileHandler) GetByEntryID(c *gin.Context) {
	entryID := c.Param("entry_id")
	if entryID == "" {
		httperr.Respond(c, httperr.New(httperr.InvalidInput, "entry_id is required"))
		return
	}

	profile, err := h.profiles.GetProfileByEntryID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, httperr.New(httperr.NotFound, "profile not found"))
			return
		}
		httperr.Respond(c, httperr.Wrap(httperr.Internal, "get profile", err))
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

func profileFromForm(form *dto.ProfileForm) *models.Profile {
	return &models.Profile{
		EntryID: form.EntryID,

		Name:             form.Name,
		Alias:            form.Alias,
		FatherName:       form.FatherName,
		MotherName:       form.MotherName,
		Gender:           form.Gender,
		DateOfBirth:      form.DateOfBirth,
		Age:              form.Age,
		NationalID:       form.NationalID,
		Religion:         form.Religion,
		Ethnicity:        form.Ethnicity,
		Nationality:      form.Nationality,
		Education:        form.Education,
		Occupation:       form.Occupation,
		MaritalStatus:    form.MaritalStatus,
		BloodGroup:       form.BloodGroup,
		IdentifyingMarks: form.IdentifyingMarks,

		PermDivision:    form.PermDivision,
		PermDistrict:    form.PermDistrict,
		PermTown:        form.PermTown,
		PermVillage:     form.PermVillage,
		PermStreet:      form.PermStreet,
		CurrentDivision: form.CurrentDivision,
		CurrentDistrict: form.CurrentDistrict,
		CurrentAddress:  form.CurrentAddress,

		SpouseName:      form.SpouseName,
		Children:        form.Children,
		Siblings:        form.Siblings,
		Relatives:       form.Relatives,
		GuardianName:    form.GuardianName,
		GuardianContact: form.GuardianContact,

		Organization:         form.Organization,
		Rank:                 form.Rank,
		Department:           form.Department,
		Cell:                 form.Cell,
		JoinDate:             form.JoinDate,
		PreviousOrganization: form.PreviousOrganization,
		Mentor:               form.Mentor,
		Recruits:             form.Recruits,

		Phone:       form.Phone,
		AltPhone:    form.AltPhone,
		Email:       form.Email,
		SocialMedia: form.SocialMedia,
		Messenger:   form.Messenger,

		Habits:         form.Habits,
		Skills:         form.Skills,
		Languages:      form.Languages,
		Vehicles:       form.Vehicles,
		Weapons:        form.Weapons,
		Associates:     form.Associates,
		OperationAreas: form.OperationAreas,
		CriminalRecord: form.CriminalRecord,

		Status:  form.Status,
		Remarks: form.Remarks,
	}
}
