package handlers

import (
	"github.com/stefanristic40/golden-eye-api/internal/models"
	"github.com/stefanristic40/golden-eye-api/pkg/dto"
)

const timeFormat = "2006-01-02T15:04:05Z"

// entryResponse converts a stored entry into its API shape: id as a
// plain string, no face encoding.
func entryResponse(e models.Entry) dto.EntryResponse {
	r := dto.EntryResponse{
		ID:            e.ID.String(),
		CaseID:        e.CaseID,
		Date:          e.Date,
		Time:          e.Time,
		Organization:  e.Organization,
		Division:      e.Division,
		District:      e.District,
		Town:          e.Town,
		Village:       e.Village,
		Location:      e.Location,
		Perpetrator:   e.Perpetrator,
		Victim:        e.Victim,
		Killed:        e.Killed,
		Injured:       e.Injured,
		Arrested:      e.Arrested,
		Description:   e.Description,
		Reporter:      e.Reporter,
		Source:        e.Source,
		Remark:        e.Remark,
		IncidentTypes: e.IncidentTypes,
		CreatedAt:     e.CreatedAt.Format(timeFormat),
	}
	if r.IncidentTypes == nil {
		r.IncidentTypes = []string{}
	}
	if e.Thumbnail != "" {
		r.ThumbnailURL = "/images/" + e.Thumbnail
	}
	return r
}

func profileResponse(p *models.Profile) dto.ProfileResponse {
	r := dto.ProfileResponse{
		ID:      p.ID.String(),
		EntryID: p.EntryID,

		Name:             p.Name,
		Alias:            p.Alias,
		FatherName:       p.FatherName,
		MotherName:       p.MotherName,
		Gender:           p.Gender,
		DateOfBirth:      p.DateOfBirth,
		Age:              p.Age,
		NationalID:       p.NationalID,
		Religion:         p.Religion,
		Ethnicity:        p.Ethnicity,
		Nationality:      p.Nationality,
		Education:        p.Education,
		Occupation:       p.Occupation,
		MaritalStatus:    p.MaritalStatus,
		BloodGroup:       p.BloodGroup,
		IdentifyingMarks: p.IdentifyingMarks,

		PermDivision:    p.PermDivision,
		PermDistrict:    p.PermDistrict,
		PermTown:        p.PermTown,
		PermVillage:     p.PermVillage,
		PermStreet:      p.PermStreet,
		CurrentDivision: p.CurrentDivision,
		CurrentDistrict: p.CurrentDistrict,
		CurrentAddress:  p.CurrentAddress,

		SpouseName:      p.SpouseName,
		Children:        p.Children,
		Siblings:        p.Siblings,
		Relatives:       p.Relatives,
		GuardianName:    p.GuardianName,
		GuardianContact: p.GuardianContact,

		Organization:         p.Organization,
		Rank:                 p.Rank,
		Department:           p.Department,
		Cell:                 p.Cell,
		JoinDate:             p.JoinDate,
		PreviousOrganization: p.PreviousOrganization,
		Mentor:               p.Mentor,
		Recruits:             p.Recruits,

		Phone:       p.Phone,
		AltPhone:    p.AltPhone,
		Email:       p.Email,
		SocialMedia: p.SocialMedia,
		Messenger:   p.Messenger,

		Habits:         p.Habits,
		Skills:         p.Skills,
		Languages:      p.Languages,
		Vehicles:       p.Vehicles,
		Weapons:        p.Weapons,
		Associates:     p.Associates,
		OperationAreas: p.OperationAreas,
		CriminalRecord: p.CriminalRecord,

		Status:  p.Status,
		Remarks: p.Remarks,

		CreatedAt: p.CreatedAt.Format(timeFormat),
	}
	if p.Thumbnail != "" {
		r.ThumbnailURL = "/images/" + p.Thumbnail
	}
	return r
}
