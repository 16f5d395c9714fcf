package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a person-of-interest record linked to an entry through
// EntryID. The link is a plain string match, not a foreign key.
type Profile struct {
	ID      uuid.UUID `json:"id" db:"id"`
	EntryID string    `json:"entry_id" db:"entry_id"`

	// Identity
	Name             string `json:"name" db:"name"`
	Alias            string `json:"alias" db:"alias"`
	FatherName       string `json:"father_name" db:"father_name"`
	MotherName       string `json:"mother_name" db:"mother_name"`
	Gender           string `json:"gender" db:"gender"`
	DateOfBirth      string `json:"date_of_birth" db:"date_of_birth"`
	Age              string `json:"age" db:"age"`
	NationalID       string `json:"national_id" db:"national_id"`
	Religion         string `json:"religion" db:"religion"`
	Ethnicity        string `json:"ethnicity" db:"ethnicity"`
	Nationality      string `json:"nationality" db:"nationality"`
	Education        string `json:"education" db:"education"`
	Occupation       string `json:"occupation" db:"occupation"`
	MaritalStatus    string `json:"marital_status" db:"marital_status"`
	BloodGroup       string `json:"blood_group" db:"blood_group"`
	IdentifyingMarks string `json:"identifying_marks" db:"identifying_marks"`

	// Addresses
	PermDivision    string `json:"perm_division" db:"perm_division"`
	PermDistrict    string `json:"perm_district" db:"perm_district"`
	PermTown        string `json:"perm_town" db:"perm_town"`
	PermVillage     string `json:"perm_village" db:"perm_village"`
	PermStreet      string `json:"perm_street" db:"perm_street"`
	CurrentDivision string `json:"current_division" db:"current_division"`
	CurrentDistrict string `json:"current_district" db:"current_district"`
	CurrentAddress  string `json:"current_address" db:"current_address"`

	// Family
	SpouseName      string `json:"spouse_name" db:"spouse_name"`
	Children        string `json:"children" db:"children"`
	Siblings        string `json:"siblings" db:"siblings"`
	Relatives       string `json:"relatives" db:"relatives"`
	GuardianName    string `json:"guardian_name" db:"guardian_name"`
	GuardianContact string `json:"guardian_contact" db:"guardian_contact"`

	// Affiliation
	Organization         string `json:"organization" db:"organization"`
	Rank                 string `json:"rank" db:"rank"`
	Department           string `json:"department" db:"department"`
	Cell                 string `json:"cell" db:"cell"`
	JoinDate             string `json:"join_date" db:"join_date"`
	PreviousOrganization string `json:"previous_organization" db:"previous_organization"`
	Mentor               string `json:"mentor" db:"mentor"`
	Recruits             string `json:"recruits" db:"recruits"`

	// Contact
	Phone       string `json:"phone" db:"phone"`
	AltPhone    string `json:"alt_phone" db:"alt_phone"`
	Email       string `json:"email" db:"email"`
	SocialMedia string `json:"social_media" db:"social_media"`
	Messenger   string `json:"messenger" db:"messenger"`

	// Behavior
	Habits         string `json:"habits" db:"habits"`
	Skills         string `json:"skills" db:"skills"`
	Languages      string `json:"languages" db:"languages"`
	Vehicles       string `json:"vehicles" db:"vehicles"`
	Weapons        string `json:"weapons" db:"weapons"`
	Associates     string `json:"associates" db:"associates"`
	OperationAreas string `json:"operation_areas" db:"operation_areas"`
	CriminalRecord string `json:"criminal_record" db:"criminal_record"`

	Status  string `json:"status" db:"status"`
	Remarks string `json:"remarks" db:"remarks"`

	Thumbnail    string    `json:"thumbnail,omitempty" db:"thumbnail"`
	FaceEncoding []float32 `json:"-" db:"face_encoding"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
