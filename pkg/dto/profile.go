package dto

// ProfileForm binds the multipart fields of POST /api/low. entry_id is
// the only required field; everything else is opaque text.
type ProfileForm struct {
	EntryID string `form:"entry_id"`

	Name             string `form:"name"`
	Alias            string `form:"alias"`
	FatherName       string `form:"father_name"`
	MotherName       string `form:"mother_name"`
	Gender           string `form:"gender"`
	DateOfBirth      string `form:"date_of_birth"`
	Age              string `form:"age"`
	NationalID       string `form:"national_id"`
	Religion         string `form:"religion"`
	Ethnicity        string `form:"ethnicity"`
	Nationality      string `form:"nationality"`
	Education        string `form:"education"`
	Occupation       string `form:"occupation"`
	MaritalStatus    string `form:"marital_status"`
	BloodGroup       string `form:"blood_group"`
	IdentifyingMarks string `form:"identifying_marks"`

	PermDivision    string `form:"perm_division"`
	PermDistrict    string `form:"perm_district"`
	PermTown        string `form:"perm_town"`
	PermVillage     string `form:"perm_village"`
	PermStreet      string `form:"perm_street"`
	CurrentDivision string `form:"current_division"`
	CurrentDistrict string `form:"current_district"`
	CurrentAddress  string `form:"current_address"`

	SpouseName      string `form:"spouse_name"`
	Children        string `form:"children"`
	Siblings        string `form:"siblings"`
	Relatives       string `form:"relatives"`
	GuardianName    string `form:"guardian_name"`
	GuardianContact string `form:"guardian_contact"`

	Organization         string `form:"organization"`
	Rank                 string `form:"rank"`
	Department           string `form:"department"`
	Cell                 string `form:"cell"`
	JoinDate             string `form:"join_date"`
	PreviousOrganization string `form:"previous_organization"`
	Mentor               string `form:"mentor"`
	Recruits             string `form:"recruits"`

	Phone       string `form:"phone"`
	AltPhone    string `form:"alt_phone"`
	Email       string `form:"email"`
	SocialMedia string `form:"social_media"`
	Messenger   string `form:"messenger"`

	Habits         string `form:"habits"`
	Skills         string `form:"skills"`
	Languages      string `form:"languages"`
	Vehicles       string `form:"vehicles"`
	Weapons        string `form:"weapons"`
	Associates     string `form:"associates"`
	OperationAreas string `form:"operation_areas"`
	CriminalRecord string `form:"criminal_record"`

	Status  string `form:"status"`
	Remarks string `form:"remarks"`
}

// ProfileResponse is a person profile as returned by the API. The stored
// face encoding is never included.
type ProfileResponse struct {
	ID      string `json:"id"`
	EntryID string `json:"entry_id"`

	Name             string `json:"name"`
	Alias            string `json:"alias"`
	FatherName       string `json:"father_name"`
	MotherName       string `json:"mother_name"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	Age              string `json:"age"`
	NationalID       string `json:"national_id"`
	Religion         string `json:"religion"`
	Ethnicity        string `json:"ethnicity"`
	Nationality      string `json:"nationality"`
	Education        string `json:"education"`
	Occupation       string `json:"occupation"`
	MaritalStatus    string `json:"marital_status"`
	BloodGroup       string `json:"blood_group"`
	IdentifyingMarks string `json:"identifying_marks"`

	PermDivision    string `json:"perm_division"`
	PermDistrict    string `json:"perm_district"`
	PermTown        string `json:"perm_town"`
	PermVillage     string `json:"perm_village"`
	PermStreet      string `json:"perm_street"`
	CurrentDivision string `json:"current_division"`
	CurrentDistrict string `json:"current_district"`
	CurrentAddress  string `json:"current_address"`

	SpouseName      string `json:"spouse_name"`
	Children        string `json:"children"`
	Siblings        string `json:"siblings"`
	Relatives       string `json:"relatives"`
	GuardianName    string `json:"guardian_name"`
	GuardianContact string `json:"guardian_contact"`

	Organization         string `json:"organization"`
	Rank                 string `json:"rank"`
	Department           string `json:"department"`
	Cell                 string `json:"cell"`
	JoinDate             string `json:"join_date"`
	PreviousOrganization string `json:"previous_organization"`
	Mentor               string `json:"mentor"`
	Recruits             string `json:"recruits"`

	Phone       string `json:"phone"`
	AltPhone    string `json:"alt_phone"`
	Email       string `json:"email"`
	SocialMedia string `json:"social_media"`
	Messenger   string `json:"messenger"`

	Habits         string `json:"habits"`
	Skills         string `json:"skills"`
	Languages      string `json:"languages"`
	Vehicles       string `json:"vehicles"`
	Weapons        string `json:"weapons"`
	Associates     string `json:"associates"`
	OperationAreas string `json:"operation_areas"`
	CriminalRecord string `json:"criminal_record"`

	Status  string `json:"status"`
	Remarks string `json:"remarks"`

	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	CreatedAt    string `json:"created_at"`
}
