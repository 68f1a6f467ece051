package resume

// Update is a partial overlay on Data. A nil field means "leave unchanged";
// a non-nil field replaces the target outright. Array fields replace
// wholesale rather than merging by index: the ordered lists carry no stable
// identity, so the assistant resends the entire list on any change.
type Update struct {
	FullName       *string       `json:"fullName,omitempty"`
	Email          *string       `json:"email,omitempty"`
	PhoneNumber    *string       `json:"phoneNumber,omitempty"`
	Location       *string       `json:"location,omitempty"`
	Linkedin       *string       `json:"linkedin,omitempty"`
	Github         *string       `json:"github,omitempty"`
	Summary        *string       `json:"summary,omitempty"`
	ProfilePicture *string       `json:"profilePicture,omitempty"`
	Education      *[]Education  `json:"education,omitempty"`
	Experience     *[]Experience `json:"experience,omitempty"`
	Skills         *[]string     `json:"skills,omitempty"`
	Certifications *[]string     `json:"certifications,omitempty"`
}

// IsZero reports whether the update carries no changes.
func (u Update) IsZero() bool {
	return u.FullName == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.Location == nil && u.Linkedin == nil && u.Github == nil &&
		u.Summary == nil && u.ProfilePicture == nil &&
		u.Education == nil && u.Experience == nil &&
		u.Skills == nil && u.Certifications == nil
}

// Apply merges the update into the snapshot and re-normalizes lists.
func (d *Data) Apply(u Update) {
	if u.FullName != nil {
		d.FullName = *u.FullName
	}
	if u.Email != nil {
		d.Email = *u.Email
	}
	if u.PhoneNumber != nil {
		d.PhoneNumber = *u.PhoneNumber
	}
	if u.Location != nil {
		d.Location = *u.Location
	}
	if u.Linkedin != nil {
		d.Linkedin = *u.Linkedin
	}
	if u.Github != nil {
		d.Github = *u.Github
	}
	if u.Summary != nil {
		d.Summary = *u.Summary
	}
	if u.ProfilePicture != nil {
		d.ProfilePicture = *u.ProfilePicture
	}
	if u.Education != nil {
		d.Education = *u.Education
	}
	if u.Experience != nil {
		d.Experience = *u.Experience
	}
	if u.Skills != nil {
		d.Skills = *u.Skills
	}
	if u.Certifications != nil {
		d.Certifications = *u.Certifications
	}
	d.Normalize()
}
