package resume

import "strings"

// TemplateID identifies a resume layout family.
type TemplateID string

const (
	TemplateClassic  TemplateID = "classic"
	TemplateModern   TemplateID = "modern"
	TemplateCreative TemplateID = "creative"
	TemplateCustom   TemplateID = "custom"
)

// ParseTemplateID validates a raw template identifier.
func ParseTemplateID(raw string) (TemplateID, bool) {
	switch TemplateID(strings.TrimSpace(raw)) {
	case TemplateClassic:
		return TemplateClassic, true
	case TemplateModern:
		return TemplateModern, true
	case TemplateCreative:
		return TemplateCreative, true
	case TemplateCustom:
		return TemplateCustom, true
	default:
		return "", false
	}
}

// BuiltIn reports whether the template is one of the fixed layout families,
// as opposed to a user-supplied reference image.
func (t TemplateID) BuiltIn() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateCreative:
		return true
	default:
		return false
	}
}

// Education is one schooling entry.
type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

// Experience is one employment entry. Points are free-text achievement bullets.
type Experience struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	StartYear string   `json:"startYear"`
	EndYear   string   `json:"endYear"`
	Points    []string `json:"points"`
}

// Data is the canonical structured resume. Absence of a value is always the
// empty string or an empty list; the assistant contract reads "" / [] as
// "not collected yet", so Normalize must be called after any decode.
type Data struct {
	FullName       string       `json:"fullName"`
	Email          string       `json:"email"`
	PhoneNumber    string       `json:"phoneNumber"`
	Location       string       `json:"location"`
	Linkedin       string       `json:"linkedin"`
	Github         string       `json:"github"`
	Summary        string       `json:"summary"`
	ProfilePicture string       `json:"profilePicture"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
}

// New returns an empty resume with non-nil lists.
func New() Data {
	d := Data{}
	d.Normalize()
	return d
}

// Normalize replaces nil lists with empty ones so JSON encodes [] not null.
func (d *Data) Normalize() {
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	for i := range d.Experience {
		if d.Experience[i].Points == nil {
			d.Experience[i].Points = []string{}
		}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
}

// Empty reports whether nothing has been collected yet.
func (d Data) Empty() bool {
	return d.FullName == "" && d.Email == "" && d.PhoneNumber == "" &&
		d.Location == "" && d.Linkedin == "" && d.Github == "" &&
		d.Summary == "" && d.ProfilePicture == "" &&
		len(d.Education) == 0 && len(d.Experience) == 0 &&
		len(d.Skills) == 0 && len(d.Certifications) == 0
}
