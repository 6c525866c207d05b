package model

type PersonalInfo struct {
	FullName string `json:"fullName" yaml:"full_name" validate:"required"`
	Email    string `json:"email" yaml:"email" validate:"required,email"`
	Phone    string `json:"phone" yaml:"phone,omitempty"`
	Location string `json:"location" yaml:"location,omitempty"`
	Website  string `json:"website" yaml:"website,omitempty"`
	LinkedIn string `json:"linkedin" yaml:"linkedin,omitempty"`
	GitHub   string `json:"github" yaml:"github,omitempty"`
}

type WorkExperience struct {
	ID          string   `json:"id" yaml:"id,omitempty"`
	Company     string   `json:"company" yaml:"company" validate:"required"`
	Position    string   `json:"position" yaml:"position" validate:"required"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate   string   `json:"startDate" yaml:"start_date" validate:"required"`
	EndDate     string   `json:"endDate,omitempty" yaml:"end_date,omitempty"`
	Current     bool     `json:"current" yaml:"current"`
	Description string   `json:"description,omitempty" yaml:"-"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}

type Education struct {
	ID          string `json:"id" yaml:"id,omitempty"`
	Institution string `json:"institution" yaml:"institution" validate:"required"`
	Degree      string `json:"degree" yaml:"degree" validate:"required"`
	Field       string `json:"field,omitempty" yaml:"field,omitempty"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty" yaml:"start_date,omitempty"`
	EndDate     string `json:"endDate,omitempty" yaml:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Description string `json:"description,omitempty" yaml:"-"`
}

type Project struct {
	ID           string   `json:"id" yaml:"id,omitempty"`
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Description  string   `json:"description,omitempty" yaml:"-"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty" yaml:"start_date,omitempty"`
	EndDate      string   `json:"endDate,omitempty" yaml:"end_date,omitempty"`
}

// Resume is the root document. It is owned by the store; everything else
// works on copies.
type Resume struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Projects       []Project        `json:"projects"`
}

// Default returns the fixed empty document.
func Default() Resume {
	return Resume{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []string{},
		Projects:       []Project{},
	}
}

// Clone returns a deep copy of r with nil collections replaced by empty ones.
func (r Resume) Clone() Resume {
	out := r
	out.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
	for i, w := range r.WorkExperience {
		out.WorkExperience[i] = w.Clone()
	}
	out.Education = append([]Education{}, r.Education...)
	out.Skills = append([]string{}, r.Skills...)
	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		out.Projects[i] = p.Clone()
	}
	return out
}

func (w WorkExperience) Clone() WorkExperience {
	w.Highlights = append([]string{}, w.Highlights...)
	return w
}

func (p Project) Clone() Project {
	p.Technologies = append([]string{}, p.Technologies...)
	return p
}

// IsEmpty reports whether nothing has been entered yet.
func (r Resume) IsEmpty() bool {
	return r.PersonalInfo == PersonalInfo{} && r.Summary == "" &&
		len(r.WorkExperience) == 0 && len(r.Education) == 0 &&
		len(r.Skills) == 0 && len(r.Projects) == 0
}
