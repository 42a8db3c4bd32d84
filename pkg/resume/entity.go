package resume

import "encoding/json"

// BasicInfo is the candidate header of an extraction.
type BasicInfo struct {
	Phone      string          `json:"phone"`
	Bio        string          `json:"bio"`
	ResumeJSON json.RawMessage `json:"resume_json"`
	Domain     string          `json:"domain"`
}

type EducationEntry struct {
	Degree         string   `json:"degree"`
	FieldOfStudy   *string  `json:"field_of_study"`
	CollegeName    string   `json:"college_name"`
	UniversityName *string  `json:"university_name"`
	GPA            *float64 `json:"gpa"`
	StartYear      *int     `json:"start_year"`
	EndYear        *int     `json:"end_year"`
}

type Certificate struct {
	CertificateName   string `json:"certificate_name"`
	CertificateIssuer string `json:"certificate_issuer"`
	CertificateDate   string `json:"certificate_date"`
}

type Project struct {
	ProjectName        string  `json:"project_name"`
	ProjectDescription string  `json:"project_description"`
	ProjectLink        *string `json:"project_link"`
}

type Skill struct {
	SkillName string `json:"skill_name"`
}

// ExtractionResult is the full structured output of one processed resume.
// It is constructed once per request and never mutated after coercion.
// Every list field is either nil (section absent from the source) or
// non-empty; Coerce enforces this rather than trusting the generator.
type ExtractionResult struct {
	Candidate         BasicInfo        `json:"candidates"`
	Education         []EducationEntry `json:"education"`
	Certificates      []Certificate    `json:"certificates"`
	Projects          []Project        `json:"projects"`
	Skills            []Skill          `json:"skills"`
	Analysis          string           `json:"analysis"`
	ResumeScore       int              `json:"resume_score"`
	Domain            string           `json:"domain"`
	SkillAnalysis     string           `json:"skill_analysis"`
	SuggestedProjects string           `json:"suggested_projects"`
}

// Projection is the caller-facing subset of an extraction; the rest of the
// result is persisted but not echoed back.
type Projection struct {
	Analysis          string `json:"analysis"`
	ResumeScore       int    `json:"resume_score"`
	SkillAnalysis     string `json:"skill_analysis"`
	SuggestedProjects string `json:"suggested_projects"`
}

// Coerce applies the semantic rules the schema alone cannot express:
// the score is clamped into [0,100], off-enumeration domains fall back, and
// empty list sections become absent.
func (r *ExtractionResult) Coerce() {
	if r.ResumeScore < 0 {
		r.ResumeScore = 0
	}
	if r.ResumeScore > 100 {
		r.ResumeScore = 100
	}
	r.Domain = CanonicalDomain(r.Domain)
	r.Candidate.Domain = CanonicalDomain(r.Candidate.Domain)
	if len(r.Education) == 0 {
		r.Education = nil
	}
	if len(r.Certificates) == 0 {
		r.Certificates = nil
	}
	if len(r.Projects) == 0 {
		r.Projects = nil
	}
	if len(r.Skills) == 0 {
		r.Skills = nil
	}
}

// Empty reports the "not a resume" outcome: the generator was instructed to
// return an empty object when the text does not resemble a resume.
func (r *ExtractionResult) Empty() bool {
	return r.Candidate.Bio == "" && r.Analysis == "" &&
		r.Education == nil && r.Certificates == nil &&
		r.Projects == nil && r.Skills == nil
}

// Projection returns the four designated caller-facing fields.
func (r *ExtractionResult) Projection() Projection {
	return Projection{
		Analysis:          r.Analysis,
		ResumeScore:       r.ResumeScore,
		SkillAnalysis:     r.SkillAnalysis,
		SuggestedProjects: r.SuggestedProjects,
	}
}
