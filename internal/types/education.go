package types

// EducationItem is one education entry. The same empty-string-for-unknown
// convention as ExperienceItem applies to every optional field.
type EducationItem struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Field          string   `json:"field"`
	Location       string   `json:"location"`
	GraduationDate string   `json:"graduation_date"`
	GPA            string   `json:"gpa"`
	Achievements   []string `json:"achievements"`
}
