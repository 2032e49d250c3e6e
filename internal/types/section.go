package types

import "github.com/google/uuid"

// SectionKind identifies the semantic type of a resume section.
type SectionKind string

// Canonical section kinds. Custom covers headings that match no known
// vocabulary entry; at most one section per kind survives post-processing.
const (
	SectionContact        SectionKind = "contact"
	SectionSummary        SectionKind = "summary"
	SectionObjective      SectionKind = "objective"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
	SectionProjects       SectionKind = "projects"
	SectionAwards         SectionKind = "awards"
	SectionPublications   SectionKind = "publications"
	SectionLanguages      SectionKind = "languages"
	SectionVolunteer      SectionKind = "volunteer"
	SectionInterests      SectionKind = "interests"
	SectionReferences     SectionKind = "references"
	SectionCustom         SectionKind = "custom"
)

// sectionRanks is the canonical display order. References always sorts last.
var sectionRanks = map[SectionKind]int{
	SectionContact:        0,
	SectionSummary:        1,
	SectionObjective:      2,
	SectionSkills:         3,
	SectionExperience:     4,
	SectionEducation:      5,
	SectionCertifications: 6,
	SectionLanguages:      7,
	SectionProjects:       8,
	SectionAwards:         9,
	SectionPublications:   10,
	SectionVolunteer:      11,
	SectionInterests:      12,
	SectionCustom:         13,
	SectionReferences:     14,
}

// Rank returns the canonical display order rank for the kind. Unknown kinds
// rank with custom sections.
func (k SectionKind) Rank() int {
	if r, ok := sectionRanks[k]; ok {
		return r
	}
	return sectionRanks[SectionCustom]
}

// Section is a titled region of a resume holding an ordered list of content
// blocks. Sections are mutated only during post-processing (content appended,
// order reassigned) and removed only by deduplication or merging.
type Section struct {
	ID      string         `json:"id"`
	Kind    SectionKind    `json:"kind"`
	Heading string         `json:"heading"`
	Order   int            `json:"order"`
	Blocks  []ContentBlock `json:"blocks"`
}

// NewSection creates a section with a stable id and its canonical order rank.
func NewSection(kind SectionKind, heading string) Section {
	return Section{
		ID:      uuid.NewString(),
		Kind:    kind,
		Heading: heading,
		Order:   kind.Rank(),
	}
}
