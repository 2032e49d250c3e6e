package export

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// defaultHeadings names sections whose heading was implicit in the source,
// such as an unlabeled summary paragraph.
var defaultHeadings = map[types.SectionKind]string{
	types.SectionSummary:        "SUMMARY",
	types.SectionObjective:      "OBJECTIVE",
	types.SectionSkills:         "SKILLS",
	types.SectionExperience:     "EXPERIENCE",
	types.SectionEducation:      "EDUCATION",
	types.SectionCertifications: "CERTIFICATIONS",
	types.SectionLanguages:      "LANGUAGES",
	types.SectionProjects:       "PROJECTS",
	types.SectionAwards:         "AWARDS",
	types.SectionPublications:   "PUBLICATIONS",
	types.SectionVolunteer:      "VOLUNTEER",
	types.SectionInterests:      "INTERESTS",
	types.SectionReferences:     "REFERENCES",
}

// ToText renders a document as formatted plain text. The layout mirrors the
// inline-pipe resume style, so feeding the output back through the recognizer
// yields the same experience, education and certification counts.
func ToText(doc *types.Document) string {
	var sb strings.Builder
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.Kind == types.SectionContact {
			writeContactSection(&sb, sec)
			continue
		}
		heading := sec.Heading
		if heading == "" {
			heading = defaultHeadings[sec.Kind]
		}
		if heading != "" {
			sb.WriteString(heading + "\n")
		}
		for j := range sec.Blocks {
			writeBlock(&sb, &sec.Blocks[j])
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()) + "\n"
}

func writeContactSection(sb *strings.Builder, sec *types.Section) {
	for i := range sec.Blocks {
		c := sec.Blocks[i].Contact
		if sec.Blocks[i].Kind != types.BlockContact || c == nil {
			continue
		}
		if c.Name != "" {
			sb.WriteString(c.Name + "\n")
		}
		var row []string
		for _, field := range []string{c.Email, c.Phone, c.Location} {
			if field != "" {
				row = append(row, field)
			}
		}
		if len(row) > 0 {
			sb.WriteString(strings.Join(row, " | ") + "\n")
		}
		for _, link := range []string{c.LinkedIn, c.GitHub, c.Website} {
			if link != "" {
				sb.WriteString(link + "\n")
			}
		}
	}
	sb.WriteString("\n")
}

func writeBlock(sb *strings.Builder, block *types.ContentBlock) {
	switch block.Kind {
	case types.BlockText:
		if block.Text != "" {
			sb.WriteString(block.Text + "\n")
		}
	case types.BlockBulletList:
		for _, b := range block.Bullets {
			sb.WriteString(strings.Repeat("  ", b.IndentLevel) + "- " + b.Text + "\n")
		}
	case types.BlockExperience:
		if block.Experience != nil {
			writeExperience(sb, block.Experience)
		}
	case types.BlockEducation:
		if block.Education != nil {
			writeEducation(sb, block.Education)
		}
	case types.BlockSkillGroup:
		if g := block.SkillGroup; g != nil {
			if g.Category != "" {
				sb.WriteString(g.Category + ": ")
			}
			sb.WriteString(strings.Join(g.Skills, ", ") + "\n")
		}
	}
}

func writeExperience(sb *strings.Builder, item *types.ExperienceItem) {
	fields := []string{item.Title}
	if item.Company != "" {
		fields = append(fields, item.Company)
	}
	if item.Location != "" {
		fields = append(fields, item.Location)
	}
	if item.StartDate != "" {
		dates := item.StartDate
		if item.EndDate != "" {
			dates += " - " + item.EndDate
		}
		fields = append(fields, dates)
	}
	sb.WriteString(strings.Join(fields, " | ") + "\n")
	if item.Description != "" {
		sb.WriteString(item.Description + "\n")
	}
	for _, a := range item.Achievements {
		sb.WriteString("- " + a + "\n")
	}
}

func writeEducation(sb *strings.Builder, item *types.EducationItem) {
	degree := item.Degree
	if item.Field != "" && !strings.Contains(strings.ToLower(degree), strings.ToLower(item.Field)) {
		degree += " in " + item.Field
	}
	if degree != "" {
		sb.WriteString(degree + "\n")
	}
	if item.Institution != "" {
		line := item.Institution
		if item.Location != "" {
			line += ", " + item.Location
		}
		sb.WriteString(line + "\n")
	}
	if item.GraduationDate != "" {
		sb.WriteString(item.GraduationDate + "\n")
	}
	if item.GPA != "" {
		sb.WriteString("GPA: " + item.GPA + "\n")
	}
	for _, a := range item.Achievements {
		sb.WriteString("- " + a + "\n")
	}
}
