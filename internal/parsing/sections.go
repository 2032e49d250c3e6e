package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// segment walks the normalized line array with a cursor: contact extraction
// first, then repeatedly reads the next heading line and delegates everything
// up to the following heading to the block extractor for that section kind.
// Sections with zero extracted blocks are still emitted; post-processing may
// heal them.
func (p *Parser) segment(lines []string) []types.Section {
	var sections []types.Section

	contact, resumeAt := p.extractContact(lines)
	if !contact.IsEmpty() {
		sec := types.NewSection(types.SectionContact, "Contact")
		sec.Blocks = append(sec.Blocks, types.NewContactBlock(contact))
		sections = append(sections, sec)
	}

	cur := newCursor(lines)
	cur.advanceBy(resumeAt)

	// Untitled prose between the contact region and the first heading is an
	// implicit summary; resumes routinely open with an unlabeled paragraph.
	var leading []string
	for !cur.done() && !isHeading(cur.current()) {
		if line := cur.current(); line != "" && !isBullet(line) {
			leading = append(leading, line)
		}
		cur.advance()
	}
	if len(leading) > 0 {
		sec := types.NewSection(types.SectionSummary, "")
		sec.Blocks = append(sec.Blocks, types.NewTextBlock(strings.Join(leading, " ")))
		sections = append(sections, sec)
	}

	for {
		cur.skipBlank()
		if cur.done() {
			break
		}
		heading := cur.current()
		if !isHeading(heading) {
			// Defensive: never stall on a line no extractor claimed.
			cur.advance()
			continue
		}
		kind := p.classifySectionKind(heading)
		cur.advance()

		sec := types.NewSection(kind, strings.TrimSuffix(heading, ":"))
		sec.Blocks = p.extractBlocks(kind, cur)
		sections = append(sections, sec)
	}

	return sections
}

// classifySectionKind maps a heading line to its section kind. Headings that
// match no vocabulary entry (acronym sections, job-title-shaped lines)
// classify as custom and are candidates for later consolidation.
func (p *Parser) classifySectionKind(heading string) types.SectionKind {
	if kind, ok := classifyHeading(heading); ok {
		return kind
	}
	return types.SectionCustom
}

// extractBlocks dispatches to the block extractor for the section kind,
// advancing the cursor to the first line of the next heading.
func (p *Parser) extractBlocks(kind types.SectionKind, cur *cursor) []types.ContentBlock {
	switch kind {
	case types.SectionExperience:
		return p.extractExperienceBlocks(cur)
	case types.SectionEducation:
		return p.extractEducationBlocks(cur)
	case types.SectionSkills:
		return p.extractSkillBlocks(cur)
	case types.SectionCertifications, types.SectionLanguages:
		return p.extractBulletListBlocks(cur)
	case types.SectionContact:
		// Contact content was already consumed by the contact extractor;
		// whatever remains under the heading is kept as generic blocks.
		return p.extractGenericBlocks(cur)
	default:
		return p.extractGenericBlocks(cur)
	}
}
