package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// extractSkillBlocks consumes a skills section into skill groups. A line of
// the form "Category: a, b, c" becomes a labeled group; bullets and bare
// delimiter-separated lines become unlabeled groups.
func (p *Parser) extractSkillBlocks(cur *cursor) []types.ContentBlock {
	lines := consumeUntilHeading(cur)

	var blocks []types.ContentBlock
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isBullet(line) {
			line = stripBullet(line)
		}

		category := ""
		if idx := strings.Index(line, ":"); idx > 0 && idx < 40 {
			category = strings.TrimSpace(line[:idx])
			line = strings.TrimSpace(line[idx+1:])
		}
		skills := splitSkillList(line)
		if len(skills) == 0 {
			continue
		}
		blocks = append(blocks, types.NewSkillGroupBlock(types.SkillGroup{
			Category: category,
			Skills:   skills,
		}))
	}
	return blocks
}

// splitSkillList splits a skill line on the common delimiters.
func splitSkillList(line string) []string {
	replaced := line
	for _, d := range []string{";", "|", "•", "·"} {
		replaced = strings.ReplaceAll(replaced, d, ",")
	}
	parts := strings.Split(replaced, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" && len(s) < 50 {
			skills = append(skills, s)
		}
	}
	return skills
}

// extractBulletListBlocks consumes a section as a flat bullet list, one item
// per bullet or non-empty line. Used for certifications and languages, where
// each line is one entry.
func (p *Parser) extractBulletListBlocks(cur *cursor) []types.ContentBlock {
	lines := consumeUntilHeading(cur)

	var bullets []types.BulletItem
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		bullets = append(bullets, types.BulletItem{
			Text:        stripBullet(line),
			IndentLevel: indentLevel(raw),
			Original:    line,
		})
	}
	if len(bullets) == 0 {
		return nil
	}
	return []types.ContentBlock{types.NewBulletListBlock(bullets)}
}

// extractGenericBlocks consumes a section into alternating text paragraphs
// and bullet lists, preserving order.
func (p *Parser) extractGenericBlocks(cur *cursor) []types.ContentBlock {
	lines := consumeUntilHeading(cur)

	var blocks []types.ContentBlock
	var paragraph []string
	var bullets []types.BulletItem

	flushParagraph := func() {
		if len(paragraph) > 0 {
			blocks = append(blocks, types.NewTextBlock(strings.Join(paragraph, " ")))
			paragraph = nil
		}
	}
	flushBullets := func() {
		if len(bullets) > 0 {
			blocks = append(blocks, types.NewBulletListBlock(bullets))
			bullets = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			flushParagraph()
			flushBullets()
		case isBullet(line):
			flushParagraph()
			bullets = append(bullets, types.BulletItem{
				Text:        stripBullet(line),
				IndentLevel: indentLevel(raw),
				Original:    line,
			})
		default:
			flushBullets()
			paragraph = append(paragraph, line)
		}
	}
	flushParagraph()
	flushBullets()
	return blocks
}

// indentLevel derives a coarse indent level from leading whitespace, two
// columns per level, tabs counting as one level.
func indentLevel(raw string) int {
	level := 0
	spaces := 0
	for _, r := range raw {
		switch r {
		case '\t':
			level++
		case ' ':
			spaces++
		default:
			return level + spaces/2
		}
	}
	return 0
}
