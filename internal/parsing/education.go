package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// degreeKeywordRe marks the start of a new education entry.
var degreeKeywordRe = regexp.MustCompile(`(?i)\b(bachelor|master|ph\.?d|doctorate|associate|diploma|b\.?s\.?c?|b\.?a\.?|b\.?e\.?|m\.?s\.?c?|m\.?a\.?|m\.?eng|mba)\b`)

// gpaRe extracts a GPA value, with or without a scale suffix.
var gpaRe = regexp.MustCompile(`(?i)\bgpa[:\s]*([0-9]\.[0-9]{1,2}(?:\s*/\s*[0-9]\.?[0-9]?)?)`)

// extractEducationBlocks consumes an education section into education items.
// A new item starts at a degree-keyword line; institution, dates, GPA and
// achievement bullets attach to the current item as they appear.
func (p *Parser) extractEducationBlocks(cur *cursor) []types.ContentBlock {
	lines := consumeUntilHeading(cur)

	var items []types.EducationItem
	var item *types.EducationItem

	flush := func() {
		if item != nil {
			items = append(items, *item)
			item = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case !isBullet(line) && degreeKeywordRe.MatchString(line):
			// Institution-first layouts open an item before the degree line
			// arrives; attach rather than starting a new entry.
			if item == nil || item.Degree != "" {
				flush()
				item = &types.EducationItem{}
			}
			parseDegreeLine(item, line)
		case item == nil && looksLikeInstitution(line):
			item = &types.EducationItem{}
			item.Institution, item.Location = splitCompanyLocation(line)
		case item != nil && item.Institution == "" && looksLikeInstitution(line):
			item.Institution, item.Location = splitCompanyLocation(line)
		case item != nil && isBullet(line):
			item.Achievements = append(item.Achievements, stripBullet(line))
		case item != nil && (containsDate(line) || gpaRe.MatchString(line)):
			if item.GraduationDate == "" && containsDate(line) {
				attachEducationDate(item, line)
			}
			if item.GPA == "" {
				if m := gpaRe.FindStringSubmatch(line); m != nil {
					item.GPA = m[1]
				}
			}
		}
	}
	flush()

	blocks := make([]types.ContentBlock, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, types.NewEducationBlock(it))
	}
	return blocks
}

// parseDegreeLine pulls degree, field of study, graduation date and GPA out
// of a single degree line like
// "Bachelor of Science in Computer Science, May 2019, GPA: 3.8".
func parseDegreeLine(item *types.EducationItem, line string) {
	rest := line
	if m := gpaRe.FindStringSubmatch(rest); m != nil {
		item.GPA = m[1]
		rest = strings.Replace(rest, m[0], "", 1)
	}
	if m := dateRangeRe.FindString(rest); m != "" {
		_, end := splitDateRange(m)
		item.GraduationDate = end
		rest = strings.Replace(rest, m, "", 1)
	} else if m := dateTokenRe.FindString(rest); m != "" {
		item.GraduationDate = m
		rest = strings.Replace(rest, m, "", 1)
	}
	rest = strings.Trim(rest, " ,;-–—|")

	// "Degree in Field" splits on the first " in "; otherwise a comma
	// separates degree from field.
	if idx := strings.Index(strings.ToLower(rest), " in "); idx > 0 {
		item.Degree = strings.TrimSpace(rest[:idx])
		item.Field = strings.Trim(rest[idx+4:], " ,;")
		return
	}
	if idx := strings.Index(rest, ","); idx > 0 {
		item.Degree = strings.TrimSpace(rest[:idx])
		item.Field = strings.Trim(rest[idx+1:], " ,;")
		return
	}
	item.Degree = rest
}

// attachEducationDate records the graduation date from a standalone date or
// date-range line; for ranges the end date is the graduation.
func attachEducationDate(item *types.EducationItem, line string) {
	if m := dateRangeRe.FindString(line); m != "" {
		_, end := splitDateRange(m)
		item.GraduationDate = end
		return
	}
	if m := dateTokenRe.FindString(line); m != "" {
		item.GraduationDate = m
	}
}
