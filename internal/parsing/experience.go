package parsing

import (
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// traditionalLookahead bounds how far the traditional parser searches
	// for the line that actually carries the date pattern.
	traditionalLookahead = 5
	// maxBlankSkip bounds blank-line skipping while hunting the
	// date-plus-location line.
	maxBlankSkip = 2
)

// bulletJobRe matches a bullet that embeds a whole job in prose:
// "As Title at Company (dates): description". Applied after the bullet
// marker is stripped.
var bulletJobRe = regexp.MustCompile(`(?i)^(?:as\s+an?\s+|as\s+)?(.+?)\s+(?:at|with|for)\s+(.+?)\s*\((.+?)\)\s*[:,.]?\s*(.*)$`)

// possessiveCompanyRe matches a possessive company mention ("Acme's ...").
var possessiveCompanyRe = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})['\x{2019}]s\b`)

// prepositionCompanyRe matches an "at/for/with Company" mention.
var prepositionCompanyRe = regexp.MustCompile(`\b(?:at|for|with)\s+([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})`)

// dashSplitRe splits a date range on any dash variant.
var dashSplitRe = regexp.MustCompile(dashPattern)

// verbTitles maps a leading achievement action verb to an inferred job title
// for entries that carried no title of their own.
var verbTitles = map[string]string{
	"managed":      "Manager",
	"led":          "Team Lead",
	"developed":    "Developer",
	"engineered":   "Engineer",
	"designed":     "Designer",
	"analyzed":     "Analyst",
	"coordinated":  "Coordinator",
	"administered": "Administrator",
	"directed":     "Director",
	"consulted":    "Consultant",
	"architected":  "Architect",
	"supervised":   "Supervisor",
	"taught":       "Instructor",
}

// extractExperienceBlocks consumes the lines of an experience section,
// detects the block's layout, dispatches to the format-specific sub-parser
// and wraps the resulting items as content blocks.
func (p *Parser) extractExperienceBlocks(cur *cursor) []types.ContentBlock {
	lines := consumeUntilHeading(cur)
	items := p.parseExperienceItems(lines)

	blocks := make([]types.ContentBlock, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, types.NewExperienceBlock(item))
	}
	return blocks
}

// parseExperienceItems runs format detection and the matching sub-parser
// over a block's lines, then applies the enrichment and deduplication passes.
func (p *Parser) parseExperienceItems(lines []string) []types.ExperienceItem {
	format := p.detectExperienceFormat(lines)
	if p.opts.Verbose {
		log.Printf("experience block: detected %s format across %d lines", format, len(lines))
	}

	var items []types.ExperienceItem
	switch format {
	case formatFunctional:
		items = p.parseFunctionalBlock(lines)
	case formatCompanyHeaders:
		items = p.parseCompanyHeaderItems(lines)
	default:
		bc := newCursor(lines)
		for !bc.done() {
			start := bc.pos
			var item *types.ExperienceItem
			switch format {
			case formatInlinePipe:
				item = p.parseInlinePipeItem(bc)
			case formatDateFirst:
				item = p.parseDateFirstItem(bc)
			case formatBulletJobs:
				item = p.parseBulletJobItem(bc)
			case formatTraditional, formatHybrid:
				item = p.parseTraditionalItem(bc)
			}
			if item != nil {
				items = append(items, *item)
			}
			if bc.pos == start {
				// Unrecognized line: advance exactly one line so the loop
				// always makes forward progress.
				bc.advance()
			}
		}
	}

	items = p.inferMissingTitles(items)
	items = p.inferMissingCompanies(items)
	return p.dedupeExperienceItems(items)
}

// consumeUntilHeading collects lines from the cursor up to (not including)
// the next section heading, advancing the cursor to that heading.
func consumeUntilHeading(cur *cursor) []string {
	var lines []string
	for !cur.done() && !isHeading(cur.current()) {
		lines = append(lines, cur.raw(0))
		cur.advance()
	}
	// Trim trailing blank lines; they belong to no block.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseInlinePipeItem parses one "Title | Company | Dates" entry plus its
// trailing bullets and description lines.
func (p *Parser) parseInlinePipeItem(cur *cursor) *types.ExperienceItem {
	cur.skipBlank()
	if cur.done() {
		return nil
	}
	line := cur.current()
	if strings.Count(line, "|") < 2 {
		return nil
	}

	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	item := &types.ExperienceItem{}
	var fields []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		if containsDate(part) && item.StartDate == "" {
			item.StartDate, item.EndDate = splitDateRange(part)
			continue
		}
		fields = append(fields, part)
	}
	if len(fields) > 0 {
		item.Title = fields[0]
	}
	if len(fields) > 1 {
		item.Company = fields[1]
	}
	if len(fields) > 2 {
		item.Location = fields[2]
	}
	cur.advance()

	// Bullets become achievements; stray prose becomes the description.
	var desc []string
	for !cur.done() {
		next := cur.current()
		if next == "" {
			cur.advance()
			// A blank line followed by another pipe entry ends this item.
			if strings.Count(cur.current(), "|") >= 2 {
				break
			}
			continue
		}
		if strings.Count(next, "|") >= 2 {
			break
		}
		if isBullet(next) {
			item.Achievements = append(item.Achievements, stripBullet(next))
			cur.advance()
			continue
		}
		desc = append(desc, next)
		cur.advance()
	}
	item.Description = strings.Join(desc, " ")
	return item
}

// parseDateFirstItem parses a date-range line, then the title line, then an
// optional company/location line, then bullets.
func (p *Parser) parseDateFirstItem(cur *cursor) *types.ExperienceItem {
	cur.skipBlank()
	if cur.done() || !isDateRangeLine(cur.current()) {
		return nil
	}

	item := &types.ExperienceItem{}
	item.StartDate, item.EndDate = splitDateRange(cur.current())
	cur.advance()
	cur.skipBlank()

	if !cur.done() && !isBullet(cur.current()) && !isDateLine(cur.current()) {
		item.Title = strings.TrimSpace(cur.current())
		cur.advance()
	}
	if !cur.done() && !isBullet(cur.current()) && !isDateLine(cur.current()) && cur.current() != "" {
		item.Company, item.Location = splitCompanyLocation(cur.current())
		cur.advance()
	}

	var desc []string
	for !cur.done() {
		next := cur.current()
		if next == "" {
			cur.advance()
			continue
		}
		if isDateRangeLine(next) {
			break
		}
		if isBullet(next) {
			item.Achievements = append(item.Achievements, stripBullet(next))
			cur.advance()
			continue
		}
		// Non-bulleted prose after the header lines: position summary,
		// unless it starts the next entry.
		if len(item.Achievements) > 0 {
			break
		}
		desc = append(desc, next)
		cur.advance()
	}
	item.Description = strings.Join(desc, " ")
	return item
}

// parseCompanyHeaderItems handles blocks where the company is an all-caps
// header with one or more jobs nested beneath it. Every nested item gets the
// header text as its company, verbatim.
func (p *Parser) parseCompanyHeaderItems(lines []string) []types.ExperienceItem {
	var items []types.ExperienceItem
	var item *types.ExperienceItem
	company := ""

	flush := func() {
		if item != nil {
			items = append(items, *item)
			item = nil
		}
	}

	cur := newCursor(lines)
	for !cur.done() {
		line := cur.current()
		cur.advance()
		if line == "" {
			continue
		}
		if isCompanyHeaderLine(line) {
			flush()
			company = line
			continue
		}
		if isBullet(line) {
			if item != nil {
				item.Achievements = append(item.Achievements, stripBullet(line))
			}
			continue
		}
		if isDateRangeLine(line) {
			if item != nil && item.StartDate == "" {
				item.StartDate, item.EndDate = splitDateRange(line)
			}
			continue
		}
		// A title line, possibly with an embedded date.
		flush()
		item = &types.ExperienceItem{Company: company}
		title := line
		if m := dateRangeRe.FindString(line); m != "" {
			item.StartDate, item.EndDate = splitDateRange(m)
			title = strings.TrimSpace(strings.Replace(line, m, "", 1))
			title = strings.Trim(title, " -–—|,")
		}
		item.Title = title
	}
	flush()
	return items
}

// parseFunctionalBlock aggregates a skills-grouped narrative into one
// synthetic experience item: functional resumes describe capability areas,
// not discrete jobs.
func (p *Parser) parseFunctionalBlock(lines []string) []types.ExperienceItem {
	item := types.ExperienceItem{Title: "Professional Experience"}
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" || !isBullet(t) {
			continue
		}
		item.Achievements = append(item.Achievements, stripBullet(t))
	}
	if len(item.Achievements) == 0 {
		return nil
	}
	return []types.ExperienceItem{item}
}

// parseBulletJobItem parses a single bullet of the form
// "Title at Company (dates): description" into one item.
func (p *Parser) parseBulletJobItem(cur *cursor) *types.ExperienceItem {
	cur.skipBlank()
	if cur.done() || !isBullet(cur.current()) {
		return nil
	}
	text := stripBullet(cur.current())
	m := bulletJobRe.FindStringSubmatch(text)
	if m == nil || !containsDate(m[3]) {
		return nil
	}
	cur.advance()

	item := &types.ExperienceItem{
		Title:       strings.TrimSpace(m[1]),
		Company:     strings.TrimSpace(m[2]),
		Description: strings.TrimSpace(m[4]),
	}
	item.StartDate, item.EndDate = splitDateRange(m[3])
	return item
}

// parseTraditionalItem is the most elaborate sub-parser: bounded lookahead
// for the date-carrying header, separator splitting for title and company,
// then scans for a late company line, a date-plus-location line, a free-text
// position summary, and achievement bullets.
func (p *Parser) parseTraditionalItem(cur *cursor) *types.ExperienceItem {
	cur.skipBlank()
	if cur.done() {
		return nil
	}

	item := &types.ExperienceItem{}

	// Locate the line that actually carries a date pattern, skipping
	// intervening description lines, within the lookahead bound.
	dateOffset := -1
	for off := 0; off < traditionalLookahead; off++ {
		line := cur.peek(off)
		if line == "" && off > 0 {
			break
		}
		if isBullet(line) {
			break
		}
		if containsDate(line) {
			dateOffset = off
			break
		}
	}

	header := cur.current()
	switch {
	case dateOffset == 0 && !headerCarriesDate(header):
		// Bare date entry: no title on the header line; enrichment infers
		// one later from the achievements. Any non-date residue is a
		// location ("June 2020 - Present | NYC").
		if m := dateRangeRe.FindString(header); m != "" {
			item.StartDate, item.EndDate = splitDateRange(m)
		} else {
			item.StartDate, item.EndDate = splitDateRange(header)
		}
		if rest := dateResidue(header); rest != "" {
			item.Location = rest
		}
		cur.advance()
	case dateOffset >= 0 && headerCarriesDate(cur.peek(dateOffset)):
		// The date-carrying line also carries the title; anything before it
		// is a leading description.
		header = cur.peek(dateOffset)
		if m := dateRangeRe.FindString(header); m != "" {
			item.StartDate, item.EndDate = splitDateRange(m)
			header = strings.TrimSpace(strings.Replace(header, m, "", 1))
			header = strings.Trim(header, " -–—|,")
		}
		item.Title, item.Company = splitTitleCompany(header)
		var lead []string
		for off := 0; off < dateOffset; off++ {
			if l := cur.peek(off); l != "" {
				lead = append(lead, l)
			}
		}
		if len(lead) > 0 && item.Title == "" {
			item.Title, item.Company = splitTitleCompany(lead[0])
			lead = lead[1:]
		}
		item.Description = strings.Join(lead, " ")
		cur.advanceBy(dateOffset + 1)
	default:
		// The first line is the title header; the date (if any) sits on a
		// following line of its own.
		if isBullet(header) || isHeading(header) {
			return nil
		}
		item.Title, item.Company = splitTitleCompany(header)
		cur.advance()
	}

	// Company line and date-plus-location line, in either order, within a
	// short window below the header. Up to two blank lines may intervene.
	blanks := 0
	for (item.Company == "" || item.StartDate == "") && !cur.done() {
		line := cur.current()
		if line == "" {
			if blanks >= maxBlankSkip {
				break
			}
			blanks++
			cur.advance()
			continue
		}
		if isBullet(line) || isHeading(line) {
			break
		}
		if item.StartDate == "" && containsDateRange(line) {
			m := dateRangeRe.FindString(line)
			item.StartDate, item.EndDate = splitDateRange(m)
			rest := strings.Trim(strings.Replace(line, m, "", 1), " ,|-–—")
			if rest != "" && item.Location == "" {
				item.Location = rest
			}
			cur.advance()
			continue
		}
		if item.Company == "" && looksLikeCompanyName(line) {
			company, loc := splitCompanyLocation(line)
			item.Company = company
			if loc != "" && item.Location == "" {
				item.Location = loc
			}
			cur.advance()
			continue
		}
		break
	}

	// Free-text position summary: accumulate until a bullet, heading, or
	// next-job-title pattern.
	var desc []string
	for !cur.done() {
		line := cur.current()
		if line == "" {
			// Blank line: stop if what follows starts a new entry.
			if nxt := cur.peek(1); looksLikeJobTitle(nxt) || isDateRangeLine(nxt) || isHeading(nxt) {
				cur.advance()
				return finishItem(item, desc)
			}
			cur.advance()
			continue
		}
		if isBullet(line) || isHeading(line) || achievementsLabelRe.MatchString(line) {
			break
		}
		if looksLikeJobTitle(line) || isDateRangeLine(line) || containsDateRange(line) {
			return finishItem(item, desc)
		}
		desc = append(desc, line)
		cur.advance()
	}

	// Achievement bullets. A bare "ACHIEVEMENTS" label is a list label, not
	// content, and is skipped.
	for !cur.done() {
		line := cur.current()
		if line == "" {
			cur.advance()
			if nxt := cur.current(); !isBullet(nxt) && !achievementsLabelRe.MatchString(nxt) {
				break
			}
			continue
		}
		if achievementsLabelRe.MatchString(line) {
			cur.advance()
			continue
		}
		if !isBullet(line) {
			break
		}
		item.Achievements = append(item.Achievements, stripBullet(line))
		cur.advance()
	}

	return finishItem(item, desc)
}

// headerCarriesDate reports whether a date-carrying line also carries title
// text: there is non-date residue and the residue is not just a location.
func headerCarriesDate(line string) bool {
	rest := dateResidue(line)
	return rest != "" && !locationRe.MatchString(rest)
}

// dateResidue returns what remains of a line after removing its first date
// range (or single date token) and surrounding separators.
func dateResidue(line string) string {
	m := dateRangeRe.FindString(line)
	if m == "" {
		m = dateTokenRe.FindString(line)
	}
	if m == "" {
		return strings.TrimSpace(line)
	}
	rest := strings.Replace(line, m, "", 1)
	return strings.Trim(rest, " ,|-–—")
}

// finishItem attaches the accumulated description and rejects items that
// extracted nothing at all.
func finishItem(item *types.ExperienceItem, desc []string) *types.ExperienceItem {
	if item.Description == "" {
		item.Description = strings.Join(desc, " ")
	} else if len(desc) > 0 {
		item.Description = item.Description + " " + strings.Join(desc, " ")
	}
	if item.Title == "" && item.Company == "" && item.StartDate == "" &&
		item.Description == "" && len(item.Achievements) == 0 {
		return nil
	}
	return item
}

// splitTitleCompany splits a header line on dash or pipe separators into
// title and company.
func splitTitleCompany(header string) (title, company string) {
	t := strings.TrimSpace(header)
	if t == "" {
		return "", ""
	}
	for _, sep := range []string{" | ", " - ", " – ", " — ", " at ", ", "} {
		if idx := strings.Index(t, sep); idx > 0 {
			title = strings.TrimSpace(t[:idx])
			company = strings.TrimSpace(t[idx+len(sep):])
			return title, company
		}
	}
	return t, ""
}

// splitCompanyLocation separates "Company | City, ST" or "Company, City, ST"
// into company and location.
func splitCompanyLocation(line string) (company, location string) {
	t := strings.TrimSpace(line)
	if idx := strings.Index(t, " | "); idx > 0 {
		return strings.TrimSpace(t[:idx]), strings.TrimSpace(t[idx+3:])
	}
	if idx := strings.Index(t, ", "); idx > 0 {
		rest := strings.TrimSpace(t[idx+2:])
		if locationRe.MatchString(rest) || len(strings.Fields(rest)) <= 3 {
			return strings.TrimSpace(t[:idx]), rest
		}
	}
	return t, ""
}

// splitDateRange splits a date range string into start and end, normalizing
// the casing of "Present". A single date becomes the start with an unknown
// end.
func splitDateRange(s string) (start, end string) {
	t := strings.TrimSpace(s)
	if m := dateRangeRe.FindString(t); m != "" {
		t = m
	}
	parts := dashSplitRe.Split(t, 2)
	if len(parts) == 2 {
		start = strings.TrimSpace(parts[0])
		end = strings.TrimSpace(parts[1])
		switch strings.ToLower(end) {
		case "present", "current", "now":
			end = "Present"
		}
		return start, end
	}
	return t, ""
}

// inferMissingTitles guesses a title for items that have none, from the first
// achievement's leading action verb, or failing that its first clause.
func (p *Parser) inferMissingTitles(items []types.ExperienceItem) []types.ExperienceItem {
	for i := range items {
		if items[i].Title != "" || len(items[i].Achievements) == 0 {
			continue
		}
		first := items[i].Achievements[0]
		words := strings.Fields(first)
		if len(words) == 0 {
			continue
		}
		verb := strings.ToLower(strings.Trim(words[0], ",.;:"))
		if title, ok := verbTitles[verb]; ok {
			items[i].Title = title
			continue
		}
		clause := first
		if idx := strings.IndexAny(clause, ",;"); idx > 0 {
			clause = clause[:idx]
		}
		if w := strings.Fields(clause); len(w) > 8 {
			clause = strings.Join(w[:8], " ")
		}
		items[i].Title = strings.TrimSpace(clause)
	}
	return items
}

// inferMissingCompanies guesses a company for items that have none from the
// achievement text, preferring a possessive mention ("Acme's platform") over
// an "at/for/with Acme" mention.
func (p *Parser) inferMissingCompanies(items []types.ExperienceItem) []types.ExperienceItem {
	for i := range items {
		if items[i].Company != "" {
			continue
		}
		var fallback string
		for _, a := range items[i].Achievements {
			if name := possessiveCompany(a); name != "" {
				items[i].Company = name
				break
			}
			if fallback == "" {
				if m := prepositionCompanyRe.FindStringSubmatch(a); m != nil {
					fallback = strings.TrimSpace(m[1])
				}
			}
		}
		if items[i].Company == "" && fallback != "" {
			items[i].Company = fallback
		}
	}
	return items
}

// possessiveCompany extracts a possessive company mention from achievement
// text. Achievements open with a capitalized action verb, so a capture that
// starts the text and spans several words drops its first word: "Rebuilt
// Acme's platform" names Acme, not "Rebuilt Acme". A single-word capture at
// the start is kept whole ("Acme's revenue doubled").
func possessiveCompany(text string) string {
	m := possessiveCompanyRe.FindStringSubmatchIndex(text)
	if m == nil {
		return ""
	}
	name := text[m[2]:m[3]]
	if m[2] == 0 {
		words := strings.Fields(name)
		if len(words) > 1 {
			name = strings.Join(words[1:], " ")
		}
	}
	return strings.TrimSpace(name)
}

// dedupeExperienceItems drops items whose case-folded
// (title, company, start, end) tuple repeats exactly.
func (p *Parser) dedupeExperienceItems(items []types.ExperienceItem) []types.ExperienceItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		key := item.DedupeKey()
		if _, dup := seen[key]; dup {
			if p.opts.Verbose {
				log.Printf("duplicate job detected and removed: %s at %s", item.Title, item.Company)
			}
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
