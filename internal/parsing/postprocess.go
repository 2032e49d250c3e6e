package parsing

import (
	"log"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// postProcess runs the fixed-order healing passes over the assembled section
// list. Order is contractual: consolidation must precede deduplication so
// recovered job sections become experience items before kind-merging could
// swallow them. Every pass is idempotent.
func (p *Parser) postProcess(sections []types.Section, rawLines []string) []types.Section {
	sections = p.mergeSplitSections(sections)
	sections = p.consolidateOrphanedExperience(sections, rawLines)
	sections = p.dedupeSections(sections)
	sections = reorderSections(sections)
	return sections
}

// mergeSplitSections heals the common page-break split of
// "PROFESSIONAL CERTIFICATIONS" / "AND TRAINING": an empty certifications
// section absorbs the content of an immediately following TRAINING section.
func (p *Parser) mergeSplitSections(sections []types.Section) []types.Section {
	out := make([]types.Section, 0, len(sections))
	for i := 0; i < len(sections); i++ {
		sec := sections[i]
		if sec.Kind == types.SectionCertifications && len(sec.Blocks) == 0 &&
			i+1 < len(sections) &&
			strings.Contains(strings.ToUpper(sections[i+1].Heading), "TRAINING") {
			sec.Blocks = sections[i+1].Blocks
			if p.opts.Verbose {
				log.Printf("merged split section %q into %q", sections[i+1].Heading, sec.Heading)
			}
			i++
		}
		out = append(out, sec)
	}
	return out
}

// consolidateOrphanedExperience recovers job entries that segmented as their
// own sections: a custom section whose all-caps heading has the job-title
// shape is re-parsed directly from the raw line array (the section's captured
// content may be incomplete, so the already-sectioned data is deliberately
// bypassed) and appended to the experience section.
func (p *Parser) consolidateOrphanedExperience(sections []types.Section, rawLines []string) []types.Section {
	var recovered []types.ExperienceItem
	out := make([]types.Section, 0, len(sections))

	for _, sec := range sections {
		if sec.Kind != types.SectionCustom || !isJobTitleHeading(sec.Heading) {
			out = append(out, sec)
			continue
		}
		if _, known := classifyHeading(sec.Heading); known {
			out = append(out, sec)
			continue
		}
		item := p.recoverItemFromRawLines(rawLines, sec.Heading)
		if item == nil {
			out = append(out, sec)
			continue
		}
		if p.opts.Verbose {
			log.Printf("consolidated orphaned experience section %q", sec.Heading)
		}
		recovered = append(recovered, *item)
	}

	if len(recovered) == 0 {
		return out
	}

	// Append to the experience section, creating one if absent.
	expIdx := -1
	for i := range out {
		if out[i].Kind == types.SectionExperience {
			expIdx = i
			break
		}
	}
	if expIdx < 0 {
		out = append(out, types.NewSection(types.SectionExperience, "Experience"))
		expIdx = len(out) - 1
	}
	for _, item := range recovered {
		out[expIdx].Blocks = append(out[expIdx].Blocks, types.NewExperienceBlock(item))
	}
	return out
}

// recoverItemFromRawLines locates the orphaned heading in the raw line array
// and parses a fresh experience item from that location with the same date,
// company and achievement heuristics as the experience sub-parsers.
func (p *Parser) recoverItemFromRawLines(rawLines []string, heading string) *types.ExperienceItem {
	idx := -1
	for i, line := range rawLines {
		if strings.TrimSpace(line) == strings.TrimSpace(heading) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	item := &types.ExperienceItem{Title: strings.TrimSpace(heading)}
	var desc []string
	for i := idx + 1; i < len(rawLines); i++ {
		line := strings.TrimSpace(rawLines[i])
		if line == "" {
			continue
		}
		if isHeading(line) {
			break
		}
		switch {
		case isBullet(line):
			item.Achievements = append(item.Achievements, stripBullet(line))
		case containsDateRange(line) && item.StartDate == "":
			m := dateRangeRe.FindString(line)
			item.StartDate, item.EndDate = splitDateRange(m)
			rest := strings.Trim(strings.Replace(line, m, "", 1), " ,|-–—")
			if rest != "" && item.Company == "" {
				item.Company, item.Location = splitCompanyLocation(rest)
			}
		case looksLikeCompanyName(line) && item.Company == "":
			item.Company, item.Location = splitCompanyLocation(line)
		default:
			desc = append(desc, line)
		}
	}
	item.Description = strings.Join(desc, " ")
	return item
}

// dedupeSections enforces at most one section per kind: content of later
// duplicates is appended into the earliest occurrence.
func (p *Parser) dedupeSections(sections []types.Section) []types.Section {
	firstByKind := make(map[types.SectionKind]int)
	out := make([]types.Section, 0, len(sections))

	for _, sec := range sections {
		if idx, seen := firstByKind[sec.Kind]; seen {
			out[idx].Blocks = append(out[idx].Blocks, sec.Blocks...)
			if p.opts.Verbose {
				log.Printf("deduplicated %s section %q into earlier occurrence", sec.Kind, sec.Heading)
			}
			continue
		}
		firstByKind[sec.Kind] = len(out)
		out = append(out, sec)
	}
	return out
}

// reorderSections sorts sections into the canonical resume order and
// reassigns contiguous order indices. The sort is stable so equal-ranked
// sections keep their relative order; references always rank last.
func reorderSections(sections []types.Section) []types.Section {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Kind.Rank() < sections[j].Kind.Rank()
	})
	for i := range sections {
		sections[i].Order = i
	}
	return sections
}
