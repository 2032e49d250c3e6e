package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,2}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
	websiteRe  = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9-]+\.(?:com|io|dev|net|org|me)(?:/\S*)?\b`)
	locationRe = regexp.MustCompile(`^[A-Z][A-Za-z .'-]+,\s*(?:[A-Z]{2}|[A-Z][a-z]+)$`)
	nameWordRe = regexp.MustCompile(`^[A-Z][A-Za-z'.-]+$`)
)

const (
	contactWindowSize = 8   // lines scanned beneath an explicit contact heading
	contactScanLimit  = 20  // leading lines scanned by the second strategy
	contactDeepLimit  = 100 // lines scanned by the escalated fallback
)

// extractContact builds ContactInfo from the line array using three
// escalating strategies and returns the info plus the index one past the last
// matched leading contact line, which is where segmentation resumes.
func (p *Parser) extractContact(lines []string) (types.ContactInfo, int) {
	var info types.ContactInfo
	resumeAt := 0

	// Strategy 1: an explicit CONTACT / PERSONAL INFORMATION heading with a
	// bounded window of lines beneath it.
	for i := 0; i < len(lines) && i < 30; i++ {
		kind, ok := classifyHeading(lines[i])
		if !ok || kind != types.SectionContact {
			continue
		}
		end := i + 1 + contactWindowSize
		if end > len(lines) {
			end = len(lines)
		}
		for j := i + 1; j < end; j++ {
			if isHeading(lines[j]) {
				break
			}
			matched := fillContactFields(&info, lines[j])
			if info.Name == "" && looksLikeName(lines[j]) {
				info.Name = strings.TrimSpace(lines[j])
				matched = true
			}
			if matched && j+1 > resumeAt {
				resumeAt = j + 1
			}
		}
		break
	}

	// Strategy 2: scan the leading lines of the document for name, email,
	// phone and location shaped lines. The scan stops at the first section
	// heading: anything below it belongs to a section, and matching there
	// would drag the segmentation cursor past the heading.
	limit := contactScanLimit
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isHeading(line) {
			break
		}
		matched := fillContactFields(&info, line)
		if info.Name == "" && looksLikeName(line) {
			info.Name = line
			matched = true
		}
		if matched && i+1 > resumeAt {
			resumeAt = i + 1
		}
	}

	// Strategy 3: if phone or email is still missing, scan deeper, skipping
	// the line immediately after a known section heading so phone-shaped
	// numbers inside unrelated content are not picked up. Matches found here
	// never move the segmentation cursor.
	if info.Phone == "" || info.Email == "" {
		deep := contactDeepLimit
		if deep > len(lines) {
			deep = len(lines)
		}
		for i := 0; i < deep; i++ {
			if i > 0 && isHeading(lines[i-1]) {
				continue
			}
			line := strings.TrimSpace(lines[i])
			if info.Email == "" {
				info.Email = emailRe.FindString(line)
			}
			if info.Phone == "" {
				if m := phoneRe.FindString(line); m != "" && !containsDateRange(line) {
					info.Phone = strings.TrimSpace(m)
				}
			}
		}
	}

	return info, resumeAt
}

// fillContactFields scans one line for contact-shaped tokens, filling only
// fields that are still empty. First non-empty match per field wins.
func fillContactFields(info *types.ContactInfo, line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	matched := false
	if info.Email == "" {
		if m := emailRe.FindString(t); m != "" {
			info.Email = m
			matched = true
		}
	}
	if info.LinkedIn == "" {
		if m := linkedinRe.FindString(t); m != "" {
			info.LinkedIn = m
			matched = true
		}
	}
	if info.GitHub == "" {
		if m := githubRe.FindString(t); m != "" {
			info.GitHub = m
			matched = true
		}
	}
	if info.Phone == "" && !containsDateRange(t) {
		if m := phoneRe.FindString(t); m != "" {
			info.Phone = strings.TrimSpace(m)
			matched = true
		}
	}
	if info.Location == "" {
		// Contact lines often pack several fields with pipe separators;
		// the location check runs per segment.
		for _, seg := range strings.Split(t, "|") {
			seg = strings.TrimSpace(seg)
			if locationRe.MatchString(seg) && !looksLikeCompanyName(seg) {
				info.Location = seg
				matched = true
				break
			}
		}
	}
	if info.Website == "" && !strings.Contains(t, "@") &&
		!linkedinRe.MatchString(t) && !githubRe.MatchString(t) {
		if m := websiteRe.FindString(t); m != "" {
			info.Website = m
			matched = true
		}
	}
	return matched
}

// looksLikeName reports whether the line is 2-4 capitalized words with no
// digits or contact tokens, the usual shape of the candidate name line.
func looksLikeName(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || strings.ContainsAny(t, "@0123456789|/") {
		return false
	}
	if isBullet(t) || isHeading(t) {
		return false
	}
	words := strings.Fields(t)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !nameWordRe.MatchString(w) {
			return false
		}
	}
	return true
}
