package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// lineKind is the classification of a single line of resume text.
type lineKind int

const (
	lineBlank lineKind = iota
	lineBullet
	lineDate
	lineHeading
	lineJobTitle
	lineText
)

// headingEntry maps a heading phrase to a section kind. Entries are ordered
// longest-first so contains-matching prefers the most specific phrase.
type headingEntry struct {
	phrase string
	kind   types.SectionKind
}

// sectionHeadings is the closed vocabulary of canonical section names. The
// phrases are contractual: downstream healing passes depend on which headings
// are recognized here and which fall through to custom sections.
var sectionHeadings = []headingEntry{
	{"professional certifications", types.SectionCertifications},
	{"licenses and certifications", types.SectionCertifications},
	{"certifications and licenses", types.SectionCertifications},
	{"professional experience", types.SectionExperience},
	{"community involvement", types.SectionVolunteer},
	{"contact information", types.SectionContact},
	{"personal information", types.SectionContact},
	{"hobbies and interests", types.SectionInterests},
	{"volunteer experience", types.SectionVolunteer},
	{"professional summary", types.SectionSummary},
	{"technical proficiencies", types.SectionSkills},
	{"relevant experience", types.SectionExperience},
	{"academic background", types.SectionEducation},
	{"employment history", types.SectionExperience},
	{"areas of expertise", types.SectionSkills},
	{"career objective", types.SectionObjective},
	{"executive summary", types.SectionSummary},
	{"personal projects", types.SectionProjects},
	{"awards and honors", types.SectionAwards},
	{"core competencies", types.SectionSkills},
	{"technical skills", types.SectionSkills},
	{"work experience", types.SectionExperience},
	{"career summary", types.SectionSummary},
	{"career history", types.SectionExperience},
	{"accomplishments", types.SectionAwards},
	{"certifications", types.SectionCertifications},
	{"work history", types.SectionExperience},
	{"competencies", types.SectionSkills},
	{"certificates", types.SectionCertifications},
	{"publications", types.SectionPublications},
	{"key projects", types.SectionProjects},
	{"volunteering", types.SectionVolunteer},
	{"key skills", types.SectionSkills},
	{"experience", types.SectionExperience},
	{"employment", types.SectionExperience},
	{"objective", types.SectionObjective},
	{"education", types.SectionEducation},
	{"academics", types.SectionEducation},
	{"interests", types.SectionInterests},
	{"volunteer", types.SectionVolunteer},
	{"languages", types.SectionLanguages},
	{"portfolio", types.SectionProjects},
	{"projects", types.SectionProjects},
	{"profile", types.SectionSummary},
	{"summary", types.SectionSummary},
	{"licenses", types.SectionCertifications},
	{"research", types.SectionPublications},
	{"training", types.SectionCertifications},
	{"expertise", types.SectionSkills},
	{"references", types.SectionReferences},
	{"about me", types.SectionSummary},
	{"contact", types.SectionContact},
	{"hobbies", types.SectionInterests},
	{"awards", types.SectionAwards},
	{"honors", types.SectionAwards},
	{"skills", types.SectionSkills},
	{"papers", types.SectionPublications},
}

// acronymHeadings is the allow-list of short all-caps tokens accepted as
// standalone section headings. Anything else that short is treated as text.
var acronymHeadings = map[string]struct{}{
	"IT":   {},
	"QA":   {},
	"HR":   {},
	"R&D":  {},
	"UX":   {},
	"AI":   {},
	"EDU":  {},
	"TECH": {},
}

// roleKeywordRe matches role words that mark an all-caps line as a job title
// acting as a heading. Word-bounded so LEADERSHIP does not match LEAD.
var roleKeywordRe = regexp.MustCompile(`\b(MANAGER|ENGINEER|DEVELOPER|DIRECTOR|ANALYST|CONSULTANT|SPECIALIST|COORDINATOR|ADMINISTRATOR|ARCHITECT|DESIGNER|SUPERVISOR|TECHNICIAN|OFFICER|EXECUTIVE|PRESIDENT|ASSISTANT|ASSOCIATE|REPRESENTATIVE|ACCOUNTANT|SCIENTIST|INTERN|LEAD|HEAD OF)\b`)

const (
	monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`
	datePattern  = `(?:` + monthPattern + `\.?,?\s+\d{4}|\d{1,2}/\d{4}|\d{4})`
	dashPattern  = `[-\x{2013}\x{2014}\x{2212}]` // hyphen, en dash, em dash, minus
	endPattern   = `(?:` + datePattern + `|Present|Current|Now)`
)

var (
	dateLineRe      = regexp.MustCompile(`(?i)^` + datePattern + `$`)
	dateRangeLineRe = regexp.MustCompile(`(?i)^` + datePattern + `\s*` + dashPattern + `\s*` + endPattern + `$`)
	dateRangeRe     = regexp.MustCompile(`(?i)` + datePattern + `\s*` + dashPattern + `\s*` + endPattern)
	dateTokenRe     = regexp.MustCompile(`(?i)` + datePattern)
	allCapsTokenRe  = regexp.MustCompile(`\b[A-Z]{2,}\b`)
)

// companyKeywordRe matches suffixes and words common in company names.
var companyKeywordRe = regexp.MustCompile(`(?i)\b(inc\.?|llc|llp|ltd\.?|corp\.?|corporation|company|co\.|group|technologies|technology|solutions|systems|software|consulting|partners|agency|studio|studios|labs|bank|enterprises|industries|holdings)\b`)

// institutionKeywordRe matches words common in school and university names.
var institutionKeywordRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic|seminary|conservatory)\b`)

// isBullet reports whether the line starts with a bullet marker (-, •, *).
func isBullet(line string) bool {
	t := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "• ", "* ", "·"} {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

// stripBullet removes the leading bullet marker and surrounding whitespace.
func stripBullet(line string) string {
	t := strings.TrimSpace(line)
	t = strings.TrimLeft(t, "-•*· ")
	return strings.TrimSpace(t)
}

// isDateLine reports whether the entire line is a single date or date range.
func isDateLine(line string) bool {
	t := strings.TrimSpace(line)
	return dateLineRe.MatchString(t) || dateRangeLineRe.MatchString(t)
}

// isDateRangeLine reports whether the entire line is a date range such as
// "June 2020 - Present" or "2015 – 2019".
func isDateRangeLine(line string) bool {
	return dateRangeLineRe.MatchString(strings.TrimSpace(line))
}

// containsDate reports whether the line contains a date token anywhere.
func containsDate(line string) bool {
	return dateTokenRe.MatchString(line)
}

// containsDateRange reports whether the line contains a date range anywhere.
func containsDateRange(line string) bool {
	return dateRangeRe.MatchString(line)
}

// isAllCaps reports whether the line's letters are all uppercase. Lines with
// no letters at all are not considered all caps.
func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// classifyHeading matches the line against the canonical section vocabulary.
// Exact matches (ignoring case and a trailing colon) win; for short lines a
// contains-match is accepted, longest phrase first.
func classifyHeading(line string) (types.SectionKind, bool) {
	t := strings.TrimSpace(line)
	hadColon := strings.HasSuffix(t, ":")
	t = strings.TrimSuffix(t, ":")
	t = strings.TrimSpace(t)
	if t == "" {
		return "", false
	}
	lower := strings.ToLower(t)

	for _, e := range sectionHeadings {
		if lower == e.phrase {
			return e.kind, true
		}
	}
	// Contains-matching is restricted to heading-shaped lines (short, and
	// either all caps or colon-terminated) so prose like "Experienced in
	// sales" never classifies as a heading.
	if len(t) < 40 && (isAllCaps(t) || hadColon) {
		for _, e := range sectionHeadings {
			if strings.Contains(lower, e.phrase) {
				return e.kind, true
			}
		}
	}
	return "", false
}

// isJobTitleHeading reports whether an all-caps line has the shape of a job
// title promoted to a heading: 15-80 characters and a role keyword. These
// lines segment as custom sections and are recovered by the consolidation
// pass later.
func isJobTitleHeading(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 15 || len(t) > 80 {
		return false
	}
	if !isAllCaps(t) {
		return false
	}
	if isDateLine(t) || isBullet(t) {
		return false
	}
	return roleKeywordRe.MatchString(t)
}

// isAcronymHeading reports whether the line is a short all-caps token from
// the acronym allow-list acting as a section heading.
func isAcronymHeading(line string) bool {
	t := strings.TrimSuffix(strings.TrimSpace(line), ":")
	_, ok := acronymHeadings[t]
	return ok
}

// isHeading reports whether the line starts a new section: a canonical
// section name, an allow-listed acronym, or a job-title-shaped all-caps line.
func isHeading(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || isBullet(t) || isDateLine(t) {
		return false
	}
	if _, ok := classifyHeading(t); ok {
		// Guard against prose that merely mentions a section word.
		return len(t) < 40 && !strings.HasSuffix(t, ".")
	}
	return isAcronymHeading(t) || isJobTitleHeading(t)
}

// looksLikeJobTitle reports whether a mixed-case line has the shape of a
// "Title - Company" job header: contains a dash or pipe separator, is not a
// date or bullet, is not overly long, is not period-terminated, and avoids
// excessive commas or clusters of acronyms.
func looksLikeJobTitle(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 5 || len(t) > 100 {
		return false
	}
	if isBullet(t) || isDateLine(t) {
		return false
	}
	if strings.HasSuffix(t, ".") {
		return false
	}
	if isAllCaps(t) {
		return false
	}
	hasSeparator := false
	for _, sep := range []string{" - ", " – ", " — ", " | ", "|"} {
		if strings.Contains(t, sep) {
			hasSeparator = true
			break
		}
	}
	if !hasSeparator {
		return false
	}
	if strings.Count(t, ",") > 2 {
		return false
	}
	if len(allCapsTokenRe.FindAllString(t, -1)) > 2 {
		return false
	}
	return true
}

// looksLikeCompanyName reports whether the line resembles a company name.
func looksLikeCompanyName(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || len(t) > 60 {
		return false
	}
	if isBullet(t) || isDateLine(t) || isHeading(t) {
		return false
	}
	return companyKeywordRe.MatchString(t)
}

// looksLikeInstitution reports whether the line resembles a school name.
func looksLikeInstitution(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || len(t) > 80 {
		return false
	}
	if isBullet(t) || isDateLine(t) {
		return false
	}
	return institutionKeywordRe.MatchString(t)
}

// classifyLine assigns the tagged line kind used by the normalizer and the
// format sub-parsers. Heading beats job title: an all-caps role line is a
// (custom) heading at segmentation time.
func classifyLine(line string) lineKind {
	t := strings.TrimSpace(line)
	switch {
	case t == "":
		return lineBlank
	case isBullet(t):
		return lineBullet
	case isDateLine(t):
		return lineDate
	case isHeading(t):
		return lineHeading
	case looksLikeJobTitle(t):
		return lineJobTitle
	default:
		return lineText
	}
}
