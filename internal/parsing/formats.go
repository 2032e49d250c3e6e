package parsing

import "strings"

// experienceFormat is the detected layout of an experience block. Exhaustive
// switching over this enum is how every new layout case stays handled at each
// dispatch site.
type experienceFormat int

const (
	formatTraditional experienceFormat = iota
	formatInlinePipe
	formatDateFirst
	formatCompanyHeaders
	formatFunctional
	formatBulletJobs
	formatHybrid
)

func (f experienceFormat) String() string {
	switch f {
	case formatInlinePipe:
		return "inline-pipe"
	case formatDateFirst:
		return "date-first"
	case formatCompanyHeaders:
		return "company-headers"
	case formatFunctional:
		return "functional"
	case formatBulletJobs:
		return "bullet-jobs"
	case formatHybrid:
		return "hybrid"
	default:
		return "traditional"
	}
}

// Detection thresholds. These were tuned empirically on sample resumes and
// are kept in one place so retuning stays a one-line change.
const (
	formatSampleSize       = 50
	formatSignalMin        = 2
	functionalDensityFloor = 0.6
)

// formatSignals holds the per-signature counts computed over the sample
// window of an experience block.
type formatSignals struct {
	pipe          int
	dateFirst     int
	bareDate      int
	bulletJob     int
	companyHeader int
	traditional   int
	bulletDensity float64
}

// distinctSignals counts how many signature families cleared the minimum.
func (s formatSignals) distinctSignals() int {
	n := 0
	for _, c := range []int{s.pipe, s.dateFirst, s.bareDate, s.bulletJob, s.companyHeader} {
		if c >= formatSignalMin {
			n++
		}
	}
	return n
}

// detectExperienceFormat classifies the layout of an experience block from
// its first lines. Detection is pure: the same input always yields the same
// classification. An unclassifiable block falls back to traditional rather
// than failing.
func (p *Parser) detectExperienceFormat(lines []string) experienceFormat {
	s := countFormatSignals(lines)

	noOtherSignal := s.pipe == 0 && s.dateFirst == 0 && s.bareDate == 0 &&
		s.bulletJob == 0 && s.companyHeader == 0

	switch {
	case s.bulletDensity > functionalDensityFloor && noOtherSignal:
		return formatFunctional
	case s.pipe >= formatSignalMin && s.pipe > s.bulletJob && s.pipe > s.bareDate:
		return formatInlinePipe
	case s.dateFirst >= formatSignalMin && s.dateFirst >= s.pipe && s.dateFirst > s.companyHeader:
		return formatDateFirst
	case s.companyHeader >= formatSignalMin:
		return formatCompanyHeaders
	case s.distinctSignals() >= 2:
		return formatHybrid
	case s.bulletJob >= formatSignalMin:
		return formatBulletJobs
	default:
		return formatTraditional
	}
}

// countFormatSignals computes the six layout signature counts plus the bullet
// density over the first formatSampleSize lines of the block.
func countFormatSignals(lines []string) formatSignals {
	sample := lines
	if len(sample) > formatSampleSize {
		sample = sample[:formatSampleSize]
	}

	var s formatSignals
	nonEmpty := 0
	bullets := 0

	for i, line := range sample {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		nonEmpty++

		next := ""
		if i+1 < len(sample) {
			next = strings.TrimSpace(sample[i+1])
		}
		prev := ""
		if i > 0 {
			prev = strings.TrimSpace(sample[i-1])
		}

		if isBullet(t) {
			bullets++
			if isBulletJobLine(t) {
				s.bulletJob++
			}
			continue
		}

		if isDateRangeLine(t) {
			atBoundary := i == 0 || prev == "" || isBullet(prev)
			switch {
			case atBoundary && next != "" && !isBullet(next) && !isDateLine(next):
				s.dateFirst++
			case atBoundary:
				// No adjacent title on either side: the title and company
				// will have to be inferred later.
				s.bareDate++
			}
			continue
		}

		if strings.Count(t, "|") >= 2 {
			s.pipe++
			continue
		}

		if isCompanyHeaderLine(t) && next != "" && !isBullet(next) && !isDateLine(next) {
			s.companyHeader++
			continue
		}

		// Traditional two-line sequence: a mixed-case title-ish line followed
		// by a company line or a date line.
		if !isAllCaps(t) && (prev == "" || isBullet(prev) || i == 0) &&
			(looksLikeCompanyName(next) || isDateLine(next) || containsDateRange(next)) {
			s.traditional++
		}
	}

	if nonEmpty > 0 {
		s.bulletDensity = float64(bullets) / float64(nonEmpty)
	}
	return s
}

// isBulletJobLine reports whether a bullet embeds a whole job in prose, in
// the shape "As Title at Company (dates), ...".
func isBulletJobLine(line string) bool {
	m := bulletJobRe.FindStringSubmatch(stripBullet(line))
	if m == nil {
		return false
	}
	return containsDate(m[3])
}

// isCompanyHeaderLine reports whether an all-caps short line is a candidate
// company header: no date, no bullet, and no role keyword (a role keyword
// would make it a job-title heading instead).
func isCompanyHeaderLine(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 2 || len(t) > 40 {
		return false
	}
	if !isAllCaps(t) || isDateLine(t) || isBullet(t) || containsDate(t) {
		return false
	}
	return !roleKeywordRe.MatchString(t)
}
