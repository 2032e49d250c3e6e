package parsing

import (
	"regexp"
	"strings"
)

// NormalizerOptions toggles the individual repair passes applied before
// segmentation. Each pass is idempotent; their relative order is load-bearing
// (date-range merging before inline-date splitting before sentence merging
// before paragraph-to-bullet splitting) because running them out of order
// reintroduces the artifacts each step removes.
type NormalizerOptions struct {
	StripPageArtifacts    bool
	MergeSplitDateRanges  bool
	SplitInlineDates      bool
	MergeBrokenSentences  bool
	BulletizeAchievements bool
	SplitGluedHeadings    bool
}

// defaultNormalizerOptions enables every pass; page-artifact stripping is
// only useful for PDF-extracted text and is gated on the source flag.
func defaultNormalizerOptions(fromPDF bool) NormalizerOptions {
	return NormalizerOptions{
		StripPageArtifacts:    fromPDF,
		MergeSplitDateRanges:  true,
		SplitInlineDates:      true,
		MergeBrokenSentences:  true,
		BulletizeAchievements: true,
		SplitGluedHeadings:    true,
	}
}

var (
	pageNumberRe  = regexp.MustCompile(`^\d{1,3}$`)
	pageFooterRe  = regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`)
	pageSpreadRe  = regexp.MustCompile(`(?i)^\d+\s*\|?\s*p\s*a\s*g\s*e$`)
	trailingDash  = regexp.MustCompile(`(?i)` + datePattern + `\s*` + dashPattern + `$`)
	trailingMonth = regexp.MustCompile(`(?i)\b` + monthPattern + `\.?$`)
	bareYearRe    = regexp.MustCompile(`(?i)^\d{4}(\s*` + dashPattern + `\s*` + endPattern + `)?$`)
	inlineDateRe  = regexp.MustCompile(`(?i)^(.*?\S)\s+(` + datePattern + `\s*` + dashPattern + `\s*` + endPattern + `)$`)
	sentenceEndRe = regexp.MustCompile(`[.!?:;]$`)
	hyphenBreakRe = regexp.MustCompile(`[a-z]-$`)
	sentenceSplit = regexp.MustCompile(`([.!?])\s+`)

	// achievementsLabelRe matches the bare label line that introduces an
	// achievements list. It is deliberately not part of the section heading
	// vocabulary: inside an experience block it is a label, not a section.
	achievementsLabelRe = regexp.MustCompile(`(?i)^(key\s+)?achievements:?$`)
)

// gluedHeadingPhrases are the section headers the glued-heading pass looks
// for when extraction removed the surrounding line breaks. Uppercase only:
// the glue artifact occurs with all-caps headers.
var gluedHeadingPhrases = []string{
	"PROFESSIONAL EXPERIENCE",
	"WORK EXPERIENCE",
	"EMPLOYMENT HISTORY",
	"CERTIFICATIONS",
	"EDUCATION",
	"SUMMARY",
	"SKILLS",
}

// normalizeLines applies the enabled repair passes in their contractual order.
func normalizeLines(lines []string, opts NormalizerOptions) []string {
	if opts.StripPageArtifacts {
		lines = stripPageArtifacts(lines)
	}
	if opts.MergeSplitDateRanges {
		lines = mergeSplitDateRanges(lines)
	}
	if opts.SplitInlineDates {
		lines = splitInlineDates(lines)
	}
	if opts.MergeBrokenSentences {
		lines = mergeBrokenSentences(lines)
	}
	if opts.BulletizeAchievements {
		lines = bulletizeAchievements(lines)
	}
	if opts.SplitGluedHeadings {
		lines = splitGluedHeadings(lines)
	}
	return lines
}

// stripPageArtifacts removes standalone page numbers and "Page N" footers
// left behind by PDF text extraction.
func stripPageArtifacts(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if pageNumberRe.MatchString(t) || pageFooterRe.MatchString(t) || pageSpreadRe.MatchString(t) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// mergeSplitDateRanges rejoins a date range that extraction broke across two
// lines: a line ending in a bare month or a dangling dash, followed by a line
// that is only a year (optionally with its own range suffix).
func mergeSplitDateRanges(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := strings.TrimSpace(lines[i])
		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}
		switch {
		case next != "" && trailingDash.MatchString(cur) && (isDateLine(next) || strings.EqualFold(next, "present") || strings.EqualFold(next, "current")):
			out = append(out, cur+" "+next)
			i++
		case next != "" && trailingMonth.MatchString(cur) && bareYearRe.MatchString(next) && !isDateLine(cur):
			out = append(out, cur+" "+next)
			i++
		default:
			out = append(out, lines[i])
		}
	}
	return out
}

// splitInlineDates moves a trailing date range onto its own line when a
// single line carries "Title - Company <dates>". Lines that are nothing but
// a date range are left alone.
func splitInlineDates(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if isDateLine(t) || isBullet(t) {
			out = append(out, line)
			continue
		}
		m := inlineDateRe.FindStringSubmatch(t)
		if m == nil {
			out = append(out, line)
			continue
		}
		prefix := strings.TrimSpace(m[1])
		// Pipe-delimited entries keep their date field inline; splitting
		// them would destroy the inline-pipe layout signature.
		if strings.Contains(prefix, "|") {
			out = append(out, line)
			continue
		}
		prefix = strings.TrimSpace(strings.TrimRight(prefix, ",-–— "))
		// Only split when the prefix looks like a title/company header;
		// prose that happens to end in a date range stays intact.
		if !strings.ContainsAny(prefix, "-–—") || isDateLine(prefix) {
			out = append(out, line)
			continue
		}
		out = append(out, prefix, m[2])
	}
	return out
}

// mergeBrokenSentences rejoins sentence fragments split mid-word or
// mid-sentence by column-based extraction. Date lines and job-title lines are
// never merged into: corrupting those corrupts the structure downstream.
func mergeBrokenSentences(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := strings.TrimSpace(lines[i])
		if classifyLine(cur) != lineText {
			out = append(out, lines[i])
			continue
		}
		// Contact lines (emails, packed pipe rows) are never fragments.
		if strings.ContainsAny(cur, "@|") {
			out = append(out, lines[i])
			continue
		}
		merged := cur
		for i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if classifyLine(next) != lineText || strings.ContainsAny(next, "@|") {
				break
			}
			if hyphenBreakRe.MatchString(merged) && startsLower(next) {
				// Mid-word break: drop the hyphen and join directly.
				merged = merged[:len(merged)-1] + next
				i++
				continue
			}
			// Short lines are names or labels, not broken sentences.
			if !sentenceEndRe.MatchString(merged) && startsLower(next) &&
				len(strings.Fields(merged)) >= 4 {
				merged = merged + " " + next
				i++
				continue
			}
			break
		}
		out = append(out, merged)
	}
	return out
}

func startsLower(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= 'a' && c <= 'z'
}

// bulletizeAchievements converts long non-bulleted paragraphs that sit
// directly under an achievements label into one bullet per sentence.
func bulletizeAchievements(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		out = append(out, lines[i])
		if !achievementsLabelRe.MatchString(strings.TrimSpace(lines[i])) {
			continue
		}
		for i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next == "" || isBullet(next) || isHeading(next) || isDateLine(next) {
				break
			}
			if len(next) < 80 {
				break
			}
			for _, sentence := range splitSentences(next) {
				out = append(out, "- "+sentence)
			}
			i++
		}
	}
	return out
}

// splitSentences breaks a paragraph into sentences, keeping the terminal
// punctuation attached.
func splitSentences(paragraph string) []string {
	marked := sentenceSplit.ReplaceAllString(paragraph, "$1\x00")
	parts := strings.Split(marked, "\x00")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// splitGluedHeadings forces a known section header onto its own line when
// extraction glued it to adjacent prose with no line break on either side.
func splitGluedHeadings(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" || isHeading(t) {
			out = append(out, line)
			continue
		}
		split := false
		for _, phrase := range gluedHeadingPhrases {
			idx := strings.Index(t, phrase)
			if idx < 0 {
				continue
			}
			prefix := t[:idx]
			suffix := t[idx+len(phrase):]
			if !gluedBoundary(prefix, suffix) {
				continue
			}
			if p := strings.TrimSpace(prefix); p != "" {
				out = append(out, p)
			}
			out = append(out, phrase)
			if s := strings.TrimSpace(suffix); s != "" {
				out = append(out, s)
			}
			split = true
			break
		}
		if !split {
			out = append(out, line)
		}
	}
	return out
}

// gluedBoundary reports whether the text around an embedded header phrase
// indicates a true glue artifact rather than a longer word or a different
// heading. The prefix must not end in a letter ("NETWORK EXPERIENCE" is not
// glued "WORK EXPERIENCE") and the suffix must not continue an all-caps word
// ("EDUCATIONAL" is not glued "EDUCATION").
func gluedBoundary(prefix, suffix string) bool {
	if prefix == "" && strings.TrimSpace(suffix) == "" {
		return false // the phrase is the whole line already
	}
	if prefix != "" {
		last := prefix[len(prefix)-1]
		if isLetter(last) {
			return false
		}
	}
	s := strings.TrimLeft(suffix, " ")
	if len(s) >= 2 && isUpper(s[0]) && isUpper(s[1]) {
		return false
	}
	if len(s) == 1 && isLetter(s[0]) {
		return false
	}
	if len(s) >= 1 && s[0] >= 'a' && s[0] <= 'z' {
		return false
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
